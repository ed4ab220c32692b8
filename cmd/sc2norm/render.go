package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/replaykit/sc2norm/replay"
)

var (
	// Style definitions
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

func renderResult(result string) string {
	switch result {
	case replay.ResultWin:
		return winStyle.Render(result)
	case replay.ResultLoss:
		return lossStyle.Render(result)
	default:
		return dimStyle.Render(result)
	}
}

func role(e replay.Entity) string {
	switch v := e.(type) {
	case *replay.Observer:
		if v.IsReferee {
			return "Referee"
		}
		return "Observer"
	case *replay.Computer:
		return "Computer"
	default:
		return "Human"
	}
}

func renderRoster(w io.Writer, name string, roster *replay.Roster) {
	fmt.Fprintln(w, titleStyle.Render(name))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, headerStyle.Render("SLOT\tROLE\tNAME\tTEAM\tRACE\tRESULT\tPROFILE"))
	for _, e := range roster.Entities {
		team, race, result, url := "-", "-", dimStyle.Render("-"), "-"
		if comp, ok := e.(replay.Competitor); ok {
			team = fmt.Sprintf("%d", comp.Slot().TeamNumber)
			race = comp.Detail().PlayRace
			result = renderResult(comp.Detail().Result)
		}
		if u := e.ProfileURL(); u != "" {
			url = u
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Slot().SID, role(e), e.DisplayName(), team, race, result, url)
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func renderTeams(w io.Writer, name string, teams []*replay.Team) {
	fmt.Fprintln(w, titleStyle.Render(name))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, headerStyle.Render("TEAM\tLINEUP\tRESULT\tMEMBERS\tHASH"))
	for _, team := range teams {
		names := ""
		for i, m := range team.Members {
			if i > 0 {
				names += ", "
			}
			names += m.DisplayName()
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			team.Number, team.Lineup(), renderResult(team.Result), names, team.Hash())
	}
	tw.Flush()
	fmt.Fprintln(w)
}
