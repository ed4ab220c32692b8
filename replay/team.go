package replay

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Team groups the competitors that played together. Members keeps discovery
// order; the derived hash and lineup are order-independent.
type Team struct {
	Number  int
	Members []Competitor

	// Result is set by the caller once the replay's overall outcome is
	// known. One of ResultWin, ResultLoss, ResultUnknown.
	Result string
}

// NewTeam returns an empty team with an unknown result.
func NewTeam(number int) *Team {
	return &Team{Number: number, Result: ResultUnknown}
}

// Lineup returns the members' played-race initials, uppercased and sorted
// alphabetically, e.g. "PZZ". Races are the ones actually played, so a
// random pick never surfaces as "R".
func (t *Team) Lineup() string {
	initials := make([]string, 0, len(t.Members))
	for _, m := range t.Members {
		race := m.Detail().PlayRace
		if race == "" {
			continue
		}
		r, _ := utf8.DecodeRuneInString(race)
		initials = append(initials, string(unicode.ToUpper(r)))
	}
	sort.Strings(initials)
	return strings.Join(initials, "")
}

// Hash returns the content-addressed team identity: the SHA-256 digest of
// the members' profile URLs, sorted lexicographically and joined with
// commas, hashed as UTF-8. It is stable under member reordering, which
// makes it usable for recognizing the same team across replays.
func (t *Team) Hash() string {
	urls := make([]string, 0, len(t.Members))
	for _, m := range t.Members {
		urls = append(urls, m.ProfileURL())
	}
	sort.Strings(urls)
	sum := sha256.Sum256([]byte(strings.Join(urls, ",")))
	return hex.EncodeToString(sum[:])
}

func (t *Team) String() string {
	return fmt.Sprintf("Team %d", t.Number)
}

// AggregateTeams groups competitors by team number, creating teams in order
// of first encounter and wiring the reciprocal team reference on each
// member. Observers are not competitors and are skipped. The result is
// deterministic for a given entity order.
func AggregateTeams(entities []Entity) []*Team {
	var teams []*Team
	byNumber := make(map[int]*Team)

	for _, e := range entities {
		comp, ok := e.(Competitor)
		if !ok {
			continue
		}
		number := comp.Slot().TeamNumber
		team := byNumber[number]
		if team == nil {
			team = NewTeam(number)
			byNumber[number] = team
			teams = append(teams, team)
		}
		team.Members = append(team.Members, comp)
		comp.joinTeam(team)
	}
	return teams
}
