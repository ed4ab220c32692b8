package replay

import (
	"fmt"
	"strings"
)

// PlayerSummary is a player as loaded from the separate game-summary
// resource. It is attached to participants after normalization; sourcing
// the summary itself is outside this package.
type PlayerSummary struct {
	PID       int
	TeamID    int
	PlayRace  string
	PickRace  string
	IsAI      bool
	IsWinner  bool
	BnetID    int
	Subregion int
	Gateway   string
	Region    string

	// ArmyGraph and IncomeGraph chart army value and income over game
	// seconds.
	ArmyGraph   *Graph
	IncomeGraph *Graph

	// BuildOrder holds the sampled build entries in build-index order.
	BuildOrder []BuildEntry

	// Stats holds the remaining score-screen numbers keyed by stat name.
	Stats map[string]int64
}

// NewPlayerSummary returns an empty summary for the given player index.
func NewPlayerSummary(pid int) *PlayerSummary {
	return &PlayerSummary{PID: pid, Stats: make(map[string]int64)}
}

func (s *PlayerSummary) String() string {
	if s.IsAI {
		return fmt.Sprintf("AI (%s)", s.PlayRace)
	}
	return fmt.Sprintf("User %s-S2-%d-%d", strings.ToUpper(s.Region), s.Subregion, s.BnetID)
}
