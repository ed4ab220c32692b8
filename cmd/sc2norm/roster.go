package main

import (
	"fmt"
	"os"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/replaykit/sc2norm/internal/dump"
	"github.com/replaykit/sc2norm/replay"
)

// result pairs one normalized dump with its per-record failures.
type result struct {
	name   string
	roster *replay.Roster
	errs   []error
}

// RosterCmd prints the participants of each replay dump.
type RosterCmd struct {
	Files  []string `arg:"" name:"file" help:"Decoded replay dump files (JSON)" type:"existingfile"`
	Tables string   `help:"HCL file with lookup table overrides" type:"path"`
	Debug  bool     `help:"Enable debug logging"`
}

func (c *RosterCmd) Run() error {
	logger := setupLogger(c.Debug)

	results, err := normalizeAll(c.Files, c.Tables)
	if err != nil {
		return err
	}

	for _, res := range results {
		renderRoster(os.Stdout, res.name, res.roster)
		for _, recordErr := range res.errs {
			logger.Warn("record skipped", "replay", res.name, "error", recordErr)
		}
	}
	return nil
}

// TeamsCmd prints team lineups and content-addressed hashes. Identical
// hashes across dumps identify the same team playing a rematch.
type TeamsCmd struct {
	Files  []string `arg:"" name:"file" help:"Decoded replay dump files (JSON)" type:"existingfile"`
	Tables string   `help:"HCL file with lookup table overrides" type:"path"`
	Debug  bool     `help:"Enable debug logging"`
}

func (c *TeamsCmd) Run() error {
	logger := setupLogger(c.Debug)

	results, err := normalizeAll(c.Files, c.Tables)
	if err != nil {
		return err
	}

	seen := make(map[string][]string) // hash -> dump names
	for _, res := range results {
		renderTeams(os.Stdout, res.name, res.roster.Teams)
		for _, team := range res.roster.Teams {
			hash := team.Hash()
			seen[hash] = append(seen[hash], res.name)
		}
		for _, recordErr := range res.errs {
			logger.Warn("record skipped", "replay", res.name, "error", recordErr)
		}
	}

	rematches := make([]string, 0, len(seen))
	for hash, names := range seen {
		if len(names) > 1 {
			rematches = append(rematches, hash)
		}
	}
	sort.Strings(rematches)
	for _, hash := range rematches {
		fmt.Fprintf(os.Stdout, "\nrematch %s: %v\n", hash[:12], seen[hash])
	}
	return nil
}

// normalizeAll fans the dumps out across goroutines. Normalization is pure
// and shares only the read-only tables, so the passes need no coordination;
// results come back in input order.
func normalizeAll(files []string, tablesPath string) ([]result, error) {
	tables, err := loadTables(tablesPath)
	if err != nil {
		return nil, err
	}

	results := make([]result, len(files))
	var g errgroup.Group
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			f, err := dump.Load(path)
			if err != nil {
				return fmt.Errorf("loading %s: %w", path, err)
			}
			roster, errs := replay.Normalize(f.Lobby(), tables)
			results[i] = result{name: f.Name, roster: roster, errs: errs}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
