// Package dump reads the JSON documents the replay decoder emits for each
// replay: one object holding the decoded slot, user, player-detail and
// attribute records.
package dump

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/replaykit/sc2norm/replay"
)

// File mirrors one decoded-replay JSON document.
type File struct {
	Name       string      `json:"name,omitempty"`
	Slots      []Slot      `json:"slots"`
	Users      []User      `json:"users"`
	Players    []Player    `json:"players"`
	Attributes []Attribute `json:"attributes"`

	// ObserverPIDs is present only for legacy format versions.
	ObserverPIDs map[string]int `json:"observer_pids,omitempty"`
}

// Slot is one initData slot record.
type Slot struct {
	Handicap   int    `json:"handicap"`
	TeamID     int    `json:"team_id"`
	Control    int    `json:"control"`
	Observe    int    `json:"observe"`
	ToonHandle string `json:"toon_handle"`
}

// User is one initData user record.
type User struct {
	UID                int    `json:"uid"`
	ClanTag            string `json:"clan_tag"`
	Name               string `json:"name"`
	CombinedRaceLevels int64  `json:"combined_race_levels"`
	HighestLeague      int    `json:"highest_league"`
}

// Player is one details record.
type Player struct {
	PID    int    `json:"pid"`
	Name   string `json:"name"`
	Race   string `json:"race"`
	Result int    `json:"result"`
	Color  struct {
		A uint8 `json:"a"`
		R uint8 `json:"r"`
		G uint8 `json:"g"`
		B uint8 `json:"b"`
	} `json:"color"`
	Bnet struct {
		Gateway   int `json:"gateway"`
		Subregion int `json:"subregion"`
		UID       int `json:"uid"`
	} `json:"bnet"`
}

// Attribute is one raw attributes.events record. Value carries the encoded
// wire bytes, nulls included, as a JSON string.
type Attribute struct {
	ID       int    `json:"id"`
	PlayerID int    `json:"player"`
	Value    string `json:"value"`
}

// Load reads and decodes one dump file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if f.Name == "" {
		f.Name = filepath.Base(path)
	}
	return &f, nil
}

// Lobby converts the document into the normalizer's input form.
func (f *File) Lobby() replay.Lobby {
	lobby := replay.Lobby{
		Slots: make([]replay.SlotData, len(f.Slots)),
		Users: make(map[int]replay.UserData, len(f.Users)),
	}

	for i, s := range f.Slots {
		lobby.Slots[i] = replay.SlotData{
			Handicap:   s.Handicap,
			TeamID:     s.TeamID,
			Control:    s.Control,
			Observe:    s.Observe,
			ToonHandle: s.ToonHandle,
		}
	}

	for _, u := range f.Users {
		lobby.Users[u.UID] = replay.UserData{
			ClanTag:            u.ClanTag,
			Name:               u.Name,
			CombinedRaceLevels: u.CombinedRaceLevels,
			HighestLeague:      u.HighestLeague,
		}
	}

	for _, p := range f.Players {
		lobby.Players = append(lobby.Players, replay.PlayerRecord{
			PID: p.PID,
			Detail: replay.DetailData{
				Name:   p.Name,
				Race:   p.Race,
				Result: p.Result,
				Color:  replay.ColorData{A: p.Color.A, R: p.Color.R, G: p.Color.G, B: p.Color.B},
				Bnet:   replay.BnetData{Gateway: p.Bnet.Gateway, Subregion: p.Bnet.Subregion, UID: p.Bnet.UID},
			},
		})
	}

	for _, a := range f.Attributes {
		lobby.Attributes = append(lobby.Attributes, replay.AttributeEvent{
			ID:       a.ID,
			PlayerID: a.PlayerID,
			Value:    []byte(a.Value),
		})
	}

	if len(f.ObserverPIDs) > 0 {
		lobby.ObserverPIDs = make(map[int]int, len(f.ObserverPIDs))
		for sid, pid := range f.ObserverPIDs {
			var n int
			if _, err := fmt.Sscanf(sid, "%d", &n); err == nil {
				lobby.ObserverPIDs[n] = pid
			}
		}
	}

	return lobby
}
