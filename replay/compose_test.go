package replay

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func humanSlot(team int, handle string) *SlotSource {
	return &SlotSource{SID: 0, Data: SlotData{
		Handicap:   100,
		TeamID:     team,
		Control:    ControlHuman,
		Observe:    ObserveNone,
		ToonHandle: handle,
	}}
}

func TestComposeParticipant(t *testing.T) {
	t.Parallel()

	composer := NewComposer(nil)
	entity, err := composer.Compose(Sources{
		Slot:    humanSlot(0, "1-S2-2-555"),
		Account: &AccountSource{UID: 0, Data: UserData{Name: "Alice", HighestLeague: 5}},
		Detail: &DetailSource{
			PID: 1,
			Data: DetailData{
				Name:   "Alice",
				Race:   "zerg",
				Result: 1,
				Color:  ColorData{A: 255, R: 180, G: 20, B: 30},
				Bnet:   BnetData{Gateway: 1, Subregion: 2, UID: 555},
			},
			Attributes: map[string]string{"Race": "Zerg", "Difficulty": "Medium"},
		},
	})
	require.NoError(t, err)

	p, ok := entity.(*Participant)
	require.True(t, ok, "expected *Participant, got %T", entity)

	assert.True(t, p.IsHuman)
	assert.False(t, p.IsObserver)
	assert.Equal(t, 1, p.TeamNumber)
	assert.Equal(t, ResultWin, p.Result)
	assert.Equal(t, "Zerg", p.PickRace)
	assert.Equal(t, "zerg", p.PlayRace) // raw code kept when no localization entry
	assert.Equal(t, "Alice", p.DisplayName())
	assert.True(t, strings.Contains(p.ProfileURL(), "555"), "url %q should contain account id", p.ProfileURL())
	assert.Equal(t, "us", p.Identity().Region)
}

func TestComposeParticipantLocalizedRace(t *testing.T) {
	t.Parallel()

	composer := NewComposer(nil)
	entity, err := composer.Compose(Sources{
		Slot:    humanSlot(1, "2-S2-1-42"),
		Account: &AccountSource{UID: 1, Data: UserData{Name: "Bodo"}},
		Detail: &DetailSource{
			PID:  2,
			Data: DetailData{Name: "Bodo", Race: "Terraner", Result: 2, Bnet: BnetData{Gateway: 2, Subregion: 1, UID: 42}},
		},
	})
	require.NoError(t, err)

	p := entity.(*Participant)
	assert.Equal(t, "Terran", p.PlayRace)
	assert.Equal(t, ResultLoss, p.Result)
	// No attribute data for this player id.
	assert.Equal(t, "Unknown", p.PickRace)
	assert.Equal(t, 2, p.TeamNumber)
}

func TestComposeObserver(t *testing.T) {
	t.Parallel()

	composer := NewComposer(nil)
	slot := humanSlot(0, "")
	slot.Data.Observe = ObserveReferee

	entity, err := composer.Compose(Sources{
		Slot:        slot,
		Account:     &AccountSource{UID: 3, Data: UserData{Name: "Watcher", ClanTag: "Obs"}},
		ObserverPID: 7,
	})
	require.NoError(t, err)

	o, ok := entity.(*Observer)
	require.True(t, ok, "expected *Observer, got %T", entity)
	assert.True(t, o.IsObserver)
	assert.True(t, o.IsReferee)
	assert.Equal(t, 7, o.PID)
	assert.Equal(t, "Watcher", o.DisplayName())
	// Empty handle resolves to the offline placeholder identity.
	assert.Equal(t, Toon{}, o.Identity())
	assert.Equal(t, "Observer 3 - Watcher", o.String())
}

func TestComposeComputer(t *testing.T) {
	t.Parallel()

	composer := NewComposer(nil)
	slot := humanSlot(0, "")
	slot.Data.Control = ControlComputer

	entity, err := composer.Compose(Sources{
		Slot: slot,
		Detail: &DetailSource{
			PID:        2,
			Data:       DetailData{Name: "A.I. 1 (Vorfeld)", Race: "Protoss", Result: 2},
			Attributes: map[string]string{"Difficulty": "Very hard"},
		},
	})
	require.NoError(t, err)

	c, ok := entity.(*Computer)
	require.True(t, ok, "expected *Computer, got %T", entity)
	assert.False(t, c.IsHuman)
	assert.Equal(t, "A.I. 1 (Vorfeld)", c.DisplayName())
	assert.Equal(t, "Very hard", c.Difficulty)
	assert.Empty(t, c.ProfileURL())
}

func TestComposeIncomplete(t *testing.T) {
	t.Parallel()

	composer := NewComposer(nil)

	tests := []struct {
		name string
		src  Sources
	}{
		{"no slot", Sources{Account: &AccountSource{}}},
		{"slot only", Sources{Slot: humanSlot(0, "")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := composer.Compose(tt.src)
			require.Error(t, err)

			var incomplete *IncompleteParticipantError
			assert.True(t, errors.As(err, &incomplete))
		})
	}
}

func TestComposeUnknownGatewayInDetail(t *testing.T) {
	t.Parallel()

	composer := NewComposer(nil)
	_, err := composer.Compose(Sources{
		Slot:    humanSlot(0, "1-S2-1-1"),
		Account: &AccountSource{Data: UserData{Name: "Ghost"}},
		Detail: &DetailSource{
			PID:  1,
			Data: DetailData{Race: "Terran", Bnet: BnetData{Gateway: 77}},
		},
	})
	require.Error(t, err)

	var unknown *UnknownGatewayError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, 77, unknown.Gateway)
}

func TestComposeTeamNumberIsOneBased(t *testing.T) {
	t.Parallel()

	composer := NewComposer(nil)
	for teamID := 0; teamID < 4; teamID++ {
		entity, err := composer.Compose(Sources{
			Slot:    humanSlot(teamID, "1-S2-1-1"),
			Account: &AccountSource{Data: UserData{Name: "N"}},
			Detail:  &DetailSource{PID: 1, Data: DetailData{Race: "Zerg", Bnet: BnetData{Gateway: 1, Subregion: 1, UID: 1}}},
		})
		require.NoError(t, err)
		assert.Equal(t, teamID+1, entity.Slot().TeamNumber)
	}
}
