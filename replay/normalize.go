package replay

import "fmt"

// Lobby is the full set of decoded record sources for one replay.
type Lobby struct {
	// Slots in slot-id order, including open and closed seats.
	Slots []SlotData

	// Users keyed by account id; in modern formats the account id equals
	// the slot id.
	Users map[int]UserData

	// Players in slot order for the playing slots, each carrying the
	// player id the decoder assigned.
	Players []PlayerRecord

	// Attributes are the raw attribute events, referencing players by id.
	Attributes []AttributeEvent

	// ObserverPIDs maps slot id to the legacy player id for format
	// versions that still assigned observers one.
	ObserverPIDs map[int]int
}

// Roster is the normalized object graph for one replay.
type Roster struct {
	// Entities in slot order, one per occupied slot that composed cleanly.
	Entities []Entity

	// Teams in first-encounter order, members wired reciprocally.
	Teams []*Team
}

// Observers returns the non-competing entities.
func (r *Roster) Observers() []*Observer {
	var out []*Observer
	for _, e := range r.Entities {
		if o, ok := e.(*Observer); ok {
			out = append(out, o)
		}
	}
	return out
}

// Competitors returns the entities that count toward team aggregation.
func (r *Roster) Competitors() []Competitor {
	var out []Competitor
	for _, e := range r.Entities {
		if c, ok := e.(Competitor); ok {
			out = append(out, c)
		}
	}
	return out
}

// Humans returns the human competitors.
func (r *Roster) Humans() []*Participant {
	var out []*Participant
	for _, e := range r.Entities {
		if p, ok := e.(*Participant); ok {
			out = append(out, p)
		}
	}
	return out
}

// Normalize composes every occupied slot of the lobby and aggregates the
// resulting competitors into teams. Failures are local to a record: a slot
// or attribute that fails to decode is reported in the returned error slice
// and the remaining records are still processed. Callers decide whether the
// partial roster is usable.
func Normalize(lobby Lobby, tables *Tables) (*Roster, []error) {
	if tables == nil {
		tables = DefaultTables()
	}
	composer := NewComposer(tables)

	attrs, errs := tables.DecodeAttributes(lobby.Attributes)

	var entities []Entity
	next := 0
	for sid, slot := range lobby.Slots {
		if !slot.Occupied() {
			continue
		}

		src := Sources{Slot: &SlotSource{SID: sid, Data: slot}}
		if user, ok := lobby.Users[sid]; ok {
			src.Account = &AccountSource{UID: sid, Data: user}
		}
		if slot.Observe != ObserveNone {
			src.ObserverPID = lobby.ObserverPIDs[sid]
		} else if next < len(lobby.Players) {
			rec := lobby.Players[next]
			next++
			src.Detail = &DetailSource{PID: rec.PID, Data: rec.Detail, Attributes: attrs[rec.PID]}
		}

		entity, err := composer.Compose(src)
		if err != nil {
			errs = append(errs, fmt.Errorf("slot %d: %w", sid, err))
			continue
		}
		entities = append(entities, entity)
	}

	return &Roster{Entities: entities, Teams: AggregateTeams(entities)}, errs
}
