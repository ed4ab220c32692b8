package replay

import (
	"fmt"
	"strings"
)

// Attribute is one decoded lobby attribute applied to a single player.
type Attribute struct {
	ID     int
	Player int
	Name   string
	Value  string
}

func (a Attribute) String() string {
	return fmt.Sprintf("[%d] %s: %s", a.Player, a.Name, a.Value)
}

// DecodeAttribute resolves one raw attribute event into its named, typed
// value. Wire values are fixed-width, right-padded with nulls and spaces,
// and byte-reversed; the decode is strip padding, reverse, then look the
// result up in the per-attribute value table.
func (t *Tables) DecodeAttribute(ev AttributeEvent) (Attribute, error) {
	prop, ok := t.Properties[ev.ID]
	if !ok {
		return Attribute{}, &UnknownAttributeError{ID: ev.ID}
	}
	key := reverseBytes(strings.Trim(string(ev.Value), "\x00 "))
	value, ok := prop.Values[key]
	if !ok {
		return Attribute{}, fmt.Errorf("attribute %d (%s): unknown value %q", ev.ID, prop.Name, key)
	}
	return Attribute{ID: ev.ID, Player: ev.PlayerID, Name: prop.Name, Value: value}, nil
}

// DecodeAttributes decodes every event and groups the results by player id
// and attribute name. A record that fails to decode is reported in the
// returned error slice and does not affect its siblings.
func (t *Tables) DecodeAttributes(events []AttributeEvent) (map[int]map[string]string, []error) {
	byPlayer := make(map[int]map[string]string)
	var errs []error
	for _, ev := range events {
		attr, err := t.DecodeAttribute(ev)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		player := byPlayer[attr.Player]
		if player == nil {
			player = make(map[string]string)
			byPlayer[attr.Player] = player
		}
		player[attr.Name] = attr.Value
	}
	return byPlayer, errs
}

func reverseBytes(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}
