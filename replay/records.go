package replay

// Slot control values as recorded in initData.
const (
	ControlOpen     = 0
	ControlClosed   = 1
	ControlHuman    = 2
	ControlComputer = 3
)

// Slot observer values as recorded in initData.
const (
	ObserveNone      = 0
	ObserveSpectator = 1
	ObserveReferee   = 2
)

// SlotData is the per-slot lobby record produced by the initData decoder.
type SlotData struct {
	Handicap   int // 50-100 as set in the lobby
	TeamID     int // zero-based team index
	Control    int
	Observe    int
	ToonHandle string
}

// Occupied reports whether the slot held a person or computer at game start.
func (s SlotData) Occupied() bool {
	return s.Control != ControlOpen && s.Control != ControlClosed
}

// UserData is the per-account record from initData.
type UserData struct {
	ClanTag            string
	Name               string
	CombinedRaceLevels int64
	HighestLeague      int
}

// ColorData carries the raw ARGB components from a details record.
type ColorData struct {
	A, R, G, B uint8
}

// BnetData is the nested battle.net identity tuple from a details record.
type BnetData struct {
	Gateway   int
	Subregion int
	UID       int
}

// DetailData is the per-player record from the details file.
type DetailData struct {
	Name   string
	Race   string // raw, possibly localized race name
	Result int    // 1 win, 2 loss, anything else unknown
	Color  ColorData
	Bnet   BnetData
}

// AttributeEvent is one raw record from attributes.events. Value holds the
// fixed-width encoded attribute value exactly as it appears on the wire.
type AttributeEvent struct {
	ID       int
	PlayerID int
	Value    []byte
}

// PlayerRecord pairs a details record with the player id the decoder
// assigned to it. Records appear in slot order for the playing slots.
type PlayerRecord struct {
	PID    int
	Detail DetailData
}
