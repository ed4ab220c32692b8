package replay

import "fmt"

// Game results as reported by the details record.
const (
	ResultWin     = "Win"
	ResultLoss    = "Loss"
	ResultUnknown = "Unknown"
)

// GameEvent is an opaque decoded game event. Event decoding lives outside
// this package; a downstream correlation pass appends events to the
// entities built here.
type GameEvent interface{}

// ChatMessage is an opaque decoded chat event, attached like GameEvent.
type ChatMessage interface{}

// Unit is an opaque unit reference from the game-data layer.
type Unit interface{}

// SlotInfo carries the fields every lobby occupant derives from its slot
// record.
type SlotInfo struct {
	SID        int
	Handicap   int
	TeamNumber int // one-based; not meaningful for observers
	IsHuman    bool
	IsObserver bool
	IsReferee  bool
	ToonHandle string
	Toon       Toon
}

// AccountInfo carries the persistent account identity from the user record.
type AccountInfo struct {
	UID                int
	ClanTag            string
	Name               string
	CombinedRaceLevels int64
	HighestLeague      int
}

// ResultInfo carries per-game outcome and cosmetics from the details record
// and the decoded attributes.
type ResultInfo struct {
	PID        int
	Result     string // ResultWin, ResultLoss or ResultUnknown
	PickRace   string // lobby pick; "Random" players resolve differently in PlayRace
	Difficulty string // always "Medium" for humans
	PlayRace   string // canonical race actually played
	Color      Color
	Toon       Toon
}

// Entity is implemented by the three participant variants and nothing else;
// the union is closed.
type Entity interface {
	// Slot exposes the slot-derived fields shared by every variant.
	Slot() *SlotInfo

	// Identity returns the battle.net identity of the occupant. When both
	// the slot handle and the details record carry one, the details record
	// wins.
	Identity() Toon

	// DisplayName is the account name for humans and observers, the
	// synthesized in-game name for computers.
	DisplayName() string

	// ProfileURL is the constructed battle.net profile URL, empty for
	// occupants with no account page.
	ProfileURL() string

	fmt.Stringer

	entity()
}

// Competitor is the subset of entities that occupy a playing slot and count
// toward team aggregation.
type Competitor interface {
	Entity

	// Detail exposes the per-game outcome fields.
	Detail() *ResultInfo

	joinTeam(*Team)
}

// Observer is present in the lobby but not competing. Referees additionally
// may talk to the players.
type Observer struct {
	SlotInfo
	AccountInfo

	// PID is only meaningful in legacy (pre 2.0.4) formats, where observers
	// still received a player id. Zero otherwise.
	PID int

	// Events and Messages are appended by the downstream correlation pass,
	// which is the single writer after construction.
	Events   []GameEvent
	Messages []ChatMessage
}

func (o *Observer) entity()             {}
func (o *Observer) Slot() *SlotInfo     { return &o.SlotInfo }
func (o *Observer) Identity() Toon      { return o.SlotInfo.Toon }
func (o *Observer) DisplayName() string { return o.Name }

func (o *Observer) ProfileURL() string {
	return BuildProfileURL(o.Identity(), o.Name)
}

func (o *Observer) String() string {
	return fmt.Sprintf("Observer %d - %s", o.UID, o.Name)
}

// Computer is an AI occupant. It has no account record; its display name is
// synthesized by the game and recorded in the details file.
type Computer struct {
	SlotInfo
	ResultInfo

	// Name is the auto-generated in-game name for this computer player.
	Name string

	// Team is set by team aggregation.
	Team *Team

	// Appended by the downstream correlation pass (single writer).
	Events      []GameEvent
	Messages    []ChatMessage
	Units       []Unit
	KilledUnits []Unit
}

func (c *Computer) entity()             {}
func (c *Computer) Slot() *SlotInfo     { return &c.SlotInfo }
func (c *Computer) Identity() Toon      { return c.ResultInfo.Toon }
func (c *Computer) DisplayName() string { return c.Name }
func (c *Computer) Detail() *ResultInfo { return &c.ResultInfo }
func (c *Computer) joinTeam(t *Team)    { c.Team = t }

// ProfileURL is always empty: computers have no account.
func (c *Computer) ProfileURL() string { return "" }

func (c *Computer) String() string {
	return fmt.Sprintf("Player %d - %s (%s)", c.PID, c.Name, c.PlayRace)
}

// Participant is a human competitor: a slot occupant with both an account
// record and a game result.
type Participant struct {
	SlotInfo
	AccountInfo
	ResultInfo

	// Team is set by team aggregation.
	Team *Team

	// Appended by the downstream correlation pass (single writer).
	Events      []GameEvent
	Messages    []ChatMessage
	Units       []Unit
	KilledUnits []Unit
}

func (p *Participant) entity()             {}
func (p *Participant) Slot() *SlotInfo     { return &p.SlotInfo }
func (p *Participant) Identity() Toon      { return p.ResultInfo.Toon }
func (p *Participant) DisplayName() string { return p.Name }
func (p *Participant) Detail() *ResultInfo { return &p.ResultInfo }
func (p *Participant) joinTeam(t *Team)    { p.Team = t }

func (p *Participant) ProfileURL() string {
	return BuildProfileURL(p.Identity(), p.Name)
}

func (p *Participant) String() string {
	return fmt.Sprintf("Player %d - %s (%s)", p.PID, p.Name, p.PlayRace)
}
