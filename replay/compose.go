package replay

// SlotSource is a slot record together with the slot id it came from.
type SlotSource struct {
	SID  int
	Data SlotData
}

// AccountSource is a user record together with its account id.
type AccountSource struct {
	UID  int
	Data UserData
}

// DetailSource is a details record together with its player id and the
// decoded attribute values for that player, keyed by attribute name.
type DetailSource struct {
	PID        int
	Data       DetailData
	Attributes map[string]string
}

// Sources is the input bundle for one compose call. Slot is always
// required; the presence of Account and Detail selects the variant.
type Sources struct {
	Slot    *SlotSource
	Account *AccountSource
	Detail  *DetailSource

	// ObserverPID carries the legacy player id some format versions assign
	// to observers that have no details record. Zero when absent.
	ObserverPID int
}

// Composer merges independently decoded record sources into participant
// variants. It is stateless apart from the lookup tables and safe for
// concurrent use.
type Composer struct {
	tables *Tables
}

// NewComposer returns a composer resolving against the given tables, or the
// defaults when nil.
func NewComposer(tables *Tables) *Composer {
	if tables == nil {
		tables = DefaultTables()
	}
	return &Composer{tables: tables}
}

// Compose builds the participant variant matching the supplied sources:
//
//	slot + account + detail -> *Participant
//	slot + account          -> *Observer
//	slot + detail           -> *Computer
//
// Any other combination fails with IncompleteParticipantError. Once the
// sources match a variant, composition is total; the only remaining
// failures come from the sub-decoders (unknown gateway, and attribute
// decoding which happens before Compose is called).
func (c *Composer) Compose(src Sources) (Entity, error) {
	if src.Slot == nil {
		return nil, &IncompleteParticipantError{SID: -1, Reason: "no slot record"}
	}

	slot, err := c.slotInfo(src.Slot)
	if err != nil {
		return nil, err
	}

	switch {
	case src.Account != nil && src.Detail != nil:
		result, err := c.resultInfo(src.Detail)
		if err != nil {
			return nil, err
		}
		return &Participant{
			SlotInfo:    slot,
			AccountInfo: accountInfo(src.Account),
			ResultInfo:  result,
		}, nil

	case src.Account != nil:
		return &Observer{
			SlotInfo:    slot,
			AccountInfo: accountInfo(src.Account),
			PID:         src.ObserverPID,
		}, nil

	case src.Detail != nil:
		result, err := c.resultInfo(src.Detail)
		if err != nil {
			return nil, err
		}
		return &Computer{
			SlotInfo:   slot,
			ResultInfo: result,
			Name:       src.Detail.Data.Name,
		}, nil

	default:
		return nil, &IncompleteParticipantError{
			SID:    src.Slot.SID,
			Reason: "slot record with neither account nor detail data",
		}
	}
}

func (c *Composer) slotInfo(src *SlotSource) (SlotInfo, error) {
	toon, err := c.tables.ParseToonHandle(src.Data.ToonHandle)
	if err != nil {
		return SlotInfo{}, err
	}
	return SlotInfo{
		SID:        src.SID,
		Handicap:   src.Data.Handicap,
		TeamNumber: src.Data.TeamID + 1,
		IsHuman:    src.Data.Control == ControlHuman,
		IsObserver: src.Data.Observe != ObserveNone,
		IsReferee:  src.Data.Observe == ObserveReferee,
		ToonHandle: src.Data.ToonHandle,
		Toon:       toon,
	}, nil
}

func accountInfo(src *AccountSource) AccountInfo {
	return AccountInfo{
		UID:                src.UID,
		ClanTag:            src.Data.ClanTag,
		Name:               src.Data.Name,
		CombinedRaceLevels: src.Data.CombinedRaceLevels,
		HighestLeague:      src.Data.HighestLeague,
	}
}

func (c *Composer) resultInfo(src *DetailSource) (ResultInfo, error) {
	region, err := c.tables.ResolveGateway(src.Data.Bnet.Gateway)
	if err != nil {
		return ResultInfo{}, err
	}

	result := ResultUnknown
	switch src.Data.Result {
	case 1:
		result = ResultWin
	case 2:
		result = ResultLoss
	}

	return ResultInfo{
		PID:        src.PID,
		Result:     result,
		PickRace:   attributeOrUnknown(src.Attributes, "Race"),
		Difficulty: attributeOrUnknown(src.Attributes, "Difficulty"),
		PlayRace:   c.tables.LocalizeRace(src.Data.Race),
		Color:      Color(src.Data.Color),
		Toon: Toon{
			Gateway:   src.Data.Bnet.Gateway,
			Region:    region,
			Subregion: src.Data.Bnet.Subregion,
			ID:        src.Data.Bnet.UID,
		},
	}, nil
}

func attributeOrUnknown(attrs map[string]string, name string) string {
	if value, ok := attrs[name]; ok {
		return value
	}
	return "Unknown"
}
