package replay

// LobbyProperty describes one attribute id: its human-readable name and the
// table mapping decoded wire values to display values.
type LobbyProperty struct {
	Name   string
	Values map[string]string
}

// Tables holds the read-only lookup configuration the normalizer resolves
// records against. A Tables value is never mutated after construction and
// may be shared by reference across concurrent normalization passes.
type Tables struct {
	// Gateways maps a gateway id to its region code ("us", "eu", ...).
	// Id 0 maps to the empty region for games played offline.
	Gateways map[int]string

	// Races maps localized race names to their canonical English form.
	Races map[string]string

	// Properties maps attribute ids to their lobby-property definitions.
	Properties map[int]LobbyProperty
}

// DefaultTables returns the standard lookup configuration shipped with the
// package. Deployments extend or override it via internal/tablecfg.
func DefaultTables() *Tables {
	return &Tables{
		Gateways: map[int]string{
			0:  "",
			1:  "us",
			2:  "eu",
			3:  "kr",
			5:  "cn",
			6:  "sea",
			98: "xx",
		},
		Races: map[string]string{
			"Terraner":  "Terran",
			"Terrano":   "Terran",
			"Terrans":   "Terran",
			"Terranie":  "Terran",
			"Терран":    "Terran",
			"테란":        "Terran",
			"人類":        "Terran",
			"人类":        "Terran",
			"Protosi":   "Protoss",
			"Протосс":   "Protoss",
			"프로토스":      "Protoss",
			"星灵":        "Protoss",
			"神族":        "Protoss",
			"Zergi":     "Zerg",
			"Zergs":     "Zerg",
			"Зерг":      "Zerg",
			"저그":        "Zerg",
			"异虫":        "Zerg",
			"蟲族":        "Zerg",
		},
		Properties: map[int]LobbyProperty{
			500: {Name: "Controller", Values: map[string]string{
				"Humn": "Human",
				"Comp": "Computer",
				"Open": "Open",
				"Clsd": "Closed",
			}},
			3000: {Name: "Game Speed", Values: map[string]string{
				"Slor": "Slower",
				"Slow": "Slow",
				"Norm": "Normal",
				"Fast": "Fast",
				"Fasr": "Faster",
			}},
			3001: {Name: "Race", Values: map[string]string{
				"Terr": "Terran",
				"Zerg": "Zerg",
				"Prot": "Protoss",
				"RAND": "Random",
			}},
			3002: {Name: "Color", Values: map[string]string{
				"tc01": "Red",
				"tc02": "Blue",
				"tc03": "Teal",
				"tc04": "Purple",
				"tc05": "Yellow",
				"tc06": "Orange",
				"tc07": "Green",
				"tc08": "Light Pink",
				"tc09": "Violet",
				"tc10": "Light Grey",
				"tc11": "Dark Green",
				"tc12": "Brown",
				"tc13": "Light Green",
				"tc14": "Dark Grey",
				"tc15": "Pink",
				"tc16": "White",
			}},
			3003: {Name: "Handicap", Values: map[string]string{
				"50":  "50",
				"60":  "60",
				"70":  "70",
				"80":  "80",
				"90":  "90",
				"100": "100",
			}},
			3004: {Name: "Difficulty", Values: map[string]string{
				"VyEy": "Very easy",
				"Easy": "Easy",
				"Medi": "Medium",
				"Hard": "Hard",
				"VyHd": "Very hard",
				"Insa": "Insane",
			}},
			3006: {Name: "Teams 1v1", Values: map[string]string{
				"T1": "Team 1",
				"T2": "Team 2",
			}},
			3007: {Name: "Teams 2v2", Values: map[string]string{
				"T1": "Team 1",
				"T2": "Team 2",
			}},
			3008: {Name: "Teams 3v3", Values: map[string]string{
				"T1": "Team 1",
				"T2": "Team 2",
			}},
			3009: {Name: "Teams 4v4", Values: map[string]string{
				"T1": "Team 1",
				"T2": "Team 2",
			}},
			3010: {Name: "Teams FFA", Values: map[string]string{
				"T1": "Team 1",
			}},
		},
	}
}

// LocalizeRace resolves a raw race name through the localization table,
// falling back to the raw name when no canonical form is known.
func (t *Tables) LocalizeRace(race string) string {
	if canonical, ok := t.Races[race]; ok {
		return canonical
	}
	return race
}

// ResolveGateway maps a gateway id to its region code. Ids missing from the
// table fail hard; region resolution is load-bearing for profile URLs.
func (t *Tables) ResolveGateway(gateway int) (string, error) {
	region, ok := t.Gateways[gateway]
	if !ok {
		return "", &UnknownGatewayError{Gateway: gateway}
	}
	return region, nil
}
