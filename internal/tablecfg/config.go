// Package tablecfg loads lookup-table overrides from HCL files. Overrides
// are merged over the compiled-in defaults, so a deployment only declares
// the entries it wants to add or change.
package tablecfg

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/replaykit/sc2norm/replay"
)

// Config is the root of a table-override file.
type Config struct {
	Gateways   []Gateway  `hcl:"gateway,block"`
	Races      []Race     `hcl:"race,block"`
	Properties []Property `hcl:"property,block"`
}

// Gateway maps a gateway id to a region code.
//
//	gateway "98" { region = "xx" }
type Gateway struct {
	ID     string `hcl:"id,label"`
	Region string `hcl:"region"`
}

// Race maps a localized race name to its canonical form.
//
//	race "Terraner" { canonical = "Terran" }
type Race struct {
	Localized string `hcl:"localized,label"`
	Canonical string `hcl:"canonical"`
}

// Property declares or replaces one lobby-property definition.
//
//	property "3001" {
//	  name   = "Race"
//	  values = { "Terr" = "Terran" }
//	}
type Property struct {
	ID     string            `hcl:"id,label"`
	Name   string            `hcl:"name"`
	Values map[string]string `hcl:"values"`
}

// Load parses the override file and returns the merged tables. A missing
// path returns the defaults untouched.
func Load(path string) (*replay.Tables, error) {
	tables := cloneDefaults()
	if path == "" {
		return tables, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("table config %s does not exist", path)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	config.apply(tables)
	return tables, nil
}

// Validate checks the override entries before they touch the tables.
func (c *Config) Validate() error {
	for _, g := range c.Gateways {
		if _, err := strconv.Atoi(g.ID); err != nil {
			return fmt.Errorf("gateway %q: id must be numeric", g.ID)
		}
	}
	for _, r := range c.Races {
		if r.Canonical == "" {
			return fmt.Errorf("race %q: canonical name must not be empty", r.Localized)
		}
	}
	for _, p := range c.Properties {
		if _, err := strconv.Atoi(p.ID); err != nil {
			return fmt.Errorf("property %q: id must be numeric", p.ID)
		}
		if p.Name == "" {
			return fmt.Errorf("property %q: name must not be empty", p.ID)
		}
		if len(p.Values) == 0 {
			return fmt.Errorf("property %q: values must not be empty", p.ID)
		}
	}
	return nil
}

func (c *Config) apply(tables *replay.Tables) {
	for _, g := range c.Gateways {
		id, _ := strconv.Atoi(g.ID)
		tables.Gateways[id] = g.Region
	}
	for _, r := range c.Races {
		tables.Races[r.Localized] = r.Canonical
	}
	for _, p := range c.Properties {
		id, _ := strconv.Atoi(p.ID)
		values := make(map[string]string, len(p.Values))
		for k, v := range p.Values {
			values[k] = v
		}
		tables.Properties[id] = replay.LobbyProperty{Name: p.Name, Values: values}
	}
}

// cloneDefaults deep-copies the default tables so overrides never mutate
// the shared configuration.
func cloneDefaults() *replay.Tables {
	defaults := replay.DefaultTables()
	tables := &replay.Tables{
		Gateways:   make(map[int]string, len(defaults.Gateways)),
		Races:      make(map[string]string, len(defaults.Races)),
		Properties: make(map[int]replay.LobbyProperty, len(defaults.Properties)),
	}
	for k, v := range defaults.Gateways {
		tables.Gateways[k] = v
	}
	for k, v := range defaults.Races {
		tables.Races[k] = v
	}
	for k, v := range defaults.Properties {
		values := make(map[string]string, len(v.Values))
		for vk, vv := range v.Values {
			values[vk] = vv
		}
		tables.Properties[k] = replay.LobbyProperty{Name: v.Name, Values: values}
	}
	return tables
}
