package tablecfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tables.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaultsWhenNoPath(t *testing.T) {
	t.Parallel()

	tables, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "us", tables.Gateways[1])
	assert.Contains(t, tables.Properties, 3001)
}

func TestLoadOverrides(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
gateway "42" {
  region = "ptr"
}

race "Tarranid" {
  canonical = "Terran"
}

property "4000" {
  name   = "Game Privacy"
  values = {
    "Norm" = "Normal"
    "TP"   = "Tournament"
  }
}
`)

	tables, err := Load(path)
	require.NoError(t, err)

	// New entries land next to the untouched defaults.
	assert.Equal(t, "ptr", tables.Gateways[42])
	assert.Equal(t, "us", tables.Gateways[1])
	assert.Equal(t, "Terran", tables.Races["Tarranid"])
	assert.Equal(t, "Game Privacy", tables.Properties[4000].Name)
	assert.Equal(t, "Tournament", tables.Properties[4000].Values["TP"])
}

func TestLoadDoesNotMutateDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
gateway "1" {
  region = "na"
}
`)

	tables, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "na", tables.Gateways[1])

	// A fresh load without overrides still sees the original value.
	fresh, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "us", fresh.Gateways[1])
}

func TestLoadRejectsBadConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"non numeric gateway id", `gateway "abc" { region = "xx" }`},
		{"empty canonical race", `race "Foo" { canonical = "" }`},
		{"property without values", "property \"4000\" {\n  name   = \"X\"\n  values = {}\n}"},
		{"invalid syntax", `gateway "1" {`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.Error(t, err)
}
