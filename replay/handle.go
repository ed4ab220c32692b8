package replay

import (
	"fmt"
	"strconv"
	"strings"
)

// PlaceholderHandle stands in for missing or malformed toon handles. It
// models a game played offline by an account that never authenticated:
// gateway 0, subregion 0, account id 0.
const PlaceholderHandle = "0-S2-0-0"

// profileURLTemplate is the battle.net profile URL shape: region, account
// id, subregion, display name.
const profileURLTemplate = "http://%s.battle.net/sc2/en/profile/%d/%d/%s/"

// Toon is the parsed battle.net identity behind an account handle.
type Toon struct {
	Gateway   int
	Region    string
	Subregion int
	ID        int
}

// Handle renders the identity back into canonical handle form.
func (t Toon) Handle() string {
	return fmt.Sprintf("%d-S2-%d-%d", t.Gateway, t.Subregion, t.ID)
}

// ParseToonHandle splits a composite account handle of the form
// <gateway>-S2-<subregion>-<account-id> and resolves the gateway to a
// region code. Empty or malformed handles are not errors; they are
// normalized to PlaceholderHandle before parsing. A gateway id missing from
// the region table is a hard failure.
func (t *Tables) ParseToonHandle(handle string) (Toon, error) {
	gateway, subregion, id, ok := splitHandle(handle)
	if !ok {
		gateway, subregion, id, _ = splitHandle(PlaceholderHandle)
	}
	region, err := t.ResolveGateway(gateway)
	if err != nil {
		return Toon{}, err
	}
	return Toon{Gateway: gateway, Region: region, Subregion: subregion, ID: id}, nil
}

func splitHandle(handle string) (gateway, subregion, id int, ok bool) {
	parts := strings.Split(handle, "-")
	if len(parts) != 4 {
		return 0, 0, 0, false
	}
	var err error
	if gateway, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, 0, false
	}
	if subregion, err = strconv.Atoi(parts[2]); err != nil {
		return 0, 0, 0, false
	}
	if id, err = strconv.Atoi(parts[3]); err != nil {
		return 0, 0, 0, false
	}
	return gateway, subregion, id, true
}

// BuildProfileURL formats the battle.net profile URL for a named account.
// The URL is constructed, never fetched. Without a display name there is no
// profile page, so the result is empty.
func BuildProfileURL(toon Toon, name string) string {
	if name == "" {
		return ""
	}
	return fmt.Sprintf(profileURLTemplate, toon.Region, toon.ID, toon.Subregion, name)
}
