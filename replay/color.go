package replay

import "fmt"

// Color is a player color from the details record.
type Color struct {
	A, R, G, B uint8
}

// Score-screen color names keyed by RGB hex.
var colorNames = map[string]string{
	"B4141E": "Red",
	"0042FF": "Blue",
	"1CA7EA": "Teal",
	"6900A1": "Purple",
	"EBE129": "Yellow",
	"FE8A0E": "Orange",
	"168000": "Green",
	"CCA6FC": "Light Pink",
	"1F01C9": "Violet",
	"525494": "Light Grey",
	"106246": "Dark Green",
	"4E2A04": "Brown",
	"96FF91": "Light Green",
	"232323": "Dark Grey",
	"E55BB0": "Pink",
	"FFFFFF": "White",
}

// Hex returns the RGB components as an uppercase hex triplet.
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// String returns the canonical color name when one exists, the hex triplet
// otherwise.
func (c Color) String() string {
	if name, ok := colorNames[c.Hex()]; ok {
		return name
	}
	return c.Hex()
}
