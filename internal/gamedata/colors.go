package gamedata

import (
	"github.com/lucasb-eyer/go-colorful"
)

// DisplayColor returns the creature's log color, falling back to white
// when the hex code is missing or malformed.
func (d *CreatureDef) DisplayColor() colorful.Color {
	if d.Color == "" {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	color, err := colorful.Hex(d.Color)
	if err != nil {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return color
}
