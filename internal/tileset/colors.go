package tileset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rivermap/internal/world"
)

// Palette maps each edge feature to its display color.
type Palette map[world.Feature]tcell.Color

// ParsePalette converts feature names and hex colors into a Palette.
// Features missing from the input fall back to the default terminal color.
func ParsePalette(colors map[string]string) (Palette, error) {
	palette := Palette{
		world.FeatureNone:  tcell.ColorDefault,
		world.FeatureCity:  tcell.ColorDefault,
		world.FeatureRoad:  tcell.ColorDefault,
		world.FeatureRiver: tcell.ColorDefault,
	}

	for name, hex := range colors {
		f, err := world.ParseFeature(name)
		if err != nil {
			return nil, fmt.Errorf("palette: %w", err)
		}
		color, err := ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("palette %s: %w", name, err)
		}
		palette[f] = color
	}
	return palette, nil
}

// Color returns the color for a feature.
func (p Palette) Color(f world.Feature) tcell.Color {
	if c, ok := p[f]; ok {
		return c
	}
	return tcell.ColorDefault
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}

// MustParseHexColor converts a hex color string to tcell.Color, panicking on error.
func MustParseHexColor(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}
