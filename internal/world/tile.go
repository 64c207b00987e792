// Package world provides the tile model, the placement grid and edge matching.
package world

import "fmt"

// Feature is the content of one tile edge.
type Feature uint8

const (
	// FeatureNone is an empty field edge.
	FeatureNone Feature = iota
	// FeatureCity is a city wall edge.
	FeatureCity
	// FeatureRoad is a road crossing the edge.
	FeatureRoad
	// FeatureRiver is a river crossing the edge.
	FeatureRiver
)

// String returns the feature name used in tile data files.
func (f Feature) String() string {
	switch f {
	case FeatureNone:
		return "none"
	case FeatureCity:
		return "city"
	case FeatureRoad:
		return "road"
	case FeatureRiver:
		return "river"
	default:
		return "unknown"
	}
}

// ParseFeature converts a feature name to a Feature.
func ParseFeature(s string) (Feature, error) {
	switch s {
	case "none":
		return FeatureNone, nil
	case "city":
		return FeatureCity, nil
	case "road":
		return FeatureRoad, nil
	case "river":
		return FeatureRiver, nil
	default:
		return FeatureNone, fmt.Errorf("unknown feature %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Feature) MarshalText() ([]byte, error) {
	if f > FeatureRiver {
		return nil, fmt.Errorf("invalid feature %d", f)
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Feature) UnmarshalText(text []byte) error {
	parsed, err := ParseFeature(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// TileSpec describes one kind of tile in the catalog.
type TileSpec struct {
	Name     string
	Edges    [4]Feature // Unrotated edges in North, East, South, West order
	Count    int        // Number of physical copies in the draw deck
	Cloister bool
	Shield   bool
	Art      string // Opaque artwork handle, never inspected by placement
}

// CanBeRotated reports whether rotating the tile changes any of its edges.
func (t TileSpec) CanBeRotated() bool {
	for _, f := range t.Edges[1:] {
		if f != t.Edges[0] {
			return true
		}
	}
	return false
}

// Edge returns the feature facing absolute direction d when the tile is placed
// with the given number of quarter turns.
func (t TileSpec) Edge(d Direction, rotation int) Feature {
	return t.Edges[(int(d)+rotation)%4]
}

// PlacedTile is a catalog tile occupying a grid cell.
type PlacedTile struct {
	Spec     int // Index into the catalog
	Rotation int // Quarter turns, 0-3
}
