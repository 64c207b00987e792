package tileset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/samdwyer/rivermap/internal/world"
)

// TileDef defines a tile kind loaded from JSON.
type TileDef struct {
	Name     string   `json:"name"`     // Unique identifier (e.g., "cityn_roadew")
	Edges    []string `json:"edges"`    // Features on the North, East, South, West edges
	Count    int      `json:"count"`    // Copies of this tile in the draw deck
	Cloister bool     `json:"cloister"` // Tile shows a cloister
	Shield   bool     `json:"shield"`   // City carries a shield
	Art      string   `json:"art"`      // Artwork handle, passed through untouched
}

// File represents the structure of a tile set JSON file.
type File struct {
	Palette map[string]string `json:"palette"` // Feature name to hex color
	Base    []TileDef         `json:"base"`
	River   []TileDef         `json:"river"`
}

// Set is a built catalog together with the index ranges placement draws from.
type Set struct {
	Catalog *world.Catalog
	Base    world.Range // Tiles for the fill phase
	River   world.Range // Tiles for the river phase
	Palette Palette
}

// Build converts a tile set file into a catalog. Base tiles come first,
// followed by river tiles. Each range must hold at least one tile with a
// positive count.
func Build(file File) (*Set, error) {
	specs := make([]world.TileSpec, 0, len(file.Base)+len(file.River))
	seen := make(map[string]bool)

	for _, group := range [][]TileDef{file.Base, file.River} {
		for _, def := range group {
			if def.Name == "" {
				return nil, errors.New("tile definition without a name")
			}
			if seen[def.Name] {
				return nil, fmt.Errorf("duplicate tile %q", def.Name)
			}
			seen[def.Name] = true

			spec, err := def.Spec()
			if err != nil {
				return nil, err
			}
			specs = append(specs, spec)
		}
	}

	catalog := world.NewCatalog(specs)
	base := world.Range{Lo: 0, Hi: len(file.Base)}
	river := world.Range{Lo: len(file.Base), Hi: len(specs)}

	if catalog.CountIn(base) == 0 {
		return nil, fmt.Errorf("base tiles: %w", world.ErrEmptyDeck)
	}
	if catalog.CountIn(river) == 0 {
		return nil, fmt.Errorf("river tiles: %w", world.ErrEmptyDeck)
	}

	palette, err := ParsePalette(file.Palette)
	if err != nil {
		return nil, err
	}

	return &Set{
		Catalog: catalog,
		Base:    base,
		River:   river,
		Palette: palette,
	}, nil
}

// Spec converts the definition to a catalog tile spec.
func (d TileDef) Spec() (world.TileSpec, error) {
	spec := world.TileSpec{
		Name:     d.Name,
		Count:    d.Count,
		Cloister: d.Cloister,
		Shield:   d.Shield,
		Art:      d.Art,
	}

	if len(d.Edges) != 4 {
		return spec, fmt.Errorf("tile %q: expected 4 edges, got %d", d.Name, len(d.Edges))
	}
	if d.Count < 0 {
		return spec, fmt.Errorf("tile %q: negative count %d", d.Name, d.Count)
	}

	for i, name := range d.Edges {
		f, err := world.ParseFeature(name)
		if err != nil {
			return spec, fmt.Errorf("tile %q edge %d: %w", d.Name, i, err)
		}
		spec.Edges[i] = f
	}
	return spec, nil
}

// LoadDefault loads and builds the embedded tile set.
func LoadDefault() (*Set, error) {
	file, err := Load[File](DefaultFile)
	if err != nil {
		return nil, err
	}
	return Build(file)
}

// LoadFile loads and builds a tile set file from disk.
func LoadFile(path string) (*Set, error) {
	file, err := LoadFS[File](os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return nil, err
	}
	return Build(file)
}

// MustLoadDefault loads the embedded tile set, panicking on error.
func MustLoadDefault() *Set {
	set, err := LoadDefault()
	if err != nil {
		panic(err)
	}
	return set
}

// Names returns the tile names of a range in catalog order.
func (s *Set) Names(r world.Range) []string {
	names := make([]string, 0, r.Len())
	for i := r.Lo; i < r.Hi; i++ {
		names = append(names, s.Catalog.Spec(i).Name)
	}
	return names
}
