package app

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/samdwyer/rivermap/internal/tileset"
	"github.com/samdwyer/rivermap/internal/world"
)

// Snapshot is the JSON form of a generated map.
type Snapshot struct {
	ID      string          `json:"id"`
	Seed    int64           `json:"seed"`
	Width   int             `json:"width"`
	Height  int             `json:"height"`
	Outcome string          `json:"outcome"`
	Gaps    []world.Point   `json:"gaps"`
	Cells   [][]*CellRecord `json:"cells"` // Rows top to bottom; nil for empty cells
}

// CellRecord is one placed tile in a snapshot.
type CellRecord struct {
	Tile     string `json:"tile"`
	Rotation int    `json:"rotation"`
	Art      string `json:"art,omitempty"`
}

// NewSnapshot captures a map with tile names resolved through the set.
func NewSnapshot(m *Map, set *tileset.Set) Snapshot {
	snap := Snapshot{
		ID:      m.ID.String(),
		Seed:    m.Seed,
		Width:   m.Grid.Width,
		Height:  m.Grid.Height,
		Outcome: m.Result.Outcome.String(),
		Gaps:    m.Result.Fill.Gaps,
		Cells:   make([][]*CellRecord, m.Grid.Height),
	}
	if snap.Gaps == nil {
		snap.Gaps = []world.Point{}
	}

	for y := 0; y < m.Grid.Height; y++ {
		snap.Cells[y] = make([]*CellRecord, m.Grid.Width)
		for x := 0; x < m.Grid.Width; x++ {
			tile, ok := m.Grid.At(x, y)
			if !ok {
				continue
			}
			spec := set.Catalog.Spec(tile.Spec)
			snap.Cells[y][x] = &CellRecord{
				Tile:     spec.Name,
				Rotation: tile.Rotation,
				Art:      spec.Art,
			}
		}
	}
	return snap
}

// Export writes the map as indented JSON to rivermap-<id>.json in dir and
// returns the file path.
func Export(m *Map, set *tileset.Set, dir string) (string, error) {
	data, err := json.MarshalIndent(NewSnapshot(m, set), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode map %s: %w", m.ID, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("rivermap-%s.json", m.ID))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
