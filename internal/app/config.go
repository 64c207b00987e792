package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/samdwyer/rivermap/internal/placement"
)

// Config holds map generation options.
type Config struct {
	// Seed for random number generation. Used for reproducible maps.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Grid size in tiles. Zero derives the size from the terminal.
	Width  int
	Height int

	Budget placement.Budget

	// Directory JSON snapshots are written to.
	ExportDir string

	// Optional tile set file replacing the embedded one.
	TilesetPath string
}

// DefaultConfig returns the configuration used when no variables are set.
func DefaultConfig() Config {
	return Config{
		Budget:    placement.DefaultBudget(),
		ExportDir: ".",
	}
}

// LoadConfig reads RIVERMAP_* variables on top of DefaultConfig.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	ints := []struct {
		name string
		dst  *int
	}{
		{"RIVERMAP_WIDTH", &cfg.Width},
		{"RIVERMAP_HEIGHT", &cfg.Height},
		{"RIVERMAP_RIVER_ATTEMPTS", &cfg.Budget.RiverAttempts},
		{"RIVERMAP_RIVER_DRAWS", &cfg.Budget.RiverDraws},
		{"RIVERMAP_FILL_DRAWS", &cfg.Budget.FillDraws},
	}
	for _, v := range ints {
		raw, ok := os.LookupEnv(v.name)
		if !ok || raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", v.name, err)
		}
		if n < 0 {
			return cfg, fmt.Errorf("%s: must not be negative, got %d", v.name, n)
		}
		*v.dst = n
	}

	if raw := os.Getenv("RIVERMAP_SEED"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("RIVERMAP_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	if dir := os.Getenv("RIVERMAP_EXPORT_DIR"); dir != "" {
		cfg.ExportDir = dir
	}
	cfg.TilesetPath = os.Getenv("RIVERMAP_TILESET")

	return cfg, nil
}

// GridSize returns the configured grid size, filling unset dimensions from
// a terminal of cols by rows cells.
func (c Config) GridSize(cols, rows int) (width, height int) {
	width, height = c.Width, c.Height
	if width == 0 {
		width = 1 + cols/3
	}
	if height == 0 {
		height = 1 + rows/3
	}
	return width, height
}

// NextSeed returns the configured seed, or a time-based one when unset.
func (c Config) NextSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
