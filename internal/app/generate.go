package app

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/rivermap/internal/placement"
	"github.com/samdwyer/rivermap/internal/telemetry"
	"github.com/samdwyer/rivermap/internal/tileset"
	"github.com/samdwyer/rivermap/internal/world"
)

// Map is one generated map.
type Map struct {
	ID     uuid.UUID
	Seed   int64
	Grid   *world.Grid
	Result placement.Result
}

// Generate allocates a width by height grid and places the river and base
// tiles of the set on it, drawing from a generator seeded with seed.
func Generate(ctx context.Context, set *tileset.Set, width, height int, seed int64, budget placement.Budget) (*Map, error) {
	ctx, span := telemetry.Tracer("app").Start(ctx, "map.generate")
	defer span.End()

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid grid size %dx%d", width, height)
	}

	m := &Map{
		ID:   uuid.New(),
		Seed: seed,
		Grid: world.NewGrid(width, height),
	}
	span.SetAttributes(
		attribute.String("map.id", m.ID.String()),
		attribute.Int64("map.seed", seed),
	)

	engine := placement.NewEngine(m.Grid, set.Catalog, rand.New(rand.NewSource(seed)), budget)
	result, err := engine.Run(ctx, set.River, set.Base)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	m.Result = result

	return m, nil
}

// ReportLines describes the map and its placement report for display.
func (m *Map) ReportLines() []string {
	r := m.Result
	lines := []string{
		fmt.Sprintf("map      %s", m.ID),
		fmt.Sprintf("seed     %d", m.Seed),
		fmt.Sprintf("size     %dx%d", m.Grid.Width, m.Grid.Height),
		fmt.Sprintf("outcome  %s", r.Outcome),
		"",
		fmt.Sprintf("river    attempts %d, succeeded %t", r.River.Attempts, r.River.Succeeded),
		fmt.Sprintf("         seed (%d,%d), %d tiles, length %d, %d draws",
			r.River.Seed.X, r.River.Seed.Y, r.River.Placed, r.River.Length, r.River.Draws),
		fmt.Sprintf("fill     %d of %d cells placed, %d draws",
			r.Fill.Placed, r.Fill.Candidates, r.Fill.Draws),
	}
	for _, gap := range r.Fill.Gaps {
		lines = append(lines, fmt.Sprintf("         gap at (%d,%d)", gap.X, gap.Y))
	}
	return lines
}
