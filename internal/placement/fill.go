package placement

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/rivermap/internal/world"
)

// FillReport describes the fill phase.
type FillReport struct {
	Candidates int           // Empty cells found before filling
	Placed     int           // Cells that received a tile
	Gaps       []world.Point // Cells left empty after the draw budget ran out
	Draws      int           // Candidate draws over all cells
}

// Fill makes one pass over the empty cells, trying random tiles from the
// range on each until one fits or the draw budget runs out. Cells that cannot
// be filled stay empty and are listed in Gaps.
func (e *Engine) Fill(ctx context.Context, r world.Range) (FillReport, error) {
	_, span := e.tracer.Start(ctx, "placement.fill")
	defer span.End()

	report := FillReport{Gaps: make([]world.Point, 0)}

	deck, err := e.catalog.Deck(r)
	if err != nil {
		return report, fmt.Errorf("fill deck: %w", err)
	}

	remaining := e.grid.EmptyCells()
	report.Candidates = len(remaining)

	for len(remaining) > 0 {
		p := remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]

		placed := false
		for i := 0; i < e.budget.FillDraws; i++ {
			report.Draws++
			tile := deck[e.rng.Intn(len(deck))]

			// Rotating a tile with four equal edges changes nothing.
			rotation := 0
			if e.catalog.Spec(tile).CanBeRotated() {
				rotation = e.rng.Intn(4)
			}

			if world.CanPlace(e.grid, e.catalog, tile, p.X, p.Y, rotation) {
				e.grid.Set(p.X, p.Y, world.PlacedTile{Spec: tile, Rotation: rotation})
				placed = true
				break
			}
		}

		if placed {
			report.Placed++
		} else {
			report.Gaps = append(report.Gaps, p)
		}
	}

	span.SetAttributes(
		attribute.Int("fill.candidates", report.Candidates),
		attribute.Int("fill.placed", report.Placed),
		attribute.Int("fill.gaps", len(report.Gaps)),
		attribute.Int("fill.draws", report.Draws),
	)

	return report, nil
}
