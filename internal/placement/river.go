package placement

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/rivermap/internal/world"
)

// RiverReport describes the river phase.
type RiverReport struct {
	Attempts  int         // Attempts started, including the successful one
	Succeeded bool        // An attempt finished with no pending cells left
	Seed      world.Point // Start cell of the last attempt
	Placed    int         // River tiles on the grid after the phase
	Length    int         // Cells connected to the seed through river edges
	Draws     int         // Candidate draws over all attempts
}

// PlaceRiver runs river attempts until one succeeds or the attempt budget is
// spent. The grid is cleared before every retry. When every attempt fails the
// tiles of the last attempt stay on the grid.
func (e *Engine) PlaceRiver(ctx context.Context, r world.Range) (RiverReport, error) {
	_, span := e.tracer.Start(ctx, "placement.river")
	defer span.End()

	var report RiverReport

	deck, err := e.catalog.Deck(r)
	if err != nil {
		return report, fmt.Errorf("river deck: %w", err)
	}

	for attempt := 0; attempt < e.budget.RiverAttempts; attempt++ {
		if attempt > 0 {
			e.grid.Clear()
		}
		report.Attempts++

		seed, draws, ok := e.riverAttempt(deck)
		report.Seed = seed
		report.Draws += draws
		if ok {
			report.Succeeded = true
			break
		}

		span.AddEvent("river.attempt_failed", trace.WithAttributes(
			attribute.Int("attempt", attempt+1),
			attribute.Int("seed.x", seed.X),
			attribute.Int("seed.y", seed.Y),
		))
	}

	report.Placed = e.grid.Occupied()
	if report.Attempts > 0 {
		report.Length = world.RiverNetwork(e.grid, e.catalog, report.Seed).Size()
	}

	span.SetAttributes(
		attribute.Int("river.attempts", report.Attempts),
		attribute.Bool("river.succeeded", report.Succeeded),
		attribute.Int("river.placed", report.Placed),
		attribute.Int("river.length", report.Length),
		attribute.Int("river.draws", report.Draws),
	)

	return report, nil
}

// riverAttempt grows one river from a random seed cell. It fails as soon as a
// pending cell cannot take any drawn tile within the draw budget.
func (e *Engine) riverAttempt(deck world.Deck) (seed world.Point, draws int, ok bool) {
	seed.X = e.rng.Intn(e.grid.Width)
	seed.Y = e.rng.Intn(e.grid.Height)

	pending := make([]world.Point, 0)
	pending = e.placeRiverTile(pending, seed, world.PlacedTile{Spec: deck[0]})

	for len(pending) > 0 {
		p := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		// Cells can be pushed more than once before they are filled.
		if !e.grid.IsEmpty(p.X, p.Y) {
			continue
		}

		placed := false
		for i := 0; i < e.budget.RiverDraws; i++ {
			draws++
			rotation := e.rng.Intn(4)
			tile := deck[e.rng.Intn(len(deck))]

			if world.CanPlace(e.grid, e.catalog, tile, p.X, p.Y, rotation) {
				pending = e.placeRiverTile(pending, p, world.PlacedTile{Spec: tile, Rotation: rotation})
				placed = true
				break
			}
		}

		if !placed {
			return seed, draws, false
		}
	}

	return seed, draws, true
}

// placeRiverTile puts a tile on the grid and queues every empty neighbor its
// river edges point at.
func (e *Engine) placeRiverTile(pending []world.Point, p world.Point, tile world.PlacedTile) []world.Point {
	e.grid.Set(p.X, p.Y, tile)

	for _, d := range world.Directions {
		if world.FacingEdge(e.catalog, tile, d) != world.FeatureRiver {
			continue
		}
		n := p.Add(d)
		if e.grid.IsEmpty(n.X, n.Y) {
			pending = append(pending, n)
		}
	}
	return pending
}
