// Package placement runs the two-phase randomized tile placement: a river
// random walk with whole-attempt retry, then a trial-and-error fill.
package placement

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/rivermap/internal/telemetry"
	"github.com/samdwyer/rivermap/internal/world"
)

// Source is a uniform random integer generator. *rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
}

// Budget bounds the work done by each phase.
type Budget struct {
	RiverAttempts int // Whole river attempts before giving up
	RiverDraws    int // Random draws per pending river cell
	FillDraws     int // Random draws per empty cell in the fill phase
}

// DefaultBudget returns the standard placement budgets.
func DefaultBudget() Budget {
	return Budget{
		RiverAttempts: 1000,
		RiverDraws:    100,
		FillDraws:     15000,
	}
}

// Engine places tiles from a catalog onto a grid it owns while running.
type Engine struct {
	grid    *world.Grid
	catalog *world.Catalog
	rng     Source
	budget  Budget
	tracer  trace.Tracer
}

// NewEngine creates an engine for the given grid and catalog.
func NewEngine(grid *world.Grid, catalog *world.Catalog, rng Source, budget Budget) *Engine {
	return &Engine{
		grid:    grid,
		catalog: catalog,
		rng:     rng,
		budget:  budget,
		tracer:  telemetry.Tracer("placement"),
	}
}

// Run places the river from the river range and then fills every remaining
// cell from the base range. The error is only set for configuration problems
// found before any tile is placed; degraded placement is reported in Result.
func (e *Engine) Run(ctx context.Context, river, base world.Range) (Result, error) {
	ctx, span := e.tracer.Start(ctx, "placement.run")
	defer span.End()

	// Validate both decks before touching the grid.
	if _, err := e.catalog.Deck(river); err != nil {
		return Result{}, fmt.Errorf("river deck: %w", err)
	}
	if _, err := e.catalog.Deck(base); err != nil {
		return Result{}, fmt.Errorf("fill deck: %w", err)
	}

	var result Result
	var err error

	result.River, err = e.PlaceRiver(ctx, river)
	if err != nil {
		return Result{}, err
	}

	result.Fill, err = e.Fill(ctx, base)
	if err != nil {
		return Result{}, err
	}

	result.Outcome = result.outcome()

	span.SetAttributes(
		attribute.Int("grid.width", e.grid.Width),
		attribute.Int("grid.height", e.grid.Height),
		attribute.String("placement.outcome", result.Outcome.String()),
		attribute.Int("grid.occupied", e.grid.Occupied()),
	)

	return result, nil
}
