package placement

import (
	"errors"
	"fmt"
)

var (
	// ErrRiverExhausted reports that no river attempt succeeded.
	ErrRiverExhausted = errors.New("placement: river attempts exhausted")
	// ErrUnfilledCells reports that the fill phase left cells empty.
	ErrUnfilledCells = errors.New("placement: cells left unfilled")
)

// Outcome summarizes how complete a placement run was.
type Outcome int

const (
	// OutcomeComplete means the river succeeded and every cell was filled.
	OutcomeComplete Outcome = iota
	// OutcomePartial means the river succeeded but some cells stayed empty.
	OutcomePartial
	// OutcomeDegraded means every river attempt failed.
	OutcomeDegraded
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeComplete:
		return "complete"
	case OutcomePartial:
		return "partial"
	case OutcomeDegraded:
		return "degraded"
	default:
		return "unknown"
	}
}

// Result is the report of a full placement run.
type Result struct {
	Outcome Outcome
	River   RiverReport
	Fill    FillReport
}

func (r Result) outcome() Outcome {
	switch {
	case !r.River.Succeeded:
		return OutcomeDegraded
	case len(r.Fill.Gaps) > 0:
		return OutcomePartial
	default:
		return OutcomeComplete
	}
}

// Err returns the degradations of the run as warnings, or nil if the run
// was complete. Use errors.Is with ErrRiverExhausted or ErrUnfilledCells.
func (r Result) Err() error {
	var errs []error
	if !r.River.Succeeded {
		errs = append(errs, fmt.Errorf("%w after %d attempts", ErrRiverExhausted, r.River.Attempts))
	}
	if n := len(r.Fill.Gaps); n > 0 {
		errs = append(errs, fmt.Errorf("%w: %d of %d", ErrUnfilledCells, n, r.Fill.Candidates))
	}
	return errors.Join(errs...)
}
