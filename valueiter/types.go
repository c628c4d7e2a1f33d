// Package valueiter provides tunable options and error definitions for
// the dense and sparse value-iteration solvers.
package valueiter

import (
	"errors"
	"fmt"
	"time"
)

// Default configuration values applied by DefaultOptions.
const (
	// DefaultMaxIterations caps the number of outer sweeps.
	DefaultMaxIterations = 100

	// DefaultTolerance is the convergence threshold on the Bellman residual.
	DefaultTolerance = 1e-3
)

// Sentinel errors for solver configuration and execution.
var (
	// ErrNilModel is returned if a nil model is passed to a solver.
	ErrNilModel = errors.New("valueiter: model is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("valueiter: invalid option supplied")

	// ErrInitialValueLen is returned when a warm-start value vector does
	// not match the model's state count exactly.
	ErrInitialValueLen = errors.New("valueiter: initial value length mismatches state count")

	// ErrNoStates is returned when the model enumerates no states.
	ErrNoStates = errors.New("valueiter: model enumerates no states")

	// ErrNoActions is returned when the model enumerates no actions, or a
	// non-terminal state offers no legal action.
	ErrNoActions = errors.New("valueiter: model offers no actions")

	// ErrBadDiscount is returned when the model's discount factor lies
	// outside (0,1].
	ErrBadDiscount = errors.New("valueiter: model discount must be in (0,1]")

	// ErrModelCapability is returned when a capability probe fails before
	// the first sweep (unindexable state/action, nil transition view).
	ErrModelCapability = errors.New("valueiter: model capability probe failed")

	// ErrStateNotFound is returned by container queries for a state the
	// model cannot index.
	ErrStateNotFound = errors.New("valueiter: state not found in model")
)

// Option configures a solve via functional arguments. If an Option is
// invalid (non-positive iteration cap or tolerance), it is recorded
// internally and surfaced as ErrOptionViolation when the solver runs.
type Option func(*Options)

// Options holds parameters and callbacks customizing a solve.
type Options struct {
	// MaxIterations is the hard cap on outer sweeps. Must be ≥ 1.
	MaxIterations int

	// Tolerance is the convergence threshold: the solve stops once the
	// sweep residual drops strictly below it. Must be > 0.
	Tolerance float64

	// IncludeQ controls whether the per-(state, action) Q-matrix is
	// allocated and populated. On by default.
	IncludeQ bool

	// InitialValue, when non-nil, seeds the value vector (warm start).
	// Its length must equal the model's state count.
	InitialValue []float64

	// Warm, when non-nil, reuses a previously solved container instead of
	// allocating a fresh one; its arrays are mutated in place.
	Warm *PolicyValue

	// OnSweep is called after every completed sweep with the 1-based
	// sweep number, the sweep residual, and the sweep's wall time.
	OnSweep func(sweep int, residual float64, elapsed time.Duration)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - MaxIterations = 100
//   - Tolerance     = 1e-3
//   - IncludeQ      = true
//   - cold start (zero value vector, fresh container)
//   - no-op OnSweep hook.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		Tolerance:     DefaultTolerance,
		IncludeQ:      true,
		OnSweep:       func(int, float64, time.Duration) {},
	}
}

// WithMaxIterations caps the number of outer sweeps.
//
//	n ≥ 1: run at most n sweeps
//	n < 1: invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: MaxIterations must be positive (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxIterations = n
	}
}

// WithTolerance sets the convergence threshold on the sweep residual.
// Must be positive; zero or negative values cause ErrOptionViolation.
func WithTolerance(eps float64) Option {
	return func(o *Options) {
		if eps <= 0 {
			o.err = fmt.Errorf("%w: Tolerance must be positive (%g)", ErrOptionViolation, eps)

			return
		}
		o.Tolerance = eps
	}
}

// WithoutQ disables allocation and population of the Q-matrix. Queries
// still work; only per-action value estimates are omitted.
func WithoutQ() Option {
	return func(o *Options) {
		o.IncludeQ = false
	}
}

// WithInitialValue seeds the value vector for a warm start. The length
// is validated against the model's state count when the solver runs;
// a mismatch fails with ErrInitialValueLen before the first sweep.
func WithInitialValue(v []float64) Option {
	return func(o *Options) {
		o.InitialValue = v
	}
}

// WithWarmStart reuses a previously solved container: its value, policy
// and Q arrays are mutated in place by the new solve. The container must
// originate from the same model (same enumeration order).
func WithWarmStart(pv *PolicyValue) Option {
	return func(o *Options) {
		o.Warm = pv
	}
}

// WithOnSweep registers a progress hook invoked after every sweep. The
// hook is a side channel for observability and has no effect on the
// algorithm.
func WithOnSweep(fn func(sweep int, residual float64, elapsed time.Duration)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSweep = fn
		}
	}
}
