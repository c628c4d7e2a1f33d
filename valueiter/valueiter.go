// Package valueiter implements Value Iteration over finite MDPs.
//
// Both solver variants run the same Bellman sweep over the same
// PolicyValue container; they differ only in how successor outcomes are
// enumerated. Solve walks each (state, action)'s full distribution and
// skips zero-probability entries; SolveSparse walks a compact
// nonzero-only support. For a model exposing both views of the same
// transition structure the two produce equivalent values and identical
// policies (up to floating-point summation order).
package valueiter

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/bellman/mdp"
)

// Solve runs dense value iteration on m until the Bellman residual
// drops below the tolerance or the iteration cap is reached. Hitting
// the cap is NOT an error: the container is returned with the best
// values obtained, and PolicyValue.Residual records what was achieved.
//
// Preconditions and validation (in order):
//  1. m must be non-nil (ErrNilModel).
//  2. Options must be valid (ErrOptionViolation).
//  3. m must enumerate at least one state and one action
//     (ErrNoStates / ErrNoActions).
//  4. m's discount must lie in (0,1] (ErrBadDiscount).
//  5. A warm-start value vector must match the state count
//     (ErrInitialValueLen).
//  6. m must pass the capability probe: indexable states/actions, legal
//     actions at every non-terminal state, an enumerable transition
//     distribution (ErrModelCapability). The probe runs once, before the
//     first sweep — a capability failure never surfaces mid-solve.
//
// Options customization:
//
//   - WithMaxIterations(n): cap outer sweeps (default 100).
//   - WithTolerance(eps): convergence threshold (default 1e-3).
//   - WithoutQ(): skip the Q-matrix.
//   - WithInitialValue(v) / WithWarmStart(pv): warm starts.
//   - WithOnSweep(fn): per-sweep progress hook.
//
// Complexity:
//
//   - Time:  O(maxIter · S² · A)
//   - Space: O(S · A) with Q-tracking, O(S) without
func Solve(m mdp.DenseModel, opts ...Option) (*PolicyValue, error) {
	if m == nil {
		return nil, ErrNilModel
	}

	r, err := newRunner(m, opts)
	if err != nil {
		return nil, err
	}

	// Probe the dense capability on one representative pair: the
	// distribution must enumerate every successor in enumeration order.
	if s, a, ok := r.probePair(); ok {
		if dist := m.Transition(s, a); len(dist) != len(r.states) {
			return nil, fmt.Errorf("%w: Transition(%q,%q) enumerates %d of %d successors",
				ErrModelCapability, s, a, len(m.Transition(s, a)), len(r.states))
		}
	}

	// Expected value of (s, a) over the full distribution. Outcomes are
	// aligned with state enumeration order, so the loop index doubles as
	// the successor index; exact zeros are skipped for speed only.
	r.expected = func(s mdp.State, a mdp.Action) float64 {
		var u float64
		for ni, o := range m.Transition(s, a) {
			if o.Prob == 0 {
				continue
			}
			u += o.Prob * (m.Reward(s, a, o.Next) + r.gamma*r.pv.Value[ni])
		}

		return u
	}

	return r.run()
}

// SolveSparse runs value iteration on m using only nonzero-probability
// successor enumeration. The contract, validation order, options and
// results match Solve exactly; only the transition representation
// differs, making this the cheaper path for models whose distributions
// are mostly zeros.
//
// Complexity:
//
//   - Time:  O(maxIter · E · A), E = total nonzero outcomes per action layer
//   - Space: O(S · A) with Q-tracking, O(S) without
func SolveSparse(m mdp.SparseModel, opts ...Option) (*PolicyValue, error) {
	if m == nil {
		return nil, ErrNilModel
	}

	r, err := newRunner(m, opts)
	if err != nil {
		return nil, err
	}

	// Probe the sparse capability: every supported successor must be
	// indexable. One representative pair keeps the probe cheap.
	if s, a, ok := r.probePair(); ok {
		for _, o := range m.Support(s, a) {
			if _, ok = m.StateIndex(o.Next); !ok {
				return nil, fmt.Errorf("%w: Support(%q,%q) yields unindexable successor %q",
					ErrModelCapability, s, a, o.Next)
			}
		}
	}

	// Expected value of (s, a) over the support only. Entries arrive in
	// arbitrary order, so successors are resolved through StateIndex.
	r.expected = func(s mdp.State, a mdp.Action) float64 {
		var u float64
		var ni int
		for _, o := range m.Support(s, a) {
			ni, _ = m.StateIndex(o.Next)
			u += o.Prob * (m.Reward(s, a, o.Next) + r.gamma*r.pv.Value[ni])
		}

		return u
	}

	return r.run()
}

// runner holds the mutable state of a single solve.
type runner struct {
	model  mdp.Model    // the input model; read-only during the solve
	cfg    Options      // validated configuration
	pv     *PolicyValue // container mutated in place across sweeps
	states []mdp.State  // cached state enumeration
	gamma  float64      // cached discount factor

	// expected computes the Bellman backup of one (state, action) pair;
	// it is the only point where the dense and sparse variants differ.
	expected func(s mdp.State, a mdp.Action) float64
}

// newRunner validates options and model capabilities, prepares the
// container (fresh, warm, or seeded), and returns a runner ready to
// sweep. All fatal conditions surface here, before any iteration.
func newRunner(m mdp.Model, opts []Option) (*runner, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate the model's enumerations.
	states := m.States()
	if len(states) == 0 {
		return nil, ErrNoStates
	}
	if len(m.Actions()) == 0 {
		return nil, ErrNoActions
	}

	// 3) Validate the discount factor.
	if g := m.Discount(); g <= 0 || g > 1 {
		return nil, fmt.Errorf("%w: got %g", ErrBadDiscount, g)
	}

	// 4) Prepare the container: reuse a warm one or allocate fresh.
	pv := cfg.Warm
	if pv == nil {
		pv = NewPolicyValue(m)
	} else if len(pv.Value) != len(states) || len(pv.Policy) != len(states) {
		return nil, fmt.Errorf("%w: container holds %d states, model %d",
			ErrInitialValueLen, len(pv.Value), len(states))
	}

	// 5) Seed the value vector when a warm-start vector was supplied.
	if cfg.InitialValue != nil {
		if len(cfg.InitialValue) != len(states) {
			return nil, fmt.Errorf("%w: got %d, want %d",
				ErrInitialValueLen, len(cfg.InitialValue), len(states))
		}
		copy(pv.Value, cfg.InitialValue)
	}

	// 6) Allocate or drop the Q-matrix per configuration.
	if cfg.IncludeQ {
		if pv.Q == nil {
			pv.Q = make([][]float64, len(states))
			for i := range pv.Q {
				pv.Q[i] = make([]float64, len(m.Actions()))
			}
		}
	} else {
		pv.Q = nil
	}

	// 7) Capability probe: every state must be indexable, and every
	//    non-terminal state must offer at least one indexable action.
	for i, s := range states {
		si, ok := m.StateIndex(s)
		if !ok || si != i {
			return nil, fmt.Errorf("%w: state %q has no stable index", ErrModelCapability, s)
		}
		if m.IsTerminal(s) {
			continue
		}
		legal := m.LegalActions(s)
		if len(legal) == 0 {
			return nil, fmt.Errorf("%w: non-terminal state %q", ErrNoActions, s)
		}
		for _, a := range legal {
			if _, ok = m.ActionIndex(a); !ok {
				return nil, fmt.Errorf("%w: action %q at state %q has no index", ErrModelCapability, a, s)
			}
		}
	}

	return &runner{
		model:  m,
		cfg:    cfg,
		pv:     pv,
		states: states,
		gamma:  m.Discount(),
	}, nil
}

// probePair returns the first non-terminal (state, legal action) pair,
// used as the representative sample for transition capability probes.
// ok is false for models whose states are all terminal — nothing to
// probe, and the sweep will never enumerate a transition either.
func (r *runner) probePair() (mdp.State, mdp.Action, bool) {
	for _, s := range r.states {
		if r.model.IsTerminal(s) {
			continue
		}

		return s, r.model.LegalActions(s)[0], true
	}

	return "", "", false
}

// run executes outer sweeps until convergence or the iteration cap.
// Each sweep is strictly sequential over states; values update in
// place, so later states observe earlier states' fresh estimates within
// the same sweep. Both exits return the container, never an error.
func (r *runner) run() (*PolicyValue, error) {
	var (
		start    time.Time
		residual float64
	)
	for sweep := 1; sweep <= r.cfg.MaxIterations; sweep++ {
		start = time.Now()
		residual = r.sweep()
		r.pv.Sweeps = sweep
		r.pv.Residual = residual
		r.cfg.OnSweep(sweep, residual, time.Since(start))

		// Converged: skip the remaining sweeps.
		if residual < r.cfg.Tolerance {
			break
		}
	}

	return r.pv, nil
}

// sweep applies one Bellman update to every state in enumeration order
// and returns the sweep residual (max per-state absolute value change).
func (r *runner) sweep() float64 {
	var (
		residual float64
		old      float64
		best     float64
		u        float64
		ai       int
	)
	for si, s := range r.states {
		// Terminal states are pinned: value 0, first action, and no
		// residual contribution.
		if r.model.IsTerminal(s) {
			r.pv.Value[si] = 0
			r.pv.Policy[si] = 0

			continue
		}

		old = r.pv.Value[si]

		// Running maximum starts at -Inf so the first action always wins;
		// subsequent actions overwrite only on a strictly greater value,
		// which resolves ties to the earliest action in enumeration order.
		best = math.Inf(-1)
		for _, a := range r.model.LegalActions(s) {
			ai, _ = r.model.ActionIndex(a)
			u = r.expected(s, a)
			if u > best {
				best = u
				r.pv.Policy[si] = ai
			}
			if r.pv.Q != nil {
				r.pv.Q[si][ai] = u
			}
		}

		r.pv.Value[si] = best
		if d := math.Abs(best - old); d > residual {
			residual = d
		}
	}

	return residual
}
