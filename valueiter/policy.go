package valueiter

import (
	"fmt"

	"github.com/katalvlaran/bellman/mdp"
)

// PolicyValue is the result container of a solve: the state-value
// vector, the greedy policy, and (optionally) the full Q-matrix. The
// solver mutates it in place across sweeps; once a solve returns, the
// container is no longer mutated and is safe for concurrent read-only
// queries.
type PolicyValue struct {
	// Value holds the per-state value estimate, indexed by state index.
	Value []float64

	// Q holds per-(state, action) value estimates, or nil when Q-tracking
	// was disabled. When present, Policy[s] is the argmax of Q[s] with
	// ties resolved to the first action in enumeration order.
	Q [][]float64

	// Policy holds the greedy action index per state. The zero value is
	// the first enumerated action, a valid index, not a sentinel.
	Policy []int

	// Sweeps is the number of outer sweeps the last solve executed.
	Sweeps int

	// Residual is the last sweep's maximum per-state value change.
	// Callers can compare it against their tolerance to tell a converged
	// solve from one stopped by the iteration cap.
	Residual float64

	actions []mdp.Action // action index → action, fixed at construction
	model   mdp.Model    // index translation for queries
}

// NewPolicyValue allocates a zero-valued container sized for m. Value
// and Policy are allocated; Q stays nil until a solve with Q-tracking
// populates it.
func NewPolicyValue(m mdp.Model) *PolicyValue {
	n := len(m.States())

	return &PolicyValue{
		Value:   make([]float64, n),
		Policy:  make([]int, n),
		actions: append([]mdp.Action(nil), m.Actions()...),
		model:   m,
	}
}

// Action returns the greedy action at s.
// Fails with ErrStateNotFound if the model cannot index s.
func (pv *PolicyValue) Action(s mdp.State) (mdp.Action, error) {
	si, ok := pv.model.StateIndex(s)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrStateNotFound, s)
	}

	return pv.actions[pv.Policy[si]], nil
}

// ValueOf returns the value estimate of s.
// Fails with ErrStateNotFound if the model cannot index s.
func (pv *PolicyValue) ValueOf(s mdp.State) (float64, error) {
	si, ok := pv.model.StateIndex(s)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrStateNotFound, s)
	}

	return pv.Value[si], nil
}

// ActionByIndex maps an action index back to the concrete action.
// Index validity is the caller's contract (Policy entries always are).
func (pv *PolicyValue) ActionByIndex(i int) mdp.Action { return pv.actions[i] }
