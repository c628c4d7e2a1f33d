// Package mdp defines core types and sentinel errors for finite
// Markov Decision Process models.
package mdp

import "errors"

// Sentinel errors for model construction and lookup.
var (
	// ErrUnknownState indicates a state name outside the model's enumeration.
	ErrUnknownState = errors.New("mdp: unknown state")

	// ErrUnknownAction indicates an action name outside the model's enumeration.
	ErrUnknownAction = errors.New("mdp: unknown action")

	// ErrBadDiscount indicates a discount factor outside the half-open range (0,1].
	ErrBadDiscount = errors.New("mdp: discount factor must be in (0,1]")

	// ErrNegativeProbability indicates a transition added with probability < 0.
	ErrNegativeProbability = errors.New("mdp: transition probability must be non-negative")

	// ErrDuplicateName indicates a repeated state or action name at construction.
	ErrDuplicateName = errors.New("mdp: duplicate state or action name")

	// ErrNoStates indicates a model constructed with an empty state enumeration.
	ErrNoStates = errors.New("mdp: model must enumerate at least one state")

	// ErrNoActions indicates a model constructed with an empty action enumeration.
	ErrNoActions = errors.New("mdp: model must enumerate at least one action")
)

// State identifies a single state of the decision process.
type State string

// Action identifies a single action of the decision process.
type Action string

// Outcome is one (successor, probability) entry of a transition
// distribution. Dense enumerations include zero-probability outcomes;
// sparse enumerations carry only nonzero ones.
type Outcome struct {
	Next State   // successor state
	Prob float64 // transition probability
}

// Model is the read-only capability set required by every solver.
// Implementations must keep all answers stable for the duration of a
// solve: enumeration order defines array layout.
//
// StateIndex and ActionIndex report (index, true) for enumerated names
// and (0, false) otherwise; indices are dense in [0, n).
type Model interface {
	// Discount returns the discount factor γ ∈ (0,1].
	Discount() float64

	// States returns the ordered state enumeration.
	States() []State

	// Actions returns the ordered action enumeration.
	Actions() []Action

	// StateIndex maps a state to its stable index.
	StateIndex(s State) (int, bool)

	// ActionIndex maps an action to its stable index.
	ActionIndex(a Action) (int, bool)

	// LegalActions returns the actions available at s, in enumeration
	// order. May be the full action set.
	LegalActions(s State) []Action

	// IsTerminal reports whether s has no outgoing transitions.
	IsTerminal(s State) bool

	// Reward returns the reward for taking a in s and landing in next.
	Reward(s State, a Action, next State) float64
}

// DenseModel is a Model whose transition distributions can be enumerated
// in full, one Outcome per state in enumeration order (zeros included).
type DenseModel interface {
	Model

	// Transition returns the full successor distribution of (s, a):
	// exactly len(States()) outcomes, aligned with state enumeration order.
	Transition(s State, a Action) []Outcome
}

// SparseModel is a Model whose transition distributions expose only
// their nonzero-probability support.
type SparseModel interface {
	Model

	// Support returns the nonzero-probability outcomes of (s, a).
	// Every returned Outcome has Prob > 0.
	Support(s State, a Action) []Outcome
}
