package mdp

import "fmt"

// Tabular is a flat-array MDP: transition probabilities and rewards are
// stored per (state, action, successor) triple, indexed by the stable
// enumeration indices. It satisfies both DenseModel and SparseModel, so
// the same model instance can drive either solver variant.
//
// A Tabular model is mutable while being built (AddTransition,
// SetTerminal, RestrictActions) and must not be mutated once handed to a
// solver.
type Tabular struct {
	states   []State       // ordered state enumeration
	actions  []Action      // ordered action enumeration
	sIndex   map[State]int // state name → index
	aIndex   map[Action]int
	gamma    float64       // discount factor in (0,1]
	terminal []bool        // terminal flag per state index
	legal    [][]Action    // per-state action restriction; nil row = full set
	probs    [][][]float64 // probs[s][a][n] = p(n | s, a)
	rewards  [][][]float64 // rewards[s][a][n] = r(s, a, n)
	support  [][][]Outcome // support[s][a] = nonzero outcomes, insertion order
}

// NewTabular builds an empty tabular model over the given enumerations.
// Enumeration order is preserved and defines all indices.
//
// Preconditions and validation (in order):
//  1. states must be non-empty (ErrNoStates).
//  2. actions must be non-empty (ErrNoActions).
//  3. discount must lie in (0,1] (ErrBadDiscount).
//  4. state and action names must be unique (ErrDuplicateName).
//
// All transitions start at probability zero; populate them with
// AddTransition.
func NewTabular(states []State, actions []Action, discount float64) (*Tabular, error) {
	// 1) Validate enumerations are non-empty.
	if len(states) == 0 {
		return nil, ErrNoStates
	}
	if len(actions) == 0 {
		return nil, ErrNoActions
	}

	// 2) Validate the discount factor: γ ≤ 0 gives a degenerate process,
	//    γ > 1 diverges under iteration.
	if discount <= 0 || discount > 1 {
		return nil, fmt.Errorf("%w: got %g", ErrBadDiscount, discount)
	}

	// 3) Build index maps, rejecting duplicates.
	sIndex := make(map[State]int, len(states))
	for i, s := range states {
		if _, seen := sIndex[s]; seen {
			return nil, fmt.Errorf("%w: state %q", ErrDuplicateName, s)
		}
		sIndex[s] = i
	}
	aIndex := make(map[Action]int, len(actions))
	for i, a := range actions {
		if _, seen := aIndex[a]; seen {
			return nil, fmt.Errorf("%w: action %q", ErrDuplicateName, a)
		}
		aIndex[a] = i
	}

	// 4) Allocate flat storage: one probability/reward row per (s, a),
	//    each row spanning all successors.
	nS, nA := len(states), len(actions)
	probs := make([][][]float64, nS)
	rewards := make([][][]float64, nS)
	support := make([][][]Outcome, nS)
	for s := 0; s < nS; s++ {
		probs[s] = make([][]float64, nA)
		rewards[s] = make([][]float64, nA)
		support[s] = make([][]Outcome, nA)
		for a := 0; a < nA; a++ {
			probs[s][a] = make([]float64, nS)
			rewards[s][a] = make([]float64, nS)
		}
	}

	return &Tabular{
		states:   append([]State(nil), states...),
		actions:  append([]Action(nil), actions...),
		sIndex:   sIndex,
		aIndex:   aIndex,
		gamma:    discount,
		terminal: make([]bool, nS),
		legal:    make([][]Action, nS),
		probs:    probs,
		rewards:  rewards,
		support:  support,
	}, nil
}

// AddTransition records p(next | s, a) = prob with reward r(s, a, next) = reward.
// Re-adding the same triple overwrites the previous entry.
//
// Validation (in order): s, a, next must be enumerated names
// (ErrUnknownState / ErrUnknownAction); prob must be ≥ 0
// (ErrNegativeProbability). Whether the outcomes of (s, a) sum to one is
// the caller's contract; no normalization is performed.
func (t *Tabular) AddTransition(s State, a Action, next State, prob, reward float64) error {
	si, ok := t.sIndex[s]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownState, s)
	}
	ai, ok := t.aIndex[a]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, a)
	}
	ni, ok := t.sIndex[next]
	if !ok {
		return fmt.Errorf("%w: successor %q", ErrUnknownState, next)
	}
	if prob < 0 {
		return fmt.Errorf("%w: p(%q|%q,%q) = %g", ErrNegativeProbability, next, s, a, prob)
	}

	prev := t.probs[si][ai][ni]
	t.probs[si][ai][ni] = prob
	t.rewards[si][ai][ni] = reward

	// Keep the sparse view in sync: replace an existing support entry,
	// append a fresh nonzero one, or drop an entry zeroed by overwrite.
	switch {
	case prev > 0 && prob > 0:
		for i := range t.support[si][ai] {
			if t.support[si][ai][i].Next == next {
				t.support[si][ai][i].Prob = prob
				break
			}
		}
	case prev > 0 && prob == 0:
		row := t.support[si][ai][:0]
		for _, o := range t.support[si][ai] {
			if o.Next != next {
				row = append(row, o)
			}
		}
		t.support[si][ai] = row
	case prob > 0:
		t.support[si][ai] = append(t.support[si][ai], Outcome{Next: next, Prob: prob})
	}

	return nil
}

// SetTerminal marks s as terminal. Terminal states keep value zero and
// take no part in Bellman updates.
func (t *Tabular) SetTerminal(s State) error {
	si, ok := t.sIndex[s]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownState, s)
	}
	t.terminal[si] = true

	return nil
}

// RestrictActions limits the legal action set of s to the given actions,
// which must all be enumerated. Without a restriction every state offers
// the full action enumeration.
func (t *Tabular) RestrictActions(s State, actions ...Action) error {
	si, ok := t.sIndex[s]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownState, s)
	}
	for _, a := range actions {
		if _, ok = t.aIndex[a]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownAction, a)
		}
	}
	t.legal[si] = append(make([]Action, 0, len(actions)), actions...)

	return nil
}

// Discount returns the discount factor supplied at construction.
func (t *Tabular) Discount() float64 { return t.gamma }

// States returns the ordered state enumeration. The slice is shared;
// callers must treat it as read-only.
func (t *Tabular) States() []State { return t.states }

// Actions returns the ordered action enumeration. The slice is shared;
// callers must treat it as read-only.
func (t *Tabular) Actions() []Action { return t.actions }

// StateIndex maps a state name to its enumeration index.
func (t *Tabular) StateIndex(s State) (int, bool) {
	i, ok := t.sIndex[s]

	return i, ok
}

// ActionIndex maps an action name to its enumeration index.
func (t *Tabular) ActionIndex(a Action) (int, bool) {
	i, ok := t.aIndex[a]

	return i, ok
}

// LegalActions returns the actions available at s: the restriction set
// when one was installed, the full enumeration otherwise. Unknown states
// yield nil.
func (t *Tabular) LegalActions(s State) []Action {
	si, ok := t.sIndex[s]
	if !ok {
		return nil
	}
	if t.legal[si] != nil {
		return t.legal[si]
	}

	return t.actions
}

// IsTerminal reports whether s was marked terminal. Unknown states are
// not terminal.
func (t *Tabular) IsTerminal(s State) bool {
	si, ok := t.sIndex[s]

	return ok && t.terminal[si]
}

// Reward returns r(s, a, next), or 0 when any name is unknown.
func (t *Tabular) Reward(s State, a Action, next State) float64 {
	si, ok := t.sIndex[s]
	if !ok {
		return 0
	}
	ai, ok := t.aIndex[a]
	if !ok {
		return 0
	}
	ni, ok := t.sIndex[next]
	if !ok {
		return 0
	}

	return t.rewards[si][ai][ni]
}

// Transition returns the full successor distribution of (s, a): one
// Outcome per enumerated state, in enumeration order, zeros included.
// Unknown names yield nil.
func (t *Tabular) Transition(s State, a Action) []Outcome {
	si, ok := t.sIndex[s]
	if !ok {
		return nil
	}
	ai, ok := t.aIndex[a]
	if !ok {
		return nil
	}

	row := t.probs[si][ai]
	dist := make([]Outcome, len(t.states))
	for i, next := range t.states {
		dist[i] = Outcome{Next: next, Prob: row[i]}
	}

	return dist
}

// Support returns only the nonzero-probability outcomes of (s, a), in
// insertion order. Unknown names yield nil.
func (t *Tabular) Support(s State, a Action) []Outcome {
	si, ok := t.sIndex[s]
	if !ok {
		return nil
	}
	ai, ok := t.aIndex[a]
	if !ok {
		return nil
	}

	return t.support[si][ai]
}
