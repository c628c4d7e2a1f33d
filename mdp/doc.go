// Package mdp defines the model capability set consumed by the solvers
// and a ready-made tabular (flat-array) model implementation.
//
// What:
//
//   - Model is the read-only capability set every solver needs: ordered
//     state/action enumerations with stable integer indices, a discount
//     factor in (0,1], per-state legal actions, terminal flags, and a
//     reward function over (state, action, successor) triples.
//   - DenseModel adds Transition, enumerating the full successor
//     distribution (zero-probability entries included).
//   - SparseModel adds Support, enumerating only nonzero-probability
//     successors — a compact view for sparse transition structures.
//   - Tabular is a concrete model backed by flat arrays that satisfies
//     both DenseModel and SparseModel, built incrementally with
//     AddTransition / SetTerminal / RestrictActions.
//
// Why:
//
//   - Solvers stay decoupled from model storage: anything exposing the
//     capability set can be solved.
//   - One Tabular model serving both transition views lets callers (and
//     tests) verify that dense and sparse solving agree.
//
// Contract:
//
//   - Enumeration order of States() and Actions() is significant: it
//     defines array layout in the solvers and must be stable across calls.
//   - Probabilities must be non-negative; whether each (state, action)
//     distribution sums to one is the caller's responsibility — the
//     package rejects negatives but performs no normalization.
//
// Errors:
//
//   - ErrUnknownState / ErrUnknownAction: a name outside the enumerations.
//   - ErrBadDiscount: discount factor outside (0,1].
//   - ErrNegativeProbability: AddTransition called with p < 0.
//   - ErrDuplicateName: repeated state or action name at construction.
package mdp
