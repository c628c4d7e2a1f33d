// Package valueiter computes optimal policies for finite MDPs via the
// Value Iteration dynamic-programming algorithm, with dense and sparse
// transition-enumeration variants.
//
// 🚀 What is Value Iteration?
//
//	Repeatedly apply the Bellman optimality update to every state:
//	  V(s) ← max_a Σ_s' p(s'|s,a) · ( r(s,a,s') + γ·V(s') )
//	until the largest per-state change (the residual) drops below a
//	tolerance. The greedy action at each state is the optimal policy.
//
// ✨ Key features:
//   - dense mode: Solve enumerates full successor distributions
//   - sparse mode: SolveSparse walks only nonzero-probability outcomes
//     — same results, less work on sparse transition structures
//   - optional Q-matrix: per (state, action) value estimates
//   - warm starts: resume from a prior container or value vector
//   - OnSweep hook: residual/timing per sweep for observability
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/bellman/valueiter"
//
//	pv, err := valueiter.Solve(model,
//	    valueiter.WithMaxIterations(500),
//	    valueiter.WithTolerance(1e-8),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	best, _ := pv.Action("s0")   // greedy action at state s0
//	v, _ := pv.ValueOf("s0")     // converged value of s0
//
// Guarantees:
//
//   - Terminal states keep value 0 and the first enumerated action.
//   - Ties between actions resolve to the first one in enumeration order
//     (strict > against a running maximum), so policies are reproducible.
//   - Hitting the iteration cap before convergence is a normal return,
//     not an error; inspect PolicyValue.Residual to see what was achieved.
//   - Sweeps update values in place: later states within a sweep observe
//     earlier states' fresh values, which accelerates convergence.
//
// Complexity (per sweep):
//
//   - Solve:       O(S² · A)   — full distribution per (state, action)
//   - SolveSparse: O(E · A)    — E = total nonzero outcomes
//
// See examples in example_test.go and the runnable demos under examples/.
package valueiter
