// Package gridworld turns a rectangular 2D grid into a finite MDP,
// ready to be solved with the valueiter package.
//
// What:
//
//   - Grid wraps a rectangular [][]int map of Free, Wall and Goal cells.
//   - Four movement actions (N/E/S/W); moving into a wall or off the
//     grid leaves the agent in place.
//   - Optional slip: the intended move succeeds with probability 1-slip,
//     the two lateral moves happen with slip/2 each.
//   - Implements both mdp.DenseModel and mdp.SparseModel, so the same
//     grid drives either solver variant (and their equivalence tests).
//
// Why:
//
//   - Navigation planning: shortest safe routes under movement noise.
//   - Solver validation: corridor worlds have closed-form values.
//   - Teaching: RenderPolicy draws the converged policy as arrow cells.
//
// Complexity:
//
//   - States: O(W×H); each non-wall cell is one state, row-major order.
//   - Transition (dense): O(W×H) per query. Support (sparse): O(1).
//
// Options:
//
//   - GridOptions.Discount:   discount factor γ ∈ (0,1].
//   - GridOptions.StepReward: reward per non-goal move (usually negative).
//   - GridOptions.GoalReward: reward for stepping onto a goal cell.
//   - GridOptions.Slip:       lateral slip probability in [0,1).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: a cell value outside {Free, Wall, Goal}.
//   - ErrAllWalls: the grid contains no walkable cell.
//   - ErrBadSlip / ErrBadDiscount: option value out of range.
package gridworld
