package gridworld_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bellman/gridworld"
	"github.com/katalvlaran/bellman/mdp"
	"github.com/katalvlaran/bellman/valueiter"
)

// TestNew_Validation exercises every construction error in order.
func TestNew_Validation(t *testing.T) {
	opts := gridworld.DefaultGridOptions()

	_, err := gridworld.New(nil, opts)
	assert.ErrorIs(t, err, gridworld.ErrEmptyGrid, "nil grid must error")

	_, err = gridworld.New([][]int{{}}, opts)
	assert.ErrorIs(t, err, gridworld.ErrEmptyGrid, "zero-column grid must error")

	_, err = gridworld.New([][]int{{0, 0}, {0}}, opts)
	assert.ErrorIs(t, err, gridworld.ErrNonRectangular, "jagged rows must error")

	_, err = gridworld.New([][]int{{0, 7}}, opts)
	assert.ErrorIs(t, err, gridworld.ErrBadCell, "unknown cell code must error")

	bad := opts
	bad.Slip = 1
	_, err = gridworld.New([][]int{{0, 2}}, bad)
	assert.ErrorIs(t, err, gridworld.ErrBadSlip, "Slip=1 must error")

	bad = opts
	bad.Discount = 0
	_, err = gridworld.New([][]int{{0, 2}}, bad)
	assert.ErrorIs(t, err, gridworld.ErrBadDiscount, "Discount=0 must error")

	_, err = gridworld.New([][]int{{1, 1}}, opts)
	assert.ErrorIs(t, err, gridworld.ErrAllWalls, "wall-only grid must error")
}

// TestGrid_ModelContract checks the capability set a solver relies on:
// stable indices, full action sets, terminal flags, distribution shape.
func TestGrid_ModelContract(t *testing.T) {
	g, err := gridworld.New([][]int{
		{0, 0},
		{1, 2},
	}, gridworld.DefaultGridOptions())
	require.NoError(t, err)

	// 3 walkable cells, row-major: (0,0), (0,1), (1,1).
	states := g.States()
	require.Len(t, states, 3, "walls contribute no state")
	assert.Equal(t, mdp.State("0:0"), states[0])
	assert.Equal(t, mdp.State("1:1"), states[2])

	for i, s := range states {
		si, ok := g.StateIndex(s)
		require.True(t, ok, "every enumerated state must index")
		assert.Equal(t, i, si, "indices must follow enumeration order")
	}
	_, ok := g.StateIndex("1:0")
	assert.False(t, ok, "wall cells must not index")

	assert.Equal(t, gridworld.Moves, g.Actions(), "actions are the four movements")
	assert.Len(t, g.LegalActions(states[0]), 4, "all movements stay legal; blocked ones stall")

	assert.False(t, g.IsTerminal("0:0"), "free cell is non-terminal")
	assert.True(t, g.IsTerminal("1:1"), "goal cell is terminal")

	dist := g.Transition("0:0", gridworld.East)
	require.Len(t, dist, len(states), "dense distribution spans all states")
	var total float64
	for _, o := range dist {
		total += o.Prob
	}
	assert.InDelta(t, 1.0, total, 1e-12, "probability mass must sum to one")
}

// TestGrid_SupportIsNonzeroOnly verifies the sparse view carries exactly
// the nonzero entries of the dense distribution.
func TestGrid_SupportIsNonzeroOnly(t *testing.T) {
	opts := gridworld.DefaultGridOptions()
	opts.Slip = 0.2
	g, err := gridworld.New([][]int{
		{0, 0, 0},
		{0, 0, 2},
	}, opts)
	require.NoError(t, err)

	for _, s := range g.States() {
		if g.IsTerminal(s) {
			continue
		}
		for _, a := range g.Actions() {
			dense := g.Transition(s, a)
			sparse := g.Support(s, a)

			nonzero := make(map[mdp.State]float64)
			for _, o := range dense {
				if o.Prob != 0 {
					nonzero[o.Next] = o.Prob
				}
			}
			require.Len(t, sparse, len(nonzero), "support size must match dense nonzeros at (%s,%s)", s, a)
			for _, o := range sparse {
				assert.Positive(t, o.Prob, "support must never carry zeros")
				assert.InDelta(t, nonzero[o.Next], o.Prob, 1e-15, "support probability must match dense entry")
			}
		}
	}
}

// TestGrid_CorridorClosedForm solves a 1×3 corridor and compares against
// hand-computed values: the cell beside the goal is worth the goal
// reward, the far cell one discounted step less.
func TestGrid_CorridorClosedForm(t *testing.T) {
	opts := gridworld.GridOptions{Discount: 0.9, StepReward: -1, GoalReward: 10, Slip: 0}
	g, err := gridworld.New([][]int{{0, 0, 2}}, opts)
	require.NoError(t, err)

	pv, err := valueiter.Solve(g,
		valueiter.WithMaxIterations(200),
		valueiter.WithTolerance(1e-9),
	)
	require.NoError(t, err)

	vMid, err := pv.ValueOf("0:1")
	require.NoError(t, err)
	assert.InDelta(t, 10.0, vMid, 1e-9, "one step to the goal: v = +10")

	vFar, err := pv.ValueOf("0:0")
	require.NoError(t, err)
	assert.InDelta(t, -1+0.9*10, vFar, 1e-9, "two steps: v = -1 + γ·10")

	vGoal, err := pv.ValueOf("0:2")
	require.NoError(t, err)
	assert.Equal(t, 0.0, vGoal, "goal value is exactly zero")

	for _, s := range []mdp.State{"0:0", "0:1"} {
		a, aErr := pv.Action(s)
		require.NoError(t, aErr)
		assert.Equal(t, gridworld.East, a, "the corridor policy heads east at %s", s)
	}
}

// TestGrid_DenseSparseEquivalence solves a slippery 4×4 grid with a wall
// through both solver variants and demands matching results.
func TestGrid_DenseSparseEquivalence(t *testing.T) {
	opts := gridworld.DefaultGridOptions()
	opts.Slip = 0.2
	g, err := gridworld.New([][]int{
		{0, 0, 0, 0},
		{0, 1, 1, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 2},
	}, opts)
	require.NoError(t, err)

	cfg := []valueiter.Option{
		valueiter.WithMaxIterations(500),
		valueiter.WithTolerance(1e-9),
	}

	dense, err := valueiter.Solve(g, cfg...)
	require.NoError(t, err)

	sparse, err := valueiter.SolveSparse(g, cfg...)
	require.NoError(t, err)

	assert.Equal(t, dense.Policy, sparse.Policy, "policies must match exactly")
	approx := cmpopts.EquateApprox(0, 1e-3)
	assert.Empty(t, cmp.Diff(dense.Value, sparse.Value, approx), "values must agree within 1e-3")
	assert.Empty(t, cmp.Diff(dense.Q, sparse.Q, approx), "Q-matrices must agree within 1e-3")
}

// TestGrid_RenderPolicy draws the corridor policy: two east arrows and
// the goal marker.
func TestGrid_RenderPolicy(t *testing.T) {
	opts := gridworld.GridOptions{Discount: 0.9, StepReward: -1, GoalReward: 10, Slip: 0}
	g, err := gridworld.New([][]int{{0, 0, 2}}, opts)
	require.NoError(t, err)

	pv, err := valueiter.Solve(g, valueiter.WithTolerance(1e-9), valueiter.WithMaxIterations(200))
	require.NoError(t, err)

	out, err := g.RenderPolicy(pv)
	require.NoError(t, err)
	assert.Equal(t, "→ → *\n", out, "corridor renders as two east arrows and the goal")
}
