// Package gridworld implements a rectangular slippery-grid MDP.
//
// The grid is immutable once built. Every non-wall cell becomes one
// state, enumerated row-major (top-left first); the four movement
// actions share the fixed order of Moves. Both the dense and the sparse
// transition views are derived from the same movement rules, so the two
// solver variants see exactly the same process.
package gridworld

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/bellman/mdp"
	"github.com/katalvlaran/bellman/valueiter"
)

// Grid is a rectangular gridworld MDP. It satisfies mdp.DenseModel and
// mdp.SparseModel.
type Grid struct {
	width, height int
	cells         [][]int // cells[y][x] ∈ {Free, Wall, Goal}
	opts          GridOptions
	states        []mdp.State       // row-major enumeration of non-wall cells
	sIndex        map[mdp.State]int // state name → index
	coords        [][2]int          // state index → (y, x)
}

// New builds a Grid from a rectangular cell map.
//
// Preconditions and validation (in order):
//  1. cells must have at least one row and one column (ErrEmptyGrid).
//  2. All rows must share one length (ErrNonRectangular).
//  3. Every cell must be Free, Wall or Goal (ErrBadCell).
//  4. opts.Slip must lie in [0,1) (ErrBadSlip).
//  5. opts.Discount must lie in (0,1] (ErrBadDiscount).
//  6. At least one cell must be walkable (ErrAllWalls).
func New(cells [][]int, opts GridOptions) (*Grid, error) {
	// 1) Validate the grid shape.
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len(cells[0])
	for y, row := range cells {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), width)
		}
		for x, c := range row {
			if c != Free && c != Wall && c != Goal {
				return nil, fmt.Errorf("%w: cell (%d,%d) = %d", ErrBadCell, y, x, c)
			}
		}
	}

	// 2) Validate options.
	if opts.Slip < 0 || opts.Slip >= 1 {
		return nil, fmt.Errorf("%w: got %g", ErrBadSlip, opts.Slip)
	}
	if opts.Discount <= 0 || opts.Discount > 1 {
		return nil, fmt.Errorf("%w: got %g", ErrBadDiscount, opts.Discount)
	}

	// 3) Enumerate states: every non-wall cell, row-major. The order is
	//    fixed here and defines all state indices.
	g := &Grid{
		width:  width,
		height: len(cells),
		cells:  cells,
		opts:   opts,
		sIndex: make(map[mdp.State]int),
	}
	for y, row := range cells {
		for x, c := range row {
			if c == Wall {
				continue
			}
			s := stateName(y, x)
			g.sIndex[s] = len(g.states)
			g.states = append(g.states, s)
			g.coords = append(g.coords, [2]int{y, x})
		}
	}
	if len(g.states) == 0 {
		return nil, ErrAllWalls
	}

	return g, nil
}

// stateName renders the canonical state name of cell (y, x).
func stateName(y, x int) mdp.State {
	return mdp.State(fmt.Sprintf("%d:%d", y, x))
}

// delta returns the (dy, dx) displacement of a movement action.
func delta(a mdp.Action) (int, int) {
	switch a {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	default: // West
		return 0, -1
	}
}

// lateral returns the two sideways actions of a movement action, the
// directions a slip can divert to.
func lateral(a mdp.Action) (mdp.Action, mdp.Action) {
	if a == North || a == South {
		return West, East
	}

	return North, South
}

// dest resolves where a move from (y, x) in direction a actually lands:
// the neighboring cell, or (y, x) itself when the target is off-grid or
// a wall.
func (g *Grid) dest(y, x int, a mdp.Action) (int, int) {
	dy, dx := delta(a)
	ny, nx := y+dy, x+dx
	if ny < 0 || ny >= g.height || nx < 0 || nx >= g.width || g.cells[ny][nx] == Wall {
		return y, x
	}

	return ny, nx
}

// outcomes accumulates the movement distribution of (state si, action a)
// as (successor index, probability) pairs in increasing index order.
// Slips that resolve to the same cell (e.g. blocked laterals) collapse
// into a single outcome.
func (g *Grid) outcomes(si int, a mdp.Action) []mdp.Outcome {
	y, x := g.coords[si][0], g.coords[si][1]
	mass := make(map[int]float64, 3)

	// Intended direction.
	ny, nx := g.dest(y, x, a)
	mass[g.sIndex[stateName(ny, nx)]] += 1 - g.opts.Slip

	// Lateral slips.
	if g.opts.Slip > 0 {
		l, r := lateral(a)
		ny, nx = g.dest(y, x, l)
		mass[g.sIndex[stateName(ny, nx)]] += g.opts.Slip / 2
		ny, nx = g.dest(y, x, r)
		mass[g.sIndex[stateName(ny, nx)]] += g.opts.Slip / 2
	}

	idx := make([]int, 0, len(mass))
	for i := range mass {
		idx = append(idx, i)
	}
	sort.Ints(idx)

	out := make([]mdp.Outcome, len(idx))
	for k, i := range idx {
		out[k] = mdp.Outcome{Next: g.states[i], Prob: mass[i]}
	}

	return out
}

// Discount returns the configured discount factor.
func (g *Grid) Discount() float64 { return g.opts.Discount }

// States returns the row-major state enumeration. The slice is shared;
// callers must treat it as read-only.
func (g *Grid) States() []mdp.State { return g.states }

// Actions returns the fixed movement enumeration (N, E, S, W).
func (g *Grid) Actions() []mdp.Action { return Moves }

// StateIndex maps a state name to its enumeration index.
func (g *Grid) StateIndex(s mdp.State) (int, bool) {
	i, ok := g.sIndex[s]

	return i, ok
}

// ActionIndex maps a movement action to its index in Moves.
func (g *Grid) ActionIndex(a mdp.Action) (int, bool) {
	for i, m := range Moves {
		if m == a {
			return i, true
		}
	}

	return 0, false
}

// LegalActions returns all four movements for every state: blocked moves
// are legal, they simply leave the agent in place.
func (g *Grid) LegalActions(mdp.State) []mdp.Action { return Moves }

// IsTerminal reports whether s is a goal cell.
func (g *Grid) IsTerminal(s mdp.State) bool {
	si, ok := g.sIndex[s]
	if !ok {
		return false
	}
	y, x := g.coords[si][0], g.coords[si][1]

	return g.cells[y][x] == Goal
}

// Reward grants GoalReward for landing on a goal cell and StepReward
// otherwise.
func (g *Grid) Reward(_ mdp.State, _ mdp.Action, next mdp.State) float64 {
	if g.IsTerminal(next) {
		return g.opts.GoalReward
	}

	return g.opts.StepReward
}

// Transition returns the full successor distribution of (s, a): one
// outcome per state in enumeration order, zeros included. Unknown names
// yield nil.
func (g *Grid) Transition(s mdp.State, a mdp.Action) []mdp.Outcome {
	si, ok := g.sIndex[s]
	if !ok {
		return nil
	}
	if _, ok = g.ActionIndex(a); !ok {
		return nil
	}

	dist := make([]mdp.Outcome, len(g.states))
	for i, next := range g.states {
		dist[i] = mdp.Outcome{Next: next}
	}
	for _, o := range g.outcomes(si, a) {
		i := g.sIndex[o.Next]
		dist[i].Prob = o.Prob
	}

	return dist
}

// Support returns only the nonzero-probability outcomes of (s, a), in
// state enumeration order. Unknown names yield nil.
func (g *Grid) Support(s mdp.State, a mdp.Action) []mdp.Outcome {
	si, ok := g.sIndex[s]
	if !ok {
		return nil
	}
	if _, ok = g.ActionIndex(a); !ok {
		return nil
	}

	return g.outcomes(si, a)
}

// RenderPolicy draws the converged policy of pv over the grid as one
// arrow per walkable cell: '#' walls, '*' goals, and ↑ → ↓ ← for the
// greedy movement. The container must come from solving this grid.
func (g *Grid) RenderPolicy(pv *valueiter.PolicyValue) (string, error) {
	arrows := map[mdp.Action]string{North: "↑", East: "→", South: "↓", West: "←"}

	var b strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			switch g.cells[y][x] {
			case Wall:
				b.WriteString("#")
			case Goal:
				b.WriteString("*")
			default:
				a, err := pv.Action(stateName(y, x))
				if err != nil {
					return "", fmt.Errorf("gridworld: render at (%d,%d): %w", y, x, err)
				}
				b.WriteString(arrows[a])
			}
		}
		b.WriteByte('\n')
	}

	return b.String(), nil
}
