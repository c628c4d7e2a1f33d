// Package gridworld defines core types, options, and sentinel errors
// for the gridworld subpackage of github.com/katalvlaran/bellman.
package gridworld

import (
	"errors"

	"github.com/katalvlaran/bellman/mdp"
)

// Sentinel errors for gridworld construction.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridworld: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridworld: all rows must have the same length")
	// ErrBadCell indicates a cell value outside {Free, Wall, Goal}.
	ErrBadCell = errors.New("gridworld: cell value must be Free, Wall or Goal")
	// ErrAllWalls indicates a grid with no walkable cell.
	ErrAllWalls = errors.New("gridworld: grid contains no walkable cell")
	// ErrBadSlip indicates a slip probability outside [0,1).
	ErrBadSlip = errors.New("gridworld: Slip must lie in [0,1)")
	// ErrBadDiscount indicates a discount factor outside (0,1].
	ErrBadDiscount = errors.New("gridworld: Discount must lie in (0,1]")
)

// Cell codes accepted in the input grid.
const (
	// Free is a walkable cell.
	Free = 0
	// Wall is an impassable cell; it contributes no state.
	Wall = 1
	// Goal is a walkable terminal cell.
	Goal = 2
)

// Movement actions, in the fixed enumeration order used for all action
// indices. Order is significant: ties between equally good moves resolve
// to the earliest action here.
const (
	North mdp.Action = "N"
	East  mdp.Action = "E"
	South mdp.Action = "S"
	West  mdp.Action = "W"
)

// Moves is the ordered action enumeration of every Grid.
var Moves = []mdp.Action{North, East, South, West}

// GridOptions contains tunable parameters for the grid MDP.
type GridOptions struct {
	// Discount is the MDP discount factor γ ∈ (0,1].
	Discount float64
	// StepReward is granted for every move that does not land on a goal.
	StepReward float64
	// GoalReward is granted for stepping onto a goal cell.
	GoalReward float64
	// Slip is the probability mass diverted to lateral moves: the
	// intended direction succeeds with 1-Slip, each of the two lateral
	// directions happens with Slip/2. Must lie in [0,1).
	Slip float64
}

// DefaultGridOptions returns a GridOptions with default settings:
// Discount=0.95, StepReward=-1, GoalReward=+10, Slip=0 (deterministic).
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Discount:   0.95,
		StepReward: -1,
		GoalReward: 10,
		Slip:       0,
	}
}
