// Package board defines the puzzle and solution types plus sentinel errors
// for parsing.
package board

import (
	"errors"

	"github.com/pipetwist/infiniteloop/cell"
)

// Axis is the fixed board width and height, border included. Interior
// cells live at 1..Axis-2 on each axis, so the largest puzzle is
// (Axis-2)×(Axis-2).
const Axis = 16

// Sentinel errors for board operations.
var (
	// ErrOutOfBounds indicates a piece would be placed outside the interior.
	ErrOutOfBounds = errors.New("board: piece outside the puzzle interior")
	// ErrUnknownRune indicates an unrecognized input rune in strict mode.
	ErrUnknownRune = errors.New("board: unrecognized rune in puzzle input")
)

// Problem is a parsed puzzle: the expected shape for every cell. The outer
// border is always empty; it exists so that neighbour reads during
// propagation never need bounds checks. A Problem is immutable during
// search.
type Problem struct {
	Cells [Axis][Axis]cell.Code
}

// Solution records which interior edges carry a pipe. Horizontal[x][y] is
// the edge between interior cells (x+1,y+1) and (x+2,y+1); Vertical[x][y]
// the edge between (x+1,y+1) and (x+1,y+2). An edge is set exactly when
// both cells it separates extrude a stub onto it.
type Solution struct {
	Horizontal [Axis - 3][Axis - 2]bool
	Vertical   [Axis - 2][Axis - 3]bool
}

// ShapeAt returns the stub mask implied by the four edges incident to the
// interior cell at board coordinates (x, y), 1-based. The mask doubles as
// the shape code of the placed piece.
// Complexity: O(1).
func (s *Solution) ShapeAt(x, y int) cell.Code {
	var c cell.Code
	if y >= 2 && s.Vertical[x-1][y-2] {
		c |= cell.North
	}
	if x <= Axis-3 && s.Horizontal[x-1][y-1] {
		c |= cell.East
	}
	if y <= Axis-3 && s.Vertical[x-1][y-1] {
		c |= cell.South
	}
	if x >= 2 && s.Horizontal[x-2][y-1] {
		c |= cell.West
	}
	return c
}

// Unsolve synthesizes the Problem this Solution answers: every interior
// cell receives the shape implied by its incident edges. Solving the
// returned Problem yields s among its solutions.
// Complexity: O(Axis²).
func (s *Solution) Unsolve() *Problem {
	var p Problem
	for x := 1; x <= Axis-2; x++ {
		for y := 1; y <= Axis-2; y++ {
			p.Cells[x][y] = s.ShapeAt(x, y)
		}
	}
	return &p
}
