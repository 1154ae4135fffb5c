package solve

import (
	"math/bits"
	"math/rand"
	"time"

	"github.com/pipetwist/infiniteloop/board"
	"github.com/pipetwist/infiniteloop/cell"
)

// grid carries the remaining rotation mask for every cell. It mirrors the
// board layout, border included, and is copied wholesale at each branch.
type grid [board.Axis][board.Axis]cell.Mask

// search encapsulates the immutable inputs of one Solve call plus the
// solution buffer reused across reports.
type search struct {
	problem  *board.Problem
	consumer Consumer
	opts     Options
	sol      board.Solution
}

// Solve enumerates every valid rotation assignment of p and delivers each
// resulting edge set to c, stopping early when c returns Stop. It returns
// nil once the space is exhausted or the consumer stops, ErrNilProblem or
// ErrNilConsumer for missing input, ErrOptionViolation for a bad option,
// and the context's error when cancellation wins first.
func Solve(p *board.Problem, c Consumer, opts ...Option) error {
	if p == nil {
		return ErrNilProblem
	}
	if c == nil {
		return ErrNilConsumer
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return o.err
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// Seed every cell with the rotations its symmetry class leaves
	// distinct. Border cells are empty and hold the single-option mask.
	var g grid
	for x := 0; x < board.Axis; x++ {
		for y := 0; y < board.Axis; y++ {
			g[x][y] = cell.Orientations(p.Cells[x][y])
		}
	}

	s := &search{problem: p, consumer: c, opts: o}
	_, err := s.run(&g)
	return err
}

// run is one node of the recursion: propagate to a fixed point, then
// either report a finished board or branch. The boolean is the
// keep-searching signal; a contradiction is not a stop — the pruned
// subtree simply yields nothing.
func (s *search) run(g *grid) (bool, error) {
	select {
	case <-s.opts.Ctx.Done():
		return false, s.opts.Ctx.Err()
	default:
	}

	if !s.propagate(g) {
		return true, nil
	}
	if finished(g) {
		return s.report(g), nil
	}
	return s.guess(g)
}

// propagate shrinks rotation masks until no sweep changes anything,
// reporting false as soon as some cell runs out of rotations. Masks only
// ever lose bits, so the fixed point does not depend on sweep order.
func (s *search) propagate(g *grid) bool {
	b := &s.problem.Cells
	for changed := true; changed; {
		changed = false
		for x := 1; x <= board.Axis-2; x++ {
			for y := 1; y <= board.Axis-2; y++ {
				// Stubs the neighbours might push at this cell, and sides
				// they might leave open, both flipped into this cell's
				// frame. The border sentinel keeps the reads in range.
				maySet := cell.Flip(
					cell.Fanout(b[x][y+1], g[x][y+1])&cell.North |
						cell.Fanout(b[x-1][y], g[x-1][y])&cell.East |
						cell.Fanout(b[x][y-1], g[x][y-1])&cell.South |
						cell.Fanout(b[x+1][y], g[x+1][y])&cell.West)
				mayClear := cell.Flip(
					cell.Fanout(b[x][y+1]^0xf, g[x][y+1])&cell.North |
						cell.Fanout(b[x-1][y]^0xf, g[x-1][y])&cell.East |
						cell.Fanout(b[x][y-1]^0xf, g[x][y-1])&cell.South |
						cell.Fanout(b[x+1][y]^0xf, g[x+1][y])&cell.West)

				// A rotation survives iff its stubs can all be received
				// and its gaps can all be matched.
				var next cell.Mask
				for i := cell.Mask(0x1); i <= 0x8; i <<= 1 {
					if g[x][y]&i == 0 {
						continue
					}
					c := cell.Rotate(b[x][y], i)
					if c&^maySet == 0 && c|mayClear == 0xf {
						next |= i
					}
				}

				if next != g[x][y] {
					if next == 0 {
						return false
					}
					changed = true
					g[x][y] = next
				}
			}
		}
	}
	return true
}

// finished reports whether every interior cell is down to one rotation.
func finished(g *grid) bool {
	for x := 1; x <= board.Axis-2; x++ {
		for y := 1; y <= board.Axis-2; y++ {
			if !g[x][y].Resolved() {
				return false
			}
		}
	}
	return true
}

// report extracts the edge set of a fully determined grid into the shared
// solution buffer and hands it to the consumer. An edge is set when the
// cell on its north/west side extrudes the matching stub; propagation
// already guarantees the far side agrees.
func (s *search) report(g *grid) bool {
	b := &s.problem.Cells
	sol := &s.sol
	for x := 0; x < board.Axis-3; x++ {
		for y := 0; y < board.Axis-2; y++ {
			sol.Horizontal[x][y] = cell.Rotate(b[x+1][y+1], g[x+1][y+1])&cell.East != 0
		}
	}
	for x := 0; x < board.Axis-2; x++ {
		for y := 0; y < board.Axis-3; y++ {
			sol.Vertical[x][y] = cell.Rotate(b[x+1][y+1], g[x+1][y+1])&cell.South != 0
		}
	}
	return s.consumer.Deliver(sol) == Continue
}

// guess branches on one unresolved cell: for each remaining rotation, in
// increasing bit order, recurse on an independent copy of the grid with
// that cell pinned.
func (s *search) guess(g *grid) (bool, error) {
	x, y := s.pick(g)
	for i := cell.Mask(0x1); i <= 0x8; i <<= 1 {
		if g[x][y]&i == 0 {
			continue
		}
		next := *g
		next[x][y] = i
		cont, err := s.run(&next)
		if err != nil || !cont {
			return cont, err
		}
	}
	return true, nil
}

// pick chooses the branch cell according to the configured policy. guess
// is only entered when some interior cell is unresolved.
func (s *search) pick(g *grid) (int, int) {
	switch s.opts.Selector {
	case SelectFirst:
		for x := 1; x <= board.Axis-2; x++ {
			for y := 1; y <= board.Axis-2; y++ {
				if !g[x][y].Resolved() {
					return x, y
				}
			}
		}
	case SelectFewestOptions:
		bx, by, best := 0, 0, 5
		for x := 1; x <= board.Axis-2; x++ {
			for y := 1; y <= board.Axis-2; y++ {
				if n := bits.OnesCount8(uint8(g[x][y])); n > 1 && n < best {
					bx, by, best = x, y, n
				}
			}
		}
		if best < 5 {
			return bx, by
		}
	default: // SelectRandom
		for {
			u := s.opts.Rand.Intn(board.Axis * board.Axis)
			x, y := u/board.Axis, u%board.Axis
			if !g[x][y].Resolved() {
				return x, y
			}
		}
	}
	return 0, 0 // unreachable: callers guarantee an unresolved cell
}
