package board

import (
	"fmt"

	"github.com/pipetwist/infiniteloop/cell"
)

// ParseOption configures Parse via functional arguments.
type ParseOption func(*ParseOptions)

// ParseOptions holds tunable parser behaviour.
type ParseOptions struct {
	// Strict rejects unrecognized runes instead of skipping them.
	Strict bool
}

// DefaultParseOptions returns the permissive defaults: unrecognized runes
// are skipped without moving the cursor.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{Strict: false}
}

// WithStrict makes Parse return ErrUnknownRune on any rune that is neither
// a piece letter, a space, nor a newline.
func WithStrict() ParseOption {
	return func(o *ParseOptions) { o.Strict = true }
}

// shapeFor maps a piece rune to its canonical shape code. Letters are
// accepted in either case.
func shapeFor(r rune) (cell.Code, bool) {
	switch r {
	case '1':
		return cell.DeadEnd, true
	case 'C', 'c':
		return cell.Corner, true
	case 'S', 's':
		return cell.Straight, true
	case '3':
		return cell.Tee, true
	case '4':
		return cell.Cross, true
	}
	return cell.Empty, false
}

// Parse reads the textual puzzle notation into a Problem. The cursor
// starts at interior coordinate (1,1); a space advances the column, a
// newline resets the column and advances the row, and a piece letter
// places its shape and advances the column. Empty and whitespace-only
// input yield an empty board.
//
// Returns ErrOutOfBounds if a piece would land outside the interior, and
// in strict mode ErrUnknownRune for any other unrecognized rune.
// Complexity: O(len(in)).
func Parse(in string, opts ...ParseOption) (*Problem, error) {
	o := DefaultParseOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var p Problem
	x, y := 1, 1
	for i, r := range in {
		switch r {
		case ' ':
			x++
		case '\n':
			x = 1
			y++
		default:
			c, ok := shapeFor(r)
			if !ok {
				if o.Strict {
					return nil, fmt.Errorf("%w: %q at offset %d", ErrUnknownRune, r, i)
				}
				continue
			}
			if x >= Axis-1 || y >= Axis-1 {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrOutOfBounds, r, x, y)
			}
			p.Cells[x][y] = c
			x++
		}
	}
	return &p, nil
}
