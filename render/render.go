// Package render draws solutions with box-drawing glyphs.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pipetwist/infiniteloop/board"
)

// Sentinel errors for rendering.
var (
	// ErrOverflow indicates the output exceeded the configured byte limit.
	ErrOverflow = errors.New("render: output exceeds size limit")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("render: invalid option supplied")
)

// glyphs is indexed by the cell's edge mask: bit 0 north, 1 east,
// 2 south, 3 west.
var glyphs = [16]string{
	"", "╵", "╶", "╰", "╷", "│", "╭", "├",
	"╴", "╯", "─", "┴", "╮", "┤", "┬", "┼",
}

// Option configures Render via functional arguments.
type Option func(*Options)

// Options holds tunable renderer behaviour.
type Options struct {
	// MaxSize caps the rendered output in bytes; 0 disables the cap.
	MaxSize int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an uncapped renderer.
func DefaultOptions() Options {
	return Options{MaxSize: 0}
}

// WithMaxSize limits the output to n bytes.
//
//	n > 0: rendering fails with ErrOverflow past n bytes
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSize(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSize cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSize = n
	}
}

// writer accumulates output while tracking the print cursor and the byte
// budget. The error is sticky; puts after a failure are dropped.
type writer struct {
	b          strings.Builder
	posX, posY int
	max        int
	err        error
}

// put appends s, charging width print columns against the cursor.
func (w *writer) put(s string, width int) {
	if w.err != nil {
		return
	}
	if w.max > 0 && w.b.Len()+len(s) > w.max {
		w.err = ErrOverflow
		return
	}
	w.b.WriteString(s)
	w.posX += width
}

// pad emits newlines and spaces until the cursor reaches (x, y). It is
// called only right before a visible glyph, which is what keeps trailing
// blanks and empty tail rows out of the output.
func (w *writer) pad(x, y int) {
	for w.posY < y {
		w.put("\n", 0)
		w.posX = 0
		w.posY++
	}
	for w.posX < x {
		w.put(" ", 1)
	}
}

// Render formats s as box-drawing text. Every cell with at least one
// incident edge prints its glyph at column 3x, row 2y; a set horizontal
// edge appends ──, and a set vertical edge prints │ on row 2y+1. The
// empty solution renders as the empty string.
//
// Returns ErrOverflow when a WithMaxSize budget is exceeded.
// Complexity: O(Axis²).
func Render(s *board.Solution, opts ...Option) (string, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return "", o.err
	}

	w := &writer{max: o.MaxSize}
	for y := 0; y < board.Axis-2; y++ {
		for x := 0; x < board.Axis-2; x++ {
			idx := s.ShapeAt(x+1, y+1)
			if idx == 0 {
				continue
			}
			w.pad(3*x, 2*y)
			w.put(glyphs[idx], 1)
			if x < board.Axis-3 && s.Horizontal[x][y] {
				w.put("──", 2)
			}
		}
		if y == board.Axis-3 {
			break
		}
		for x := 0; x < board.Axis-2; x++ {
			if s.Vertical[x][y] {
				w.pad(3*x, 2*y+1)
				w.put("│", 1)
			}
		}
	}
	if w.err != nil {
		return "", w.err
	}
	return w.b.String(), nil
}
