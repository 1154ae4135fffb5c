// Package render formats Infinite Loop solutions as Unicode box-drawing
// text.
//
// What:
//
//   - Render draws every interior cell that touches at least one set edge,
//     picking the glyph indexed by the cell's 4-bit {N,E,S,W} edge mask
//     from ╵ ╶ ╰ ╷ │ ╭ ├ ╴ ╯ ─ ┴ ╮ ┤ ┬ ┼.
//   - Cells sit three columns and two rows apart: a set horizontal edge
//     continues a cell with ──, a set vertical edge drops a │ on the
//     interleaved row.
//   - Whitespace is emitted lazily, only to reach the next visible glyph,
//     so trailing blanks and trailing empty rows are elided and the empty
//     solution renders as "". A blank row before a later glyph still
//     appears as an empty line.
//
// Example, the smallest closed loop:
//
//	╭──╮
//	│  │
//	╰──╯
//
// Errors:
//
//   - ErrOverflow: the output grew past the WithMaxSize byte budget.
//   - ErrOptionViolation: an invalid Option was supplied.
//
// Complexity:
//
//   - O(Axis²) glyph lookups; output length is the only allocation.
package render
