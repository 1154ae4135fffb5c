// Package board models Infinite Loop puzzles and their solutions.
//
// What:
//
//   - Problem is a fixed Axis×Axis grid of cell.Code shapes with a
//     one-cell empty border on every side; only interior coordinates
//     (1..Axis-2 on each axis) hold puzzle pieces.
//   - Solution records, for every interior edge, whether a pipe crosses
//     it, as two boolean bitmaps (horizontal and vertical edges).
//   - Parse builds a Problem from the textual puzzle notation.
//   - Unsolve inverts a Solution back into the Problem it solves.
//
// Why:
//
//   - The border sentinel lets the propagator read all four neighbours of
//     any interior cell without bounds checks.
//   - Solutions carry edges rather than placed shapes: both adjacent cells
//     agree on every edge by construction, so one bitmap per axis is the
//     whole answer.
//
// Notation:
//
//	1 dead-end   C corner   S straight   3 t-junction   4 cross
//	space advances the column, newline starts the next row.
//	Piece letters are accepted in either case. Other runes are skipped
//	unless WithStrict is given.
//
// Errors:
//
//   - ErrOutOfBounds: a piece would land outside the interior.
//   - ErrUnknownRune: strict mode only, an unrecognized rune was seen.
//
// Complexity:
//
//   - Parse is O(len(input)); Unsolve is O(Axis²); both allocate only
//     their result.
package board
