// Package infiniteloop solves "Infinite Loop" pipe-rotation puzzles: every
// cell of a rectangular board holds a fixed pipe shape that may be rotated
// to any of four orientations, and a board is solved when every pipe stub
// meets a matching stub on the far side of its edge.
//
// 🚀 What is infiniteloop?
//
//	A small, allocation-light constraint solver built from four packages:
//		• cell/   — 4-bit shape codes: rotation, fanout, symmetry
//		• board/  — the puzzle model, text parser and inverse transformation
//		• solve/  — propagate-to-fixpoint + backtracking enumeration
//		• render/ — Unicode box-drawing output for solutions
//
// ✨ Why choose it?
//
//   - Exhaustive – enumerates every valid rotation assignment, streamed
//     to a consumer that may stop the search at any point
//   - Branch-free core – cells are nibbles, propagation is pure bit algebra
//   - Pure Go – no cgo, fixed-size boards, no allocation on the hot path
//
// Quick example, a two-by-two ring of corner pieces:
//
//	    ╭──╮
//	    │  │
//	    ╰──╯
//
// Drivers live under cmd/: loopsolve prints every solution read from
// standard input, loopcount additionally reports how many were found.
// Runnable walkthroughs are the Example functions of the cell, board and
// solve packages.
package infiniteloop
