// Package cell implements the 4-bit shape algebra behind the Infinite Loop
// solver.
//
// What:
//
//   - Code packs a pipe shape into one nibble: bit 0 = north stub,
//     bit 1 = east, bit 2 = south, bit 3 = west.
//   - Mask packs the set of still-permitted clockwise rotations of a cell,
//     one bit per quarter-turn.
//   - Rotate, Flip and Fanout are the branch-free primitives the
//     propagator is built from.
//   - Orientations classifies a shape by rotational symmetry and yields
//     its initial rotation mask.
//
// Why:
//
//   - Edge agreement between neighbouring cells reduces to AND/OR of
//     nibbles, so a whole propagation sweep runs without branches or
//     allocation.
//
// Complexity:
//
//   - Every operation in this package is O(1) and allocation-free.
//
// See the solve package for how these primitives combine into a search.
package cell
