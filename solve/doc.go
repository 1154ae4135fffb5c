// Package solve enumerates the solutions of an Infinite Loop puzzle by
// constraint propagation interleaved with backtracking.
//
// What:
//
//   - Solve seeds a per-cell rotation mask from each shape's symmetry,
//     reduces the masks to a fixed point by cross-checking every cell
//     against its four neighbours, and branches on an unresolved cell
//     whenever inference alone cannot finish the board.
//   - Each complete assignment is converted to a board.Solution and
//     streamed to a Consumer, which may stop the search at any point.
//
// Why:
//
//   - Propagation resolves the overwhelming majority of cells without
//     search: a cell's rotation survives only if every stub it extrudes
//     can be received and every gap it leaves can be matched.
//   - The options grid is a fixed-size array, so a branch copy is a plain
//     value copy and sibling branches never share state.
//
// How a single propagation sweep treats cell (x,y):
//
//	may_be_set   — stubs some rotation of a neighbour could push at us
//	may_be_clear — sides some rotation of a neighbour could leave open
//	keep rotation r iff r's stubs ⊆ may_be_set and r's gaps ⊆ may_be_clear
//
// Complexity:
//
//   - One sweep is O(Axis²); sweeps repeat until no mask shrinks, bounded
//     by the total number of removable bits, O(Axis²).
//   - The search tree below a branch copies O(Axis²) bytes per node.
//
// Ordering:
//
//   - Solutions arrive in traversal order. The branch cell is chosen at
//     random by default (seedable with WithRand); WithSelector switches to
//     a deterministic policy. The policy changes only the order in which
//     solutions appear, never the set.
//
// Errors:
//
//   - ErrNilProblem, ErrNilConsumer: invalid input.
//   - ErrOptionViolation: an invalid Option was supplied.
//   - A context error is returned when WithContext's context ends first.
//     A contradiction found while propagating is not an error: the branch
//     is pruned silently and the search continues elsewhere.
package solve
