// Package cell defines the nibble-sized types shared by the board model and
// the solver: shape codes and rotation masks.
package cell

// Code is a pipe shape packed into the low four bits. Each bit marks a
// connection stub in one cardinal direction under the canonical
// (unrotated) orientation.
type Code uint8

// Stub bits of a Code.
const (
	North Code = 0x1
	East  Code = 0x2
	South Code = 0x4
	West  Code = 0x8
)

// Recognized shapes in canonical orientation.
const (
	// Empty has no stubs.
	Empty Code = 0x0
	// DeadEnd has a single stub, pointing north.
	DeadEnd Code = 0x1
	// Corner has two adjacent stubs, north and east.
	Corner Code = 0x3
	// Straight has two opposite stubs, north and south.
	Straight Code = 0x5
	// Tee has three stubs, all but west.
	Tee Code = 0x7
	// Cross has all four stubs.
	Cross Code = 0xf
)

// Mask is a set of clockwise quarter-turn rotations still permitted for a
// cell: bit i set means rotating the shape by i quarter-turns remains a
// candidate. An unresolved cell has two or more bits, a resolved cell
// exactly one, a contradicted cell none.
type Mask uint8

// Resolved reports whether at most one rotation remains.
func (m Mask) Resolved() bool {
	return m&(m-1) == 0
}
