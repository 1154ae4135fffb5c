package board_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipetwist/infiniteloop/board"
	"github.com/pipetwist/infiniteloop/cell"
)

// TestParse_Empty verifies that empty and whitespace-only inputs are valid
// and produce a fully empty board.
func TestParse_Empty(t *testing.T) {
	for _, in := range []string{"", "    \n\n      ", "\n\n\n"} {
		p, err := board.Parse(in)
		require.NoError(t, err, "input %q", in)
		for x := 0; x < board.Axis; x++ {
			for y := 0; y < board.Axis; y++ {
				assert.Equal(t, cell.Empty, p.Cells[x][y],
					"input %q cell (%d,%d)", in, x, y)
			}
		}
	}
}

// TestParse_Pieces checks placement, cursor movement, and case folding.
func TestParse_Pieces(t *testing.T) {
	p, err := board.Parse(" 1\nCc S3 4")
	require.NoError(t, err)

	want := map[[2]int]cell.Code{
		{2, 1}: cell.DeadEnd,
		{1, 2}: cell.Corner,
		{2, 2}: cell.Corner,
		{4, 2}: cell.Straight,
		{5, 2}: cell.Tee,
		{7, 2}: cell.Cross,
	}
	for x := 0; x < board.Axis; x++ {
		for y := 0; y < board.Axis; y++ {
			assert.Equal(t, want[[2]int{x, y}], p.Cells[x][y],
				"cell (%d,%d)", x, y)
		}
	}
}

// TestParse_SkipsUnknownRunes confirms that unrecognized runes neither
// place a piece nor move the cursor.
func TestParse_SkipsUnknownRunes(t *testing.T) {
	p, err := board.Parse("1xy3")
	require.NoError(t, err)
	assert.Equal(t, cell.DeadEnd, p.Cells[1][1])
	assert.Equal(t, cell.Tee, p.Cells[2][1])
}

// TestParse_Strict rejects the same input under WithStrict.
func TestParse_Strict(t *testing.T) {
	_, err := board.Parse("1xy3", board.WithStrict())
	require.Error(t, err)
	assert.True(t, errors.Is(err, board.ErrUnknownRune), "got %v", err)

	// Piece letters, spaces and newlines stay accepted.
	_, err = board.Parse("1C sc\n34", board.WithStrict())
	assert.NoError(t, err)
}

// TestParse_OutOfBounds exercises the interior limit on both axes: Axis-2
// pieces fit in a row, one more does not.
func TestParse_OutOfBounds(t *testing.T) {
	row := make([]byte, board.Axis-2)
	for i := range row {
		row[i] = '1'
	}
	_, err := board.Parse(string(row))
	require.NoError(t, err)

	_, err = board.Parse(string(row) + "1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, board.ErrOutOfBounds), "got %v", err)

	// Row overflow: Axis-2 newlines push the cursor past the interior.
	tall := ""
	for i := 0; i < board.Axis-3; i++ {
		tall += "\n"
	}
	_, err = board.Parse(tall + "1")
	require.NoError(t, err)
	_, err = board.Parse(tall + "\n1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, board.ErrOutOfBounds), "got %v", err)
}

// ringSolution returns the smallest closed loop: four corner pieces in the
// top-left interior square.
func ringSolution() *board.Solution {
	var s board.Solution
	s.Horizontal[0][0] = true
	s.Horizontal[0][1] = true
	s.Vertical[0][0] = true
	s.Vertical[1][0] = true
	return &s
}

// TestShapeAt reads the four ring cells and one far-away empty cell.
func TestShapeAt(t *testing.T) {
	s := ringSolution()
	assert.Equal(t, cell.East|cell.South, s.ShapeAt(1, 1))
	assert.Equal(t, cell.South|cell.West, s.ShapeAt(2, 1))
	assert.Equal(t, cell.North|cell.East, s.ShapeAt(1, 2))
	assert.Equal(t, cell.North|cell.West, s.ShapeAt(2, 2))
	assert.Equal(t, cell.Empty, s.ShapeAt(7, 7))
}

// TestUnsolve_Ring verifies that every synthesized shape is the incident
// edge mask and that untouched cells stay empty.
func TestUnsolve_Ring(t *testing.T) {
	s := ringSolution()
	p := s.Unsolve()

	for x := 1; x <= board.Axis-2; x++ {
		for y := 1; y <= board.Axis-2; y++ {
			assert.Equal(t, s.ShapeAt(x, y), p.Cells[x][y],
				"cell (%d,%d)", x, y)
		}
	}
	// Border untouched.
	for i := 0; i < board.Axis; i++ {
		assert.Equal(t, cell.Empty, p.Cells[0][i])
		assert.Equal(t, cell.Empty, p.Cells[board.Axis-1][i])
		assert.Equal(t, cell.Empty, p.Cells[i][0])
		assert.Equal(t, cell.Empty, p.Cells[i][board.Axis-1])
	}
}
