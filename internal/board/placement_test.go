package board

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPieceCells(t *testing.T) {
	testCases := []struct {
		name     string
		piece    Piece
		expected []Cell
	}{
		{
			name:     "right",
			piece:    Piece{Origin: Cell{Row: 1, Col: 1}, Orientation: Right},
			expected: []Cell{{1, 1}, {1, 2}, {1, 3}},
		},
		{
			name:     "down",
			piece:    Piece{Origin: Cell{Row: 0, Col: 7}, Orientation: Down},
			expected: []Cell{{0, 7}, {1, 7}, {2, 7}},
		},
		{
			name:     "diagonal down right",
			piece:    Piece{Origin: Cell{Row: 4, Col: 4}, Orientation: DiagDownRight},
			expected: []Cell{{4, 4}, {5, 5}, {6, 6}},
		},
		{
			name:     "diagonal down left",
			piece:    Piece{Origin: Cell{Row: 0, Col: 9}, Orientation: DiagDownLeft},
			expected: []Cell{{0, 9}, {1, 8}, {2, 7}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.expected, tc.piece.Cells()); diff != "" {
				t.Errorf("Cells() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCanPlace_FitsEverywhereInside(t *testing.T) {
	// Every origin whose whole run stays inside the grid must be accepted on
	// an empty grid and must mark exactly the run's cells.
	for _, o := range Orientations {
		for r := range Size {
			for c := range Size {
				p := Piece{Origin: Cell{Row: r, Col: c}, Orientation: o}
				inside := true
				for _, cell := range p.Cells() {
					inside = inside && InBounds(cell)
				}

				g := NewGrid()
				err := g.CanPlace(p)
				if !inside {
					require.ErrorIs(t, err, ErrOutOfBounds, "piece %s at %s", o, p.Origin)
					continue
				}
				require.NoError(t, err, "piece %s at %s", o, p.Origin)

				g.Place(p)
				assert.Equal(t, PieceLength, g.Count(Occupied))
				for _, cell := range p.Cells() {
					assert.Equal(t, Occupied, g.At(cell))
				}
			}
		}
	}
}

func TestCanPlace_OutOfBounds(t *testing.T) {
	testCases := []struct {
		name         string
		piece        Piece
		expectedStep int
		expectedCell Cell
	}{
		{
			name:         "origin above the grid",
			piece:        Piece{Origin: Cell{Row: -1, Col: 0}, Orientation: Right},
			expectedStep: 0,
			expectedCell: Cell{Row: -1, Col: 0},
		},
		{
			name:         "right runs past the last column",
			piece:        Piece{Origin: Cell{Row: 0, Col: 8}, Orientation: Right},
			expectedStep: 2,
			expectedCell: Cell{Row: 0, Col: 10},
		},
		{
			name:         "down runs past the last row",
			piece:        Piece{Origin: Cell{Row: 9, Col: 0}, Orientation: Down},
			expectedStep: 1,
			expectedCell: Cell{Row: 10, Col: 0},
		},
		{
			name:         "diagonal left runs past the first column",
			piece:        Piece{Origin: Cell{Row: 0, Col: 1}, Orientation: DiagDownLeft},
			expectedStep: 2,
			expectedCell: Cell{Row: 2, Col: -1},
		},
		{
			name:         "diagonal right runs past the corner",
			piece:        Piece{Origin: Cell{Row: 8, Col: 8}, Orientation: DiagDownRight},
			expectedStep: 2,
			expectedCell: Cell{Row: 10, Col: 10},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid()

			err := g.CanPlace(tc.piece)

			var perr *PlacementError
			require.ErrorAs(t, err, &perr)
			assert.ErrorIs(t, err, ErrOutOfBounds)
			assert.False(t, errors.Is(err, ErrOverlap))
			assert.Equal(t, tc.expectedStep, perr.Step)
			assert.Equal(t, tc.expectedCell, perr.Cell)
			assert.Equal(t, 0, g.Count(Occupied), "a rejected piece must not mutate the grid")
		})
	}
}

func TestCanPlace_OverlapDoesNotMutate(t *testing.T) {
	// --- Arrange ---
	g := NewGrid()
	require.NoError(t, g.TryPlace(Piece{Origin: Cell{Row: 0, Col: 7}, Orientation: Down}))
	before := g.Rows()

	// --- Act ---
	// This diagonal ends on (2,7), which the vertical piece already holds.
	err := g.TryPlace(Piece{Origin: Cell{Row: 0, Col: 9}, Orientation: DiagDownLeft})

	// --- Assert ---
	var perr *PlacementError
	require.ErrorAs(t, err, &perr)
	assert.ErrorIs(t, err, ErrOverlap)
	assert.Equal(t, 2, perr.Step)
	assert.Equal(t, Cell{Row: 2, Col: 7}, perr.Cell)
	assert.Equal(t, before, g.Rows(), "grid changed after a rejected placement")
}

func TestCanPlace_ZeroOrientation(t *testing.T) {
	g := NewGrid()

	err := g.CanPlace(Piece{Origin: Cell{Row: 3, Col: 3}})

	require.ErrorIs(t, err, ErrUnknownOrientation)
}

func TestTryPlace_HorizontalNeighborhood(t *testing.T) {
	g := NewGrid()

	require.NoError(t, g.TryPlace(Piece{Origin: Cell{Row: 1, Col: 1}, Orientation: Right}))

	for r := 0; r <= 2; r++ {
		for c := 0; c <= 4; c++ {
			cell := Cell{Row: r, Col: c}
			expected := Empty
			if r == 1 && c >= 1 && c <= 3 {
				expected = Occupied
			}
			assert.Equal(t, expected, g.At(cell), "cell %s", cell)
		}
	}
}

func TestPlacementError_Message(t *testing.T) {
	g := NewGrid()

	err := g.CanPlace(Piece{Origin: Cell{Row: 0, Col: 8}, Orientation: Right})

	require.EqualError(t, err, "piece RIGHT at (0,8): cell 2 (0,10) out of bounds")
}
