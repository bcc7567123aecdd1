package testutil

import (
	"strings"
	"testing"

	"github.com/specialistvlad/fleetgrid/internal/board"
	"github.com/stretchr/testify/require"
)

var glyphs = map[rune]board.CellState{
	'~': board.Empty,
	'N': board.Occupied,
	'X': board.Affected,
}

// AssertGrid compares g against rows written with one glyph per cell:
// '~' empty, 'N' occupied, 'X' affected.
func AssertGrid(t *testing.T, g *board.Grid, rows ...string) {
	t.Helper()
	require.Len(t, rows, board.Size, "expected grid must have %d rows", board.Size)

	var mismatches []string
	for r, row := range rows {
		require.Len(t, row, board.Size, "row %d of the expected grid", r)
		for c, glyph := range row {
			want, ok := glyphs[glyph]
			require.True(t, ok, "unknown glyph %q in row %d", glyph, r)
			cell := board.Cell{Row: r, Col: c}
			if got := g.At(cell); got != want {
				mismatches = append(mismatches, cell.String()+": want "+want.String()+", got "+got.String())
			}
		}
	}
	require.Empty(t, mismatches, "grid mismatch:\n%s", strings.Join(mismatches, "\n"))
}
