// Package render produces the fixed-width text views of grids and stencils.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/fleetgrid/internal/board"
)

const separator = "  +-------------------------------"

// Matrix is the read-only view of a stencil needed to print it.
type Matrix interface {
	Size() int
	Affected(row, col int) bool
}

// cellGlyph returns the 3-character representation of a cell state.
func cellGlyph(s board.CellState) string {
	switch s {
	case board.Empty:
		return " ~ "
	case board.Occupied:
		return " N "
	case board.Affected:
		return " X "
	default:
		return " ? "
	}
}

// Grid writes g as a table with 2-digit column and row indices.
func Grid(w io.Writer, g *board.Grid) error {
	var sb strings.Builder
	sb.WriteString("   ")
	for c := range board.Size {
		fmt.Fprintf(&sb, "%2d ", c)
	}
	sb.WriteString("\n")
	sb.WriteString(separator)
	sb.WriteString("\n")

	rows := g.Rows()
	for r, row := range rows {
		fmt.Fprintf(&sb, "%2d|", r)
		for _, cell := range row {
			sb.WriteString(cellGlyph(cell))
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// Stencil writes m as rows of 1 (affected) and 0 (not affected).
func Stencil(w io.Writer, m Matrix) error {
	var sb strings.Builder
	for i := range m.Size() {
		for j := range m.Size() {
			v := 0
			if m.Affected(i, j) {
				v = 1
			}
			fmt.Fprintf(&sb, "%d ", v)
		}
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
