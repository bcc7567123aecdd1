// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Grid and the cell-state codes it holds.
package board

import "fmt"

// Size is the number of rows and columns of every Grid.
const Size = 10

// CellState is the code stored in a single grid cell.
type CellState int

const (
	Empty    CellState = 0
	Occupied CellState = 3
	Affected CellState = 5
)

// String implements fmt.Stringer.
func (s CellState) String() string {
	switch s {
	case Empty:
		return "empty"
	case Occupied:
		return "occupied"
	case Affected:
		return "affected"
	default:
		return fmt.Sprintf("CellState(%d)", int(s))
	}
}

// Cell addresses a single grid cell by row and column.
type Cell struct {
	Row int
	Col int
}

// String implements fmt.Stringer using the (row,col) notation of the output.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns the cell displaced by the given row and column deltas.
func (c Cell) Add(dRow, dCol int) Cell {
	return Cell{Row: c.Row + dRow, Col: c.Col + dCol}
}

// Grid is the fixed-size playing surface. The zero value is an empty grid.
type Grid struct {
	cells [Size][Size]CellState
}

// NewGrid creates and returns an empty Grid.
func NewGrid() *Grid {
	return &Grid{}
}

// InBounds reports whether c lies inside the grid on both axes.
func InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// At returns the state of the cell. It panics if c is out of bounds.
func (g *Grid) At(c Cell) CellState {
	return g.cells[c.Row][c.Col]
}

// Set overwrites the state of the cell. It panics if c is out of bounds.
func (g *Grid) Set(c Cell, s CellState) {
	g.cells[c.Row][c.Col] = s
}

// Count returns the number of cells holding the given state.
func (g *Grid) Count(s CellState) int {
	n := 0
	for r := range Size {
		for c := range Size {
			if g.cells[r][c] == s {
				n++
			}
		}
	}
	return n
}

// Rows returns a copy of the grid contents, row by row.
func (g *Grid) Rows() [Size][Size]CellState {
	return g.cells
}
