// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file implements validation and writing of linear pieces.
//
// Why split validation from writing?
//
// CanPlace is a pure query: it walks the run, reports the first offending
// cell and never touches the grid. Place is the mutation and trusts that the
// query already passed. TryPlace composes the two for the common case.
package board

import (
	"errors"
	"fmt"
)

// PieceLength is the number of cells covered by every piece.
const PieceLength = 3

var (
	// ErrOutOfBounds marks a piece that would leave the grid.
	ErrOutOfBounds = errors.New("out of bounds")
	// ErrOverlap marks a piece that would cover an occupied cell.
	ErrOverlap = errors.New("overlaps an occupied cell")
)

// Piece is a run of PieceLength cells starting at Origin and stepping by
// Orientation.
type Piece struct {
	Origin      Cell
	Orientation Orientation
}

// Cells returns the cells covered by the piece in step order. Cells may lie
// outside the grid.
func (p Piece) Cells() []Cell {
	dRow, dCol := p.Orientation.Delta()
	cells := make([]Cell, 0, PieceLength)
	for k := range PieceLength {
		cells = append(cells, p.Origin.Add(k*dRow, k*dCol))
	}
	return cells
}

// PlacementError describes why a piece was rejected.
type PlacementError struct {
	Piece Piece
	Step  int  // index of the offending cell within the run
	Cell  Cell // the offending cell
	Err   error
}

// Error implements the error interface.
func (e *PlacementError) Error() string {
	return fmt.Sprintf("piece %s at %s: cell %d %s %s",
		e.Piece.Orientation, e.Piece.Origin, e.Step, e.Cell, e.Err)
}

// Unwrap returns the rejection reason, ErrOutOfBounds or ErrOverlap.
func (e *PlacementError) Unwrap() error {
	return e.Err
}

// CanPlace reports whether p fits on the grid. It returns nil when every cell
// of the run is in bounds and not Occupied, and a *PlacementError for the
// first cell that is not. The grid is never modified.
func (g *Grid) CanPlace(p Piece) error {
	if p.Orientation.IsZero() {
		return &PlacementError{Piece: p, Cell: p.Origin, Err: ErrUnknownOrientation}
	}
	for k, c := range p.Cells() {
		if !InBounds(c) {
			return &PlacementError{Piece: p, Step: k, Cell: c, Err: ErrOutOfBounds}
		}
		if g.At(c) == Occupied {
			return &PlacementError{Piece: p, Step: k, Cell: c, Err: ErrOverlap}
		}
	}
	return nil
}

// Place marks every cell of p as Occupied. It does not validate; callers must
// have received a nil error from CanPlace for the same piece and grid.
func (g *Grid) Place(p Piece) {
	for _, c := range p.Cells() {
		g.Set(c, Occupied)
	}
}

// TryPlace validates p and, if it fits, places it.
func (g *Grid) TryPlace(p Piece) error {
	if err := g.CanPlace(p); err != nil {
		return err
	}
	g.Place(p)
	return nil
}
