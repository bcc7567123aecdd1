// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file implements the overlay of area-of-effect stencils onto a Grid.
package board

// Stencil is a square boolean matrix whose center is placed on an origin cell.
type Stencil interface {
	Size() int
	Affected(row, col int) bool
}

// OverlayResult counts what happened to the affected cells of a stencil.
type OverlayResult struct {
	Marked  int // in-bounds cells now Affected
	Clipped int // cells that fell outside the grid
	Blocked int // cells left untouched because they were Occupied
}

// Overlay stamps s onto the grid with its center at origin. Stencil cell
// (i, j) maps to (origin.Row+i-offset, origin.Col+j-offset), offset being
// Size()/2. Out-of-bounds cells are skipped and Occupied cells are never
// overwritten; both are only reported through the returned counts.
func (g *Grid) Overlay(s Stencil, origin Cell) OverlayResult {
	var res OverlayResult
	size := s.Size()
	offset := size / 2
	for i := range size {
		for j := range size {
			if !s.Affected(i, j) {
				continue
			}
			c := origin.Add(i-offset, j-offset)
			switch {
			case !InBounds(c):
				res.Clipped++
			case g.At(c) == Occupied:
				res.Blocked++
			default:
				g.Set(c, Affected)
				res.Marked++
			}
		}
	}
	return res
}
