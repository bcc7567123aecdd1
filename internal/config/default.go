package config

import (
	"github.com/specialistvlad/fleetgrid/internal/board"
	"github.com/specialistvlad/fleetgrid/internal/stencil"
)

// Default returns the built-in scenario used when no configuration path is
// given. The fourth piece deliberately collides with the second one at (2,7).
func Default() *Scenario {
	return &Scenario{
		Pieces: []*PieceRequest{
			{Name: "1", Origin: board.Cell{Row: 1, Col: 1}, Orientation: board.Right},
			{Name: "2", Origin: board.Cell{Row: 0, Col: 7}, Orientation: board.Down},
			{Name: "3", Origin: board.Cell{Row: 4, Col: 4}, Orientation: board.DiagDownRight},
			{Name: "4", Origin: board.Cell{Row: 0, Col: 9}, Orientation: board.DiagDownLeft},
		},
		Stencils: []*StencilRequest{
			{Name: "cone", Shape: stencil.Cone, Origin: board.Cell{Row: 3, Col: 3}},
			{Name: "cross", Shape: stencil.Cross, Origin: board.Cell{Row: 7, Col: 2}},
			{Name: "diamond", Shape: stencil.Diamond, Origin: board.Cell{Row: 1, Col: 8}},
		},
	}
}
