package config

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/fleetgrid/internal/board"
	"github.com/specialistvlad/fleetgrid/internal/stencil"
)

// Scenario is the unified, format-agnostic representation of one run: the
// pieces to place followed by the stencils to apply.
type Scenario struct {
	Pieces   []*PieceRequest
	Stencils []*StencilRequest
}

// PieceRequest asks for a piece to be placed at Origin.
type PieceRequest struct {
	Name        string
	Origin      board.Cell
	Orientation board.Orientation
	Source      string // "file:line" of the declaration, empty for built-ins
}

// Piece returns the board piece described by the request.
func (r *PieceRequest) Piece() board.Piece {
	return board.Piece{Origin: r.Origin, Orientation: r.Orientation}
}

// StencilRequest asks for a stencil to be generated and overlaid with its
// center at Origin. A Size of 0 selects the shape's default size.
type StencilRequest struct {
	Name   string
	Shape  stencil.Shape
	Size   int
	Origin board.Cell
	Source string
}

// ErrDuplicateName is returned when two requests of the same kind share a name.
var ErrDuplicateName = errors.New("duplicate name")

// Validate checks the scenario for structural errors. Coordinates are not
// checked here: an out-of-bounds piece is a placement rejection at run time,
// and stencils are clipped.
func (s *Scenario) Validate() error {
	var errs []error

	seen := make(map[string]string, len(s.Pieces))
	for _, p := range s.Pieces {
		if p.Name == "" {
			errs = append(errs, fmt.Errorf("piece%s: name must not be empty", at(p.Source)))
		} else if prev, ok := seen[p.Name]; ok {
			errs = append(errs, fmt.Errorf("piece %q%s: %w (first declared%s)", p.Name, at(p.Source), ErrDuplicateName, at(prev)))
		} else {
			seen[p.Name] = p.Source
		}
		if p.Orientation.IsZero() {
			errs = append(errs, fmt.Errorf("piece %q%s: %w", p.Name, at(p.Source), board.ErrUnknownOrientation))
		}
	}

	seen = make(map[string]string, len(s.Stencils))
	for _, st := range s.Stencils {
		if st.Name == "" {
			errs = append(errs, fmt.Errorf("stencil%s: name must not be empty", at(st.Source)))
		} else if prev, ok := seen[st.Name]; ok {
			errs = append(errs, fmt.Errorf("stencil %q%s: %w (first declared%s)", st.Name, at(st.Source), ErrDuplicateName, at(prev)))
		} else {
			seen[st.Name] = st.Source
		}
		if _, err := stencil.New(st.Shape, st.Size); err != nil {
			errs = append(errs, fmt.Errorf("stencil %q%s: %w", st.Name, at(st.Source), err))
		}
	}

	return errors.Join(errs...)
}

func at(source string) string {
	if source == "" {
		return ""
	}
	return " at " + source
}
