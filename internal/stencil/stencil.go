// Package stencil generates the square boolean matrices that describe the
// area of effect of a special ability. The center of every stencil, at
// Size()/2 on both axes, is the cell placed on the target origin.
package stencil

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownShape is returned for shape names that have no generator.
	ErrUnknownShape = errors.New("unknown stencil shape")
	// ErrInvalidSize is returned when a stencil size is not a positive odd number.
	ErrInvalidSize = errors.New("stencil size must be a positive odd number")
)

// Shape names an area-of-effect pattern.
type Shape string

const (
	Cone    Shape = "cone"
	Cross   Shape = "cross"
	Diamond Shape = "diamond"
)

// Shapes lists every supported shape in a stable order.
var Shapes = []Shape{Cone, Cross, Diamond}

// ParseShape resolves a shape by its case-insensitive name.
func ParseShape(s string) (Shape, error) {
	shape := Shape(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := generators[shape]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownShape, s)
	}
	return shape, nil
}

// DefaultSize returns the size a shape is generated with when none is given.
func (s Shape) DefaultSize() int {
	switch s {
	case Cone:
		return 7
	case Cross, Diamond:
		return 5
	default:
		return 0
	}
}

// String returns the upper-case label used in output headers.
func (s Shape) String() string {
	return strings.ToUpper(string(s))
}

// Stencil is a square boolean matrix.
type Stencil struct {
	shape Shape
	size  int
	cells []bool
}

// New generates the stencil for shape with the given size. A size of 0
// selects the shape's default size.
func New(shape Shape, size int) (*Stencil, error) {
	gen, ok := generators[shape]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownShape, string(shape))
	}
	if size == 0 {
		size = shape.DefaultSize()
	}
	if size < 1 || size%2 == 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	s := &Stencil{shape: shape, size: size, cells: make([]bool, size*size)}
	center := size / 2
	for i := range size {
		for j := range size {
			s.cells[i*size+j] = gen(i, j, center)
		}
	}
	return s, nil
}

// Shape returns the shape the stencil was generated from.
func (s *Stencil) Shape() Shape {
	return s.shape
}

// Size returns the number of rows (and columns) of the stencil.
func (s *Stencil) Size() int {
	return s.size
}

// Affected reports whether the cell at (row, col) is part of the area of
// effect. Coordinates outside the stencil are never affected.
func (s *Stencil) Affected(row, col int) bool {
	if row < 0 || row >= s.size || col < 0 || col >= s.size {
		return false
	}
	return s.cells[row*s.size+col]
}

// Count returns the number of affected cells.
func (s *Stencil) Count() int {
	n := 0
	for _, v := range s.cells {
		if v {
			n++
		}
	}
	return n
}
