// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the Orientation of a linear piece.
//
// Why a struct instead of an enum?
//
// Every orientation is fully described by the step it takes from one cell to
// the next. Carrying that step on the value itself means placement code never
// branches on which orientation it was given; it only walks the delta.
package board

import (
	"errors"
	"fmt"
	"strings"
)

// Orientation is the per-step displacement of a linear piece. Its fields are
// unexported, so the only non-zero values are the ones declared below.
type Orientation struct {
	name string
	dRow int
	dCol int
}

var (
	Right         = Orientation{name: "right", dRow: 0, dCol: +1}
	Down          = Orientation{name: "down", dRow: +1, dCol: 0}
	DiagDownRight = Orientation{name: "diag_down_right", dRow: +1, dCol: +1}
	DiagDownLeft  = Orientation{name: "diag_down_left", dRow: +1, dCol: -1}
)

// Orientations lists every supported orientation in a stable order.
var Orientations = []Orientation{Right, Down, DiagDownRight, DiagDownLeft}

// ErrUnknownOrientation is returned by ParseOrientation for unsupported names.
var ErrUnknownOrientation = errors.New("unknown orientation")

// ParseOrientation resolves an orientation by its name. Matching ignores case
// and accepts '-' in place of '_'.
func ParseOrientation(s string) (Orientation, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for _, o := range Orientations {
		if o.name == name {
			return o, nil
		}
	}
	return Orientation{}, fmt.Errorf("%w: %q", ErrUnknownOrientation, s)
}

// Delta returns the row and column step between consecutive cells of a piece.
func (o Orientation) Delta() (dRow, dCol int) {
	return o.dRow, o.dCol
}

// IsZero reports whether o is the zero value, which is not a valid orientation.
func (o Orientation) IsZero() bool {
	return o == Orientation{}
}

// Name returns the configuration name of the orientation, e.g. "diag_down_left".
func (o Orientation) Name() string {
	return o.name
}

// String returns the upper-case label used in placement messages.
func (o Orientation) String() string {
	if o.name == "" {
		return "NONE"
	}
	return strings.ToUpper(o.name)
}
