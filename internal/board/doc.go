// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package board implements the playing surface of fleetgrid and the two
// operations that mutate it: placing linear pieces and overlaying
// area-of-effect stencils.
//
// # Core Concepts
//
//   - Grid: a fixed 10x10 matrix of cell states (Empty, Occupied, Affected).
//     The grid is the only persistent record of a run; pieces and stencils are
//     ephemeral and leave nothing behind except the cells they touched.
//
//   - Piece: an origin cell, an Orientation and a fixed length of 3 cells.
//     Validation (CanPlace) and writing (Place) are separate operations so a
//     caller can inspect why a placement was rejected without side effects.
//
//   - Overlay: any square boolean matrix exposing Size and Affected can be
//     stamped onto the grid around an origin. Cells falling outside the grid
//     are clipped and Occupied cells are never overwritten.
//
// Why a separate board package?
//
// The board has no knowledge of configuration formats, logging or output. It
// is a pure set of transformations over a Grid, which keeps the geometric
// rules testable in isolation from the scenario that drives them.
package board
