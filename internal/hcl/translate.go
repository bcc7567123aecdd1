package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/fleetgrid/internal/board"
	"github.com/specialistvlad/fleetgrid/internal/config"
	"github.com/specialistvlad/fleetgrid/internal/stencil"
)

// translatePiece converts a `piece` block into the agnostic model.
func translatePiece(block *hcl.Block, evalCtx *hcl.EvalContext) (*config.PieceRequest, error) {
	src := source(block.DefRange)

	var body pieceBody
	if diags := gohcl.DecodeBody(block.Body, evalCtx, &body); diags.HasErrors() {
		return nil, fmt.Errorf("piece %q at %s: %w", block.Labels[0], src, diags)
	}

	orientation, err := board.ParseOrientation(body.Orientation)
	if err != nil {
		return nil, fmt.Errorf("piece %q at %s: %w", block.Labels[0], src, err)
	}

	return &config.PieceRequest{
		Name:        block.Labels[0],
		Origin:      board.Cell{Row: body.Row, Col: body.Col},
		Orientation: orientation,
		Source:      src,
	}, nil
}

// translateStencil converts a `stencil` block into the agnostic model.
func translateStencil(block *hcl.Block, evalCtx *hcl.EvalContext) (*config.StencilRequest, error) {
	src := source(block.DefRange)
	name := block.Labels[1]

	shape, err := stencil.ParseShape(block.Labels[0])
	if err != nil {
		return nil, fmt.Errorf("stencil %q at %s: %w", name, src, err)
	}

	var body stencilBody
	if diags := gohcl.DecodeBody(block.Body, evalCtx, &body); diags.HasErrors() {
		return nil, fmt.Errorf("stencil %q at %s: %w", name, src, diags)
	}

	return &config.StencilRequest{
		Name:   name,
		Shape:  shape,
		Size:   body.Size,
		Origin: board.Cell{Row: body.Row, Col: body.Col},
		Source: src,
	}, nil
}
