package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/fleetgrid/internal/board"
	"github.com/specialistvlad/fleetgrid/internal/stencil"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// newEvalContext builds the variables and functions visible to scenario
// expressions: orientation.<name>, shape.<name>, board_size, min, max, abs.
func newEvalContext() *hcl.EvalContext {
	orientations := make(map[string]cty.Value, len(board.Orientations))
	for _, o := range board.Orientations {
		orientations[o.Name()] = cty.StringVal(o.Name())
	}
	shapes := make(map[string]cty.Value, len(stencil.Shapes))
	for _, s := range stencil.Shapes {
		shapes[string(s)] = cty.StringVal(string(s))
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"orientation": cty.ObjectVal(orientations),
			"shape":       cty.ObjectVal(shapes),
			"board_size":  cty.NumberIntVal(board.Size),
		},
		Functions: map[string]function.Function{
			"min": stdlib.MinFunc,
			"max": stdlib.MaxFunc,
			"abs": stdlib.AbsoluteFunc,
		},
	}
}
