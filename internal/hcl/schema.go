package hcl

import "github.com/hashicorp/hcl/v2"

// fileSchema lists the top-level blocks a scenario file may contain.
var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "piece", LabelNames: []string{"name"}},
		{Type: "stencil", LabelNames: []string{"shape", "name"}},
	},
}

// pieceBody is the content of a `piece` block.
type pieceBody struct {
	Row         int    `hcl:"row"`
	Col         int    `hcl:"col"`
	Orientation string `hcl:"orientation"`
}

// stencilBody is the content of a `stencil` block.
type stencilBody struct {
	Row  int `hcl:"row"`
	Col  int `hcl:"col"`
	Size int `hcl:"size,optional"`
}
