// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for file discovery, parsing, expression
// evaluation against the scenario evaluation context, and translation of
// `piece` and `stencil` blocks into the format-agnostic scenario model.
//
// A scenario file looks like:
//
//	piece "cruiser" {
//	  row         = 1
//	  col         = 1
//	  orientation = orientation.right
//	}
//
//	stencil "cone" "opening_salvo" {
//	  row = 3
//	  col = 3
//	}
package hcl
