package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/fleetgrid/internal/config"
	"github.com/specialistvlad/fleetgrid/internal/ctxlog"
	"github.com/specialistvlad/fleetgrid/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load discovers every .hcl file under the given paths, parses them in
// lexical order and merges their blocks into a single validated scenario.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Scenario, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl files found in %v", paths)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := newEvalContext()
	scenario := &config.Scenario{}

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		content, diags := hclFile.Body.Content(fileSchema)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, block := range content.Blocks {
			switch block.Type {
			case "piece":
				req, err := translatePiece(block, evalCtx)
				if err != nil {
					return nil, err
				}
				scenario.Pieces = append(scenario.Pieces, req)
			case "stencil":
				req, err := translateStencil(block, evalCtx)
				if err != nil {
					return nil, err
				}
				scenario.Stencils = append(scenario.Stencils, req)
			}
		}
		logger.Debug("Parsed HCL file.", "file", file, "blocks", len(content.Blocks))
	}

	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	logger.Debug("HCL loading complete.", "pieces", len(scenario.Pieces), "stencils", len(scenario.Stencils))
	return scenario, nil
}

// source formats the declaration position of a block as "file:line".
func source(r hcl.Range) string {
	return fmt.Sprintf("%s:%d", r.Filename, r.Start.Line)
}
