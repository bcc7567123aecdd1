// Package yaml provides a YAML implementation of the config.Loader
// interface. A scenario document has two top-level lists:
//
//	pieces:
//	  - name: cruiser
//	    row: 1
//	    col: 1
//	    orientation: right
//	stencils:
//	  - name: salvo
//	    shape: cone
//	    row: 3
//	    col: 3
package yaml

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/fleetgrid/internal/board"
	"github.com/specialistvlad/fleetgrid/internal/config"
	"github.com/specialistvlad/fleetgrid/internal/ctxlog"
	"github.com/specialistvlad/fleetgrid/internal/fsutil"
	"github.com/specialistvlad/fleetgrid/internal/stencil"
	"gopkg.in/yaml.v3"
)

type fileRoot struct {
	Pieces   []pieceEntry   `yaml:"pieces"`
	Stencils []stencilEntry `yaml:"stencils"`
}

type pieceEntry struct {
	Name        string `yaml:"name"`
	Row         *int   `yaml:"row"`
	Col         *int   `yaml:"col"`
	Orientation string `yaml:"orientation"`
}

type stencilEntry struct {
	Name  string `yaml:"name"`
	Shape string `yaml:"shape"`
	Row   *int   `yaml:"row"`
	Col   *int   `yaml:"col"`
	Size  int    `yaml:"size"`
}

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every .yaml/.yml file under the given paths, in lexical order,
// and merges them into a single validated scenario. Unknown fields are
// rejected.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Scenario, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".yaml", ".yml")
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		files = append(files, found...)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .yaml files found in %v", paths)
	}

	scenario := &config.Scenario{}
	for _, file := range files {
		if err := loadFile(file, scenario); err != nil {
			return nil, err
		}
		logger.Debug("Parsed YAML file.", "file", file)
	}

	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	logger.Debug("YAML loading complete.", "pieces", len(scenario.Pieces), "stencils", len(scenario.Stencils))
	return scenario, nil
}

// loadFile appends the requests of every document in file to scenario.
// Documents separated by "---" are merged in order.
func loadFile(file string, scenario *config.Scenario) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read YAML file %s: %w", file, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// A second decoder over the node tree recovers the line of each entry.
	nodes := yaml.NewDecoder(bytes.NewReader(data))

	for doc := 1; ; doc++ {
		var root fileRoot
		if err := dec.Decode(&root); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to decode YAML file %s (document %d): %w", file, doc, err)
		}
		var node yaml.Node
		if err := nodes.Decode(&node); err != nil {
			return fmt.Errorf("failed to parse YAML file %s (document %d): %w", file, doc, err)
		}
		if err := appendDocument(file, &root, &node, scenario); err != nil {
			return err
		}
	}
}

func appendDocument(file string, root *fileRoot, doc *yaml.Node, scenario *config.Scenario) error {
	pieceLines := entryLines(doc, "pieces")
	stencilLines := entryLines(doc, "stencils")

	for i, p := range root.Pieces {
		src := fmt.Sprintf("%s:%d", file, lineAt(pieceLines, i))
		if p.Row == nil || p.Col == nil {
			return fmt.Errorf("piece %q at %s: row and col are required", p.Name, src)
		}
		orientation, err := board.ParseOrientation(p.Orientation)
		if err != nil {
			return fmt.Errorf("piece %q at %s: %w", p.Name, src, err)
		}
		scenario.Pieces = append(scenario.Pieces, &config.PieceRequest{
			Name:        p.Name,
			Origin:      board.Cell{Row: *p.Row, Col: *p.Col},
			Orientation: orientation,
			Source:      src,
		})
	}

	for i, s := range root.Stencils {
		src := fmt.Sprintf("%s:%d", file, lineAt(stencilLines, i))
		if s.Row == nil || s.Col == nil {
			return fmt.Errorf("stencil %q at %s: row and col are required", s.Name, src)
		}
		shape, err := stencil.ParseShape(s.Shape)
		if err != nil {
			return fmt.Errorf("stencil %q at %s: %w", s.Name, src, err)
		}
		scenario.Stencils = append(scenario.Stencils, &config.StencilRequest{
			Name:   s.Name,
			Shape:  shape,
			Size:   s.Size,
			Origin: board.Cell{Row: *s.Row, Col: *s.Col},
			Source: src,
		})
	}
	return nil
}

// entryLines returns the line of every item of the top-level sequence key.
func entryLines(doc *yaml.Node, key string) []int {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != key || root.Content[i+1].Kind != yaml.SequenceNode {
			continue
		}
		lines := make([]int, 0, len(root.Content[i+1].Content))
		for _, item := range root.Content[i+1].Content {
			lines = append(lines, item.Line)
		}
		return lines
	}
	return nil
}

func lineAt(lines []int, i int) int {
	if i < len(lines) {
		return lines[i]
	}
	return 0
}
