package hcl

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/specialistvlad/fleetgrid/internal/board"
	"github.com/specialistvlad/fleetgrid/internal/config"
	"github.com/specialistvlad/fleetgrid/internal/ctxlog"
	"github.com/specialistvlad/fleetgrid/internal/stencil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext() context.Context {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return ctxlog.WithLogger(context.Background(), logger)
}

// writeScenario writes the given files into a temporary directory and
// returns the directory path.
func writeScenario(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return dir
}

// ignoreSource drops the file positions from comparisons.
var ignoreSource = cmp.Options{
	cmpopts.IgnoreFields(config.PieceRequest{}, "Source"),
	cmpopts.IgnoreFields(config.StencilRequest{}, "Source"),
	cmp.AllowUnexported(board.Orientation{}),
}

func TestLoad_FullScenario(t *testing.T) {
	// --- Arrange ---
	dir := writeScenario(t, map[string]string{
		"main.hcl": `
piece "cruiser" {
  row         = 1
  col         = 1
  orientation = orientation.right
}

piece "frigate" {
  row         = 0
  col         = board_size - 3
  orientation = "down"
}

stencil "cone" "salvo" {
  row = 3
  col = 3
}

stencil "diamond" "mine" {
  row  = min(1, 4)
  col  = abs(-8)
  size = 3
}
`,
	})

	// --- Act ---
	scenario, err := NewLoader().Load(testContext(), dir)

	// --- Assert ---
	require.NoError(t, err)
	expected := &config.Scenario{
		Pieces: []*config.PieceRequest{
			{Name: "cruiser", Origin: board.Cell{Row: 1, Col: 1}, Orientation: board.Right},
			{Name: "frigate", Origin: board.Cell{Row: 0, Col: 7}, Orientation: board.Down},
		},
		Stencils: []*config.StencilRequest{
			{Name: "salvo", Shape: stencil.Cone, Origin: board.Cell{Row: 3, Col: 3}},
			{Name: "mine", Shape: stencil.Diamond, Size: 3, Origin: board.Cell{Row: 1, Col: 8}},
		},
	}
	if diff := cmp.Diff(expected, scenario, ignoreSource); diff != "" {
		t.Errorf("scenario mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, filepath.Join(dir, "main.hcl")+":2", scenario.Pieces[0].Source)
}

func TestLoad_MergesFilesInLexicalOrder(t *testing.T) {
	dir := writeScenario(t, map[string]string{
		"b.hcl": `piece "second" {
  row = 2
  col = 0
  orientation = orientation.diag_down_right
}`,
		"a.hcl": `piece "first" {
  row = 0
  col = 9
  orientation = orientation.diag_down_left
}`,
	})

	scenario, err := NewLoader().Load(testContext(), dir)

	require.NoError(t, err)
	require.Len(t, scenario.Pieces, 2)
	assert.Equal(t, "first", scenario.Pieces[0].Name)
	assert.Equal(t, board.DiagDownLeft, scenario.Pieces[0].Orientation)
	assert.Equal(t, "second", scenario.Pieces[1].Name)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		content     string
		errContains string
	}{
		{
			name:        "syntax error",
			content:     `piece "a" {`,
			errContains: "failed to parse HCL file",
		},
		{
			name:        "unknown block",
			content:     `ship "a" {}`,
			errContains: "failed to decode HCL file",
		},
		{
			name: "unknown orientation",
			content: `piece "a" {
  row = 0
  col = 0
  orientation = "up"
}`,
			errContains: `piece "a" at`,
		},
		{
			name: "missing attribute",
			content: `piece "a" {
  row = 0
  orientation = orientation.down
}`,
			errContains: `Missing required argument`,
		},
		{
			name: "unknown shape",
			content: `stencil "star" "a" {
  row = 0
  col = 0
}`,
			errContains: "unknown stencil shape",
		},
		{
			name: "even size",
			content: `stencil "cross" "a" {
  row  = 0
  col  = 0
  size = 4
}`,
			errContains: "invalid scenario",
		},
		{
			name: "duplicate names",
			content: `
stencil "cross" "a" {
  row = 0
  col = 0
}
stencil "cone" "a" {
  row = 1
  col = 1
}`,
			errContains: "duplicate name",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := writeScenario(t, map[string]string{"main.hcl": tc.content})

			_, err := NewLoader().Load(testContext(), dir)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errContains)
		})
	}
}

func TestLoad_NoFiles(t *testing.T) {
	dir := writeScenario(t, map[string]string{"readme.txt": "nothing here"})

	_, err := NewLoader().Load(testContext(), dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no .hcl files found")
}

func TestLoad_MissingPath(t *testing.T) {
	_, err := NewLoader().Load(testContext(), filepath.Join(t.TempDir(), "missing.hcl"))

	require.ErrorIs(t, err, os.ErrNotExist)
}
