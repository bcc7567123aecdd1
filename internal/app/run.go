package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/fleetgrid/internal/board"
	"github.com/specialistvlad/fleetgrid/internal/config"
	"github.com/specialistvlad/fleetgrid/internal/ctxlog"
	"github.com/specialistvlad/fleetgrid/internal/render"
	"github.com/specialistvlad/fleetgrid/internal/stencil"
)

// Result summarizes a completed run.
type Result struct {
	Grid     *board.Grid
	Placed   []string                       // names of the pieces that were placed
	Rejected map[string]error               // placement errors by piece name
	Overlays map[string]board.OverlayResult // overlay counts by stencil name
}

// Run places every piece of the scenario, prints the board, applies every
// stencil and prints the final board. A rejected piece is reported and
// skipped; only output and context errors end the run early.
func (a *App) Run(ctx context.Context) (*Result, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	res := &Result{
		Grid:     board.NewGrid(),
		Rejected: make(map[string]error),
		Overlays: make(map[string]board.OverlayResult),
	}

	for _, req := range a.scenario.Pieces {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := a.placePiece(ctx, res, req); err != nil {
			return nil, err
		}
	}

	if _, err := fmt.Fprint(a.outW, "\n--- Board with pieces placed ---\n"); err != nil {
		return nil, err
	}
	if err := render.Grid(a.outW, res.Grid); err != nil {
		return nil, err
	}

	for _, req := range a.scenario.Stencils {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := a.applyStencil(ctx, res, req); err != nil {
			return nil, err
		}
	}

	if _, err := fmt.Fprint(a.outW, "\n--- Final board with pieces and stencils ---\n"); err != nil {
		return nil, err
	}
	if err := render.Grid(a.outW, res.Grid); err != nil {
		return nil, err
	}

	a.logger.Info("Run finished.",
		"placed", len(res.Placed),
		"rejected", len(res.Rejected),
		"affected_cells", res.Grid.Count(board.Affected),
	)
	return res, nil
}

// placePiece validates and writes a single piece, printing the outcome.
func (a *App) placePiece(ctx context.Context, res *Result, req *config.PieceRequest) error {
	log := ctxlog.FromContext(ctxlog.With(ctx, "piece", req.Name))

	piece := req.Piece()
	if err := res.Grid.CanPlace(piece); err != nil {
		res.Rejected[req.Name] = err
		log.Warn("Piece rejected.", "origin", req.Origin.String(), "orientation", req.Orientation.Name(), "error", err, "source", req.Source)
		_, werr := fmt.Fprintf(a.outW, "ERROR: could not place piece %s (%s) at %s: %s.\n",
			req.Name, req.Orientation, req.Origin, rejectionReason(err))
		return werr
	}

	res.Grid.Place(piece)
	res.Placed = append(res.Placed, req.Name)
	log.Debug("Piece placed.", "origin", req.Origin.String(), "orientation", req.Orientation.Name())
	_, err := fmt.Fprintf(a.outW, "Piece %s (%s) placed at %s.\n", req.Name, req.Orientation, req.Origin)
	return err
}

// rejectionReason describes the offending cell of a placement error.
func rejectionReason(err error) string {
	var perr *board.PlacementError
	if errors.As(err, &perr) {
		return fmt.Sprintf("cell %d %s %s", perr.Step, perr.Cell, perr.Err)
	}
	return err.Error()
}

// applyStencil generates a stencil, prints it and overlays it on the grid.
func (a *App) applyStencil(ctx context.Context, res *Result, req *config.StencilRequest) error {
	log := ctxlog.FromContext(ctxlog.With(ctx, "stencil", req.Name))

	s, err := stencil.New(req.Shape, req.Size)
	if err != nil {
		// Scenarios are validated on load, so this only happens for
		// hand-built scenarios.
		return fmt.Errorf("stencil %q: %w", req.Name, err)
	}

	if _, err := fmt.Fprintf(a.outW, "\n--- Stencil %s (%dx%d) ---\n", s.Shape(), s.Size(), s.Size()); err != nil {
		return err
	}
	if err := render.Stencil(a.outW, s); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(a.outW, "Applying stencil %s %q at %s...\n", s.Shape(), req.Name, req.Origin); err != nil {
		return err
	}

	overlay := res.Grid.Overlay(s, req.Origin)
	res.Overlays[req.Name] = overlay
	log.Debug("Stencil applied.",
		"shape", string(s.Shape()),
		"origin", req.Origin.String(),
		"marked", overlay.Marked,
		"blocked", overlay.Blocked,
		"clipped", overlay.Clipped,
	)
	if overlay.Blocked > 0 {
		log.Info("Stencil partially blocked by pieces.", "blocked", overlay.Blocked)
	}

	_, err = fmt.Fprintf(a.outW, "  %d cells affected, %d blocked by pieces, %d outside the board.\n",
		overlay.Marked, overlay.Blocked, overlay.Clipped)
	return err
}
