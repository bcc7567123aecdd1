package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/specialistvlad/fleetgrid/internal/config"
	"github.com/specialistvlad/fleetgrid/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	runID    string
	scenario *config.Scenario
}

// NewApp is the constructor for the main application. Board output goes to
// outW and logs to logW. When cfg.ScenarioPath is empty the built-in scenario
// is used and loader may be nil.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	runID := uuid.NewString()
	logger := newLogger(cfg, logW).With("run_id", runID)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var scenario *config.Scenario
	if cfg.ScenarioPath == "" {
		scenario = config.Default()
		logger.Debug("No scenario path given, using the built-in scenario.")
	} else {
		if loader == nil {
			return nil, fmt.Errorf("no loader for scenario %s", cfg.ScenarioPath)
		}
		loaded, err := loader.Load(ctx, cfg.ScenarioPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load scenario: %w", err)
		}
		scenario = loaded
	}
	logger.Info("Scenario loaded.", "pieces", len(scenario.Pieces), "stencils", len(scenario.Stencils))

	return &App{
		outW:     outW,
		logger:   logger,
		runID:    runID,
		scenario: scenario,
	}, nil
}

// Scenario returns the scenario the app will run. This is primarily for testing.
func (a *App) Scenario() *config.Scenario {
	return a.scenario
}

// RunID returns the identifier attached to every log record of this app.
func (a *App) RunID() string {
	return a.runID
}
