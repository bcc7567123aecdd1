package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/fleetgrid/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("fleetgrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
fleetgrid - places a fleet on a 10x10 board and stamps area-of-effect stencils on it.

Usage:
  fleetgrid [options] [SCENARIO_PATH]

Arguments:
  SCENARIO_PATH
    Path to a .hcl or .yaml file, or a directory containing .hcl files.
    Without it the built-in scenario runs.

Options:
`)
		flagSet.PrintDefaults()
	}

	scenarioFlag := flagSet.String("scenario", "", "Path to the scenario file or directory.")
	sFlag := flagSet.String("s", "", "Path to the scenario file or directory (shorthand).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := *scenarioFlag
	if path == "" {
		path = *sFlag
	}
	switch {
	case path != "" && flagSet.NArg() > 0:
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q: scenario path already set by flag", flagSet.Arg(0))}
	case flagSet.NArg() > 1:
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected at most one scenario path, got %d", flagSet.NArg())}
	case flagSet.NArg() == 1:
		path = flagSet.Arg(0)
	}
	slog.Debug("Scenario path determined.", "path", path)

	cfg, err := app.NewConfig(app.Config{
		ScenarioPath: path,
		LogFormat:    strings.ToLower(*logFormatFlag),
		LogLevel:     strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
