package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vk/classnamecheck/internal/app"
	"github.com/vk/classnamecheck/internal/report"
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
// When no ROOT argument is given the working directory is used.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("classnamecheck", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
classnamecheck - Verify that default-exported TypeScript classes match their file names.

Usage:
  classnamecheck [options] [ROOT]

Arguments:
  ROOT
    Directory to scan recursively for .ts files. Defaults to the current directory.

Options:
`)
		flagSet.PrintDefaults()
	}

	replaceFlag := flagSet.Bool("replace", true, "Rewrite mismatching class names to the file name. Use -replace=false to only report.")
	colorFlag := flagSet.String("color", string(report.ColorAlways), "Color diagnostics. Options: 'always', 'never', 'auto'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "at most one ROOT argument may be given"}
	}

	root := flagSet.Arg(0)
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, false, fmt.Errorf("failed to determine working directory: %w", err)
		}
		root = wd
	}
	slog.Debug("Root determined.", "root", root)

	colorMode, err := report.ParseColorMode(*colorFlag)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		Root:      root,
		Replace:   *replaceFlag,
		Color:     colorMode,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
