package app

import (
	"io"
	"log/slog"

	"github.com/vk/classnamecheck/internal/checker"
	"github.com/vk/classnamecheck/internal/report"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	config  *Config
	logger  *slog.Logger
	checker *checker.Checker
}

// New is the constructor for the main application. Diagnostics are written
// to outW and structured logs to logW.
func New(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	reporter := report.New(outW, cfg.Color)

	return &App{
		config:  cfg,
		logger:  logger,
		checker: checker.New(reporter, cfg.Replace),
	}
}
