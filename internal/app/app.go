package app

import (
	"io"
	"log/slog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	inR    io.Reader
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// New is the constructor for the main application. Prompts and reports go to
// outW; structured logs go to logW so interactive output stays clean.
func New(inR io.Reader, outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)

	return &App{
		inR:    inR,
		outW:   outW,
		logger: logger,
		config: cfg,
	}
}
