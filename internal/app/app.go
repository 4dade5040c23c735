package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/vk/buildstamp/internal/hclconf"
)

// SettingsLoader loads an optional settings file. The concrete implementation
// lives in the hclconf package; the indirection keeps the pipeline testable.
type SettingsLoader interface {
	Load(ctx context.Context, path string) (*hclconf.Settings, error)
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	settings SettingsLoader
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger.
func NewApp(outW io.Writer, config *Config, settings SettingsLoader) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:     outW,
		logger:   logger,
		config:   config,
		settings: settings,
	}
}
