// Package app provides the core application initialization and lifecycle management.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/law-makers/filters/internal/config"
	"github.com/law-makers/filters/internal/filters"
)

// Application holds all application dependencies and manages their lifecycle.
//
// It is created once at startup and shared across all CLI commands.
type Application struct {
	Config    *config.Config
	Logger    *zerolog.Logger
	Filters   *filters.Registry
	startTime time.Time
}

// New creates and initializes a new Application.
//
// It configures logging from cfg and builds the filter registry. The filter
// named in cfg must be registered.
func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	// Treat "info" as non-verbose (don't display info logs unless -v is used)
	logLevel := zerolog.ErrorLevel
	switch cfg.LogLevel {
	case "debug":
		logLevel = zerolog.DebugLevel
	case "warn":
		logLevel = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(logLevel)

	var logWriter io.Writer
	if cfg.JSONLog {
		logWriter = os.Stderr
	} else {
		logWriter = zerolog.ConsoleWriter{Out: os.Stderr}
	}

	logger := log.Output(logWriter).With().Timestamp().Logger()
	log.Logger = logger

	logger.Debug().
		Str("level", cfg.LogLevel).
		Bool("json", cfg.JSONLog).
		Msg("Logger initialized")

	reg := filters.Default()
	if _, err := reg.Lookup(cfg.Filter); err != nil {
		return nil, err
	}
	logger.Debug().
		Strs("filters", reg.Names()).
		Str("selected", cfg.Filter).
		Msg("Filter registry initialized")

	return &Application{
		Config:    cfg,
		Logger:    &logger,
		Filters:   reg,
		startTime: time.Now(),
	}, nil
}

// Apply runs the configured filter over lines.
func (a *Application) Apply(lines []string) (map[string]string, error) {
	out, err := a.Filters.Apply(a.Config.Filter, lines)
	if err != nil {
		return nil, err
	}
	a.Logger.Debug().
		Str("filter", a.Config.Filter).
		Int("lines", len(lines)).
		Int("entries", len(out)).
		Msg("Filter applied")
	return out, nil
}

// Close releases application resources.
func (a *Application) Close(ctx context.Context) error {
	a.Logger.Debug().Dur("uptime", a.Uptime()).Msg("Application shutdown complete")
	return nil
}

// Uptime returns how long the application has been running.
func (a *Application) Uptime() time.Duration {
	return time.Since(a.startTime)
}
