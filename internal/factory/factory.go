package factory

import (
	"io"
	"log/slog"

	"github.com/mcoot/connectn/internal/dependencies/clock"
	"github.com/mcoot/connectn/internal/dependencies/random"
	"github.com/mcoot/connectn/internal/services/match"
)

// App contains all wired application components
type App struct {
	// External dependencies
	Clock  clock.Clock
	Random random.Random
	Logger *slog.Logger

	// Services
	MatchController *match.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	return newWithDependencies(clock.New(), random.New(), logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	return &App{
		Clock:           clk,
		Random:          rnd,
		Logger:          logger,
		MatchController: match.NewController(clk, rnd, logger),
	}
}
