package tui

import (
	"log/slog"

	"github.com/mechkit/fourbar/internal/infra/config"
)

// Deps carries everything the TUI needs from the outside; the model never
// reaches into globals.
type Deps struct {
	Config config.Config
	Logger *slog.Logger

	// Preset optionally names the configuration to start from.
	Preset string

	Debug bool
}
