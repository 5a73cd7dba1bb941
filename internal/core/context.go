package core

import (
	"io"

	"github.com/charmbracelet/log"
)

// GameContext is built once at startup and handed by reference to the game
// and to whichever host runs it. It replaces process-wide window and clock
// singletons.
type GameContext struct {
	Config RuntimeConfig
	Logger *log.Logger
}

// NewGameContext returns a context for cfg. A nil logger discards output.
func NewGameContext(cfg RuntimeConfig, logger *log.Logger) *GameContext {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &GameContext{Config: cfg, Logger: logger}
}
