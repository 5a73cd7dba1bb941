package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

// session bundles what every subcommand needs to run a game.
type session struct {
	ctx  *core.GameContext
	game *asteroids.Game

	logFile *os.File
}

// newSession loads the tuning file, applies the global flags and builds the
// logger. Logs go to --log-file when set, otherwise to fallback.
func newSession(fallback io.Writer) (*session, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	s := &session{}
	out := fallback
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		s.logFile = f
		out = f
	}

	logger, err := newLogger(out, flagLogLevel)
	if err != nil {
		s.Close()
		return nil, err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rc := cfg.Runtime(seed)
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}

	s.ctx = core.NewGameContext(rc, logger)
	s.game = asteroids.New(s.ctx, cfg)
	logger.Debug("session ready", "seed", seed, "fps", rc.TickRate, "config", flagConfig)
	return s, nil
}

// Close releases the log file, if any.
func (s *session) Close() {
	if s.logFile != nil {
		//nolint:errcheck // Nothing useful to do on a failed close at exit
		s.logFile.Close()
	}
}

// newLogger creates the application logger at the named level.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "asteroids",
		Level:           lvl,
	}), nil
}
