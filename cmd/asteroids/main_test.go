package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level   string
		want    log.Level
		wantErr bool
	}{
		{"debug", log.DebugLevel, false},
		{"info", log.InfoLevel, false},
		{"warn", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"loud", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, err := newLogger(&bytes.Buffer{}, tt.level)
			if tt.wantErr {
				if err == nil {
					t.Errorf("newLogger(%q) expected error", tt.level)
				}
				return
			}
			if err != nil {
				t.Fatalf("newLogger(%q) error: %v", tt.level, err)
			}
			if logger.GetLevel() != tt.want {
				t.Errorf("level = %v, expected %v", logger.GetLevel(), tt.want)
			}
		})
	}
}

func TestNewLoggerWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "info")
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("game over", "score", 40)

	out := buf.String()
	for _, want := range []string{"asteroids", "game over", "score=40"} {
		if !strings.Contains(out, want) {
			t.Errorf("log line %q missing %q", out, want)
		}
	}
}

func TestRenderSummary(t *testing.T) {
	rep := asteroids.SimReport{
		State:  core.GameState{Score: 30, GameOver: true, Frame: 120},
		Frames: 120,
		Hits:   3,
		Shots:  9,
	}
	out := renderSummary(rep, 7)
	for _, want := range []string{"Simulation", "Seed", "7", "120", "Score", "30", "game over"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestConfigCommandPrintsDefaults(t *testing.T) {
	var buf bytes.Buffer
	configCmd.SetOut(&buf)
	if err := configCmd.RunE(configCmd, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "split_count") {
		t.Errorf("config output missing asteroid settings:\n%s", buf.String())
	}
}
