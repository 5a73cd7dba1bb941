package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultAsteroidsConfig()) {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultAsteroidsConfig())
	}
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultAsteroidsConfig().Validate(); err != nil {
		t.Errorf("DefaultAsteroidsConfig().Validate() = %v, expected nil", err)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("projectile:\n  life: 30\nscoring:\n  points_per_hit: 50\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Projectile.Life != 30 {
		t.Errorf("Projectile.Life = %d, expected 30", cfg.Projectile.Life)
	}
	if cfg.Scoring.PointsPerHit != 50 {
		t.Errorf("Scoring.PointsPerHit = %d, expected 50", cfg.Scoring.PointsPerHit)
	}
	// Untouched keys keep their defaults.
	if cfg.Projectile.Speed != 8 || cfg.Screen.Width != 800 || len(cfg.Ship.Shape) != 3 {
		t.Errorf("untouched keys lost their defaults: %+v", cfg)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() of a missing custom file should fail")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, expected to wrap os.ErrNotExist", err)
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := []byte("asteroids:\n  min_tier: 3\n  max_tier: 1\nprojectile:\n  life: 0\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Load() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestLoadSearchPathsSkipBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.yaml")
	good := filepath.Join(dir, "good.yaml")
	if err := os.WriteFile(broken, []byte("screen: [not, a, map"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	if err := os.WriteFile(good, []byte("asteroids:\n  initial_count: 9\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := load("", []string{filepath.Join(dir, "missing.yaml"), broken, good})
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}
	if cfg.Asteroids.InitialCount != 9 {
		t.Errorf("InitialCount = %d, expected 9 from the first readable file", cfg.Asteroids.InitialCount)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	cfg, err := load("", []string{filepath.Join(t.TempDir(), "missing.yaml")})
	if err != nil {
		t.Fatalf("load() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultAsteroidsConfig()) {
		t.Errorf("load() = %+v, expected defaults", cfg)
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultAsteroidsConfig()
	cfg.Screen.FPS = 0
	cfg.Ship.Shape = cfg.Ship.Shape[:2]
	cfg.Asteroids.RadiusJitter = 20

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, expected errors")
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("Validate() error %T does not join multiple errors", err)
	}
	if n := len(joined.Unwrap()); n != 3 {
		t.Errorf("Validate() reported %d problems, expected 3: %v", n, err)
	}
}

func TestRuntime(t *testing.T) {
	rc := DefaultAsteroidsConfig().Runtime(42)
	if rc.ScreenW != 800 || rc.ScreenH != 600 || rc.TickRate != 60 || rc.Seed != 42 {
		t.Errorf("Runtime(42) = %+v, expected 800x600@60 seed 42", rc)
	}
}

func TestLocalShapeNoseFirst(t *testing.T) {
	s := DefaultAsteroidsConfig().Ship.LocalShape()
	if len(s) != 3 || s[0].X != 0 || s[0].Y != -20 {
		t.Errorf("LocalShape() = %v, expected nose (0,-20) first", s)
	}
}
