// Package config provides YAML-based tuning for the asteroids game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// AsteroidsConfig contains all tunables for the game.
type AsteroidsConfig struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Ship       ShipConfig       `yaml:"ship"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Asteroids  AsteroidConfig   `yaml:"asteroids"`
	Scoring    ScoringConfig    `yaml:"scoring"`
}

// ScreenConfig is the static playfield and frame rate.
type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	FPS    int    `yaml:"fps"`
	Title  string `yaml:"title"`
}

// Point is a local-frame vertex.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ShipConfig defines the player ship. The first shape vertex is the nose.
type ShipConfig struct {
	RotateStep      float64 `yaml:"rotate_step"`
	CollisionRadius float64 `yaml:"collision_radius"`
	Shape           []Point `yaml:"shape"`
}

// ProjectileConfig defines shots fired by the ship.
type ProjectileConfig struct {
	Speed      float64 `yaml:"speed"`       // Normalized launch speed
	SpeedScale float64 `yaml:"speed_scale"` // Applied on top of speed
	Life       int     `yaml:"life"`        // Frames before expiry
	Radius     float64 `yaml:"radius"`
}

// AsteroidConfig defines asteroid generation.
type AsteroidConfig struct {
	InitialCount  int     `yaml:"initial_count"`
	MinTier       int     `yaml:"min_tier"`
	MaxTier       int     `yaml:"max_tier"`
	RadiusPerTier float64 `yaml:"radius_per_tier"`
	RadiusJitter  float64 `yaml:"radius_jitter"`
	MinVertices   int     `yaml:"min_vertices"`
	MaxVertices   int     `yaml:"max_vertices"`
	MaxSpeed      float64 `yaml:"max_speed"` // Per-axis bound, units per frame
	SplitCount    int     `yaml:"split_count"`
}

// ScoringConfig defines points.
type ScoringConfig struct {
	PointsPerHit int `yaml:"points_per_hit"`
}

// LocalShape converts the configured ship outline to a core.Shape.
func (c ShipConfig) LocalShape() core.Shape {
	s := make(core.Shape, len(c.Shape))
	for i, p := range c.Shape {
		s[i] = core.V(p.X, p.Y)
	}
	return s
}

// Runtime returns the core runtime config for this file with the given seed.
func (c AsteroidsConfig) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  c.Screen.Width,
		ScreenH:  c.Screen.Height,
		TickRate: c.Screen.FPS,
		Seed:     seed,
	}
}

// Validate reports every out-of-range value at once.
func (c AsteroidsConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0, "screen size %dx%d must be positive", c.Screen.Width, c.Screen.Height)
	check(c.Screen.FPS > 0, "fps %d must be positive", c.Screen.FPS)

	check(len(c.Ship.Shape) >= 3, "ship shape needs at least 3 vertices, got %d", len(c.Ship.Shape))
	if len(c.Ship.Shape) > 0 {
		nose := c.Ship.Shape[0]
		check(nose.X != 0 || nose.Y != 0, "ship nose vertex must not be the origin")
	}
	check(c.Ship.CollisionRadius > 0, "ship collision_radius %g must be positive", c.Ship.CollisionRadius)

	check(c.Projectile.Speed > 0, "projectile speed %g must be positive", c.Projectile.Speed)
	check(c.Projectile.SpeedScale > 0, "projectile speed_scale %g must be positive", c.Projectile.SpeedScale)
	check(c.Projectile.Life > 0, "projectile life %d must be positive", c.Projectile.Life)
	check(c.Projectile.Radius > 0, "projectile radius %g must be positive", c.Projectile.Radius)

	a := c.Asteroids
	check(a.InitialCount >= 0, "asteroids initial_count %d must not be negative", a.InitialCount)
	check(a.MinTier >= 1 && a.MinTier <= a.MaxTier, "asteroid tiers [%d, %d] must satisfy 1 <= min <= max", a.MinTier, a.MaxTier)
	check(a.RadiusPerTier > 0, "asteroids radius_per_tier %g must be positive", a.RadiusPerTier)
	check(a.RadiusJitter >= 0 && a.RadiusJitter < a.RadiusPerTier, "asteroids radius_jitter %g must be in [0, radius_per_tier)", a.RadiusJitter)
	check(a.MinVertices >= 3 && a.MinVertices <= a.MaxVertices, "asteroid vertices [%d, %d] must satisfy 3 <= min <= max", a.MinVertices, a.MaxVertices)
	check(a.MaxSpeed >= 0, "asteroids max_speed %g must not be negative", a.MaxSpeed)
	check(a.SplitCount >= 0, "asteroids split_count %d must not be negative", a.SplitCount)

	check(c.Scoring.PointsPerHit >= 0, "scoring points_per_hit %d must not be negative", c.Scoring.PointsPerHit)

	return errors.Join(errs...)
}
