package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the built-in tuning.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Screen: ScreenConfig{
			Width:  800,
			Height: 600,
			FPS:    60,
			Title:  "Asteroids",
		},
		Ship: ShipConfig{
			RotateStep:      10,
			CollisionRadius: 15,
			Shape: []Point{
				{X: 0, Y: -20},
				{X: -15, Y: 10},
				{X: 15, Y: 10},
			},
		},
		Projectile: ProjectileConfig{
			Speed:      8,
			SpeedScale: 1.5,
			Life:       90,
			Radius:     2,
		},
		Asteroids: AsteroidConfig{
			InitialCount:  5,
			MinTier:       2,
			MaxTier:       3,
			RadiusPerTier: 10,
			RadiusJitter:  5,
			MinVertices:   8,
			MaxVertices:   12,
			MaxSpeed:      1,
			SplitCount:    2,
		},
		Scoring: ScoringConfig{
			PointsPerHit: 100,
		},
	}
}

// DefaultYAML returns the embedded default file, e.g. for `asteroids config`.
func DefaultYAML() []byte {
	return defaultAsteroidsYAML
}
