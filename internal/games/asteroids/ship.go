package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Ship is the player. It only rotates; it never moves or dies on its own.
type Ship struct {
	Position core.Vec2
	Heading  float64 // Degrees in [0, 360)

	local  core.Shape
	radius float64
	shot   config.ProjectileConfig
}

// NewShip places a ship at pos with heading 0.
func NewShip(pos core.Vec2, cfg config.ShipConfig, shot config.ProjectileConfig) *Ship {
	return &Ship{
		Position: pos,
		local:    cfg.LocalShape(),
		radius:   cfg.CollisionRadius,
		shot:     shot,
	}
}

// Rotate turns the ship by delta degrees, keeping the heading in [0, 360).
func (s *Ship) Rotate(delta float64) {
	s.Heading = core.WrapF(s.Heading+delta, 360)
}

// Nose returns the world position of the first shape vertex.
func (s *Ship) Nose() core.Vec2 {
	return s.rotatedNose().Add(s.Position)
}

// NoseDirection returns the unit vector from the ship center to its nose.
func (s *Ship) NoseDirection() core.Vec2 {
	return s.rotatedNose().Normalize()
}

func (s *Ship) rotatedNose() core.Vec2 {
	return core.RotationMatrix(s.Heading).Apply(s.local[0])
}

// Fire returns a new projectile leaving the nose. The launch velocity is
// normalized against the reversed nose vector, scaled to the shot speed,
// then reversed again and scaled by speed_scale, so with the default tuning
// shots travel at 12 units per frame along the nose.
func (s *Ship) Fire() Projectile {
	v := s.rotatedNose().Neg().Normalize().Scale(s.shot.Speed)
	return NewProjectile(s.Nose(), v.Neg().Scale(s.shot.SpeedScale), s.shot.Life, s.shot.Radius)
}

// Shape returns the ship outline in world space.
func (s *Ship) Shape() []core.Vec2 {
	return core.ToWorld(s.local, s.Heading, s.Position)
}

// LocalShape returns the ship outline in its own frame.
func (s *Ship) LocalShape() core.Shape {
	return s.local
}

// Center implements core.Body.
func (s *Ship) Center() core.Vec2 { return s.Position }

// Radius implements core.Body.
func (s *Ship) Radius() float64 { return s.radius }
