package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Projectile is a shot. It flies straight, is never wrapped, and expires
// after a fixed number of frames.
type Projectile struct {
	Position core.Vec2
	Velocity core.Vec2
	Life     int // Remaining frames

	radius float64
}

// NewProjectile creates a projectile with life frames to live.
func NewProjectile(pos, vel core.Vec2, life int, radius float64) Projectile {
	return Projectile{Position: pos, Velocity: vel, Life: life, radius: radius}
}

// Update moves the projectile and burns one frame of life.
func (p *Projectile) Update() {
	p.Position = p.Position.Add(p.Velocity)
	p.Life--
}

// Expired reports whether the projectile should be dropped.
func (p Projectile) Expired() bool {
	return p.Life <= 0
}

// Center implements core.Body.
func (p Projectile) Center() core.Vec2 { return p.Position }

// Radius implements core.Body. Shots collide with their own drawn radius.
func (p Projectile) Radius() float64 { return p.radius }

// pruneExpired returns the live projectiles in a new slice.
func pruneExpired(ps []Projectile) []Projectile {
	next := make([]Projectile, 0, len(ps))
	for _, p := range ps {
		if !p.Expired() {
			next = append(next, p)
		}
	}
	return next
}
