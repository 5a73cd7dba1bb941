package asteroids

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Asteroid drifts across the toroidal playfield. Its outline is translated
// but never rotated.
type Asteroid struct {
	Position core.Vec2
	Velocity core.Vec2
	Tier     int

	local  core.Shape
	radius float64
}

// Update moves the asteroid and wraps it onto the w x h playfield.
func (a *Asteroid) Update(w, h float64) {
	a.Position = core.Wrap(a.Position.Add(a.Velocity), w, h)
}

// Shape returns the outline in world space (translation only).
func (a Asteroid) Shape() []core.Vec2 {
	return core.Translate(a.local, a.Position)
}

// LocalShape returns the outline in the asteroid's own frame.
func (a Asteroid) LocalShape() core.Shape {
	return a.local
}

// Center implements core.Body.
func (a Asteroid) Center() core.Vec2 { return a.Position }

// Radius implements core.Body.
func (a Asteroid) Radius() float64 { return a.radius }

// Edge is a side of the playfield asteroids enter from.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// AsteroidSpawner creates asteroids from a seeded RNG.
type AsteroidSpawner struct {
	rng     *rand.Rand
	cfg     config.AsteroidConfig
	screenW float64
	screenH float64
}

// NewAsteroidSpawner creates a spawner for a screenW x screenH playfield.
func NewAsteroidSpawner(seed int64, screenW, screenH float64, cfg config.AsteroidConfig) *AsteroidSpawner {
	return &AsteroidSpawner{
		rng:     rand.New(rand.NewSource(seed)),
		cfg:     cfg,
		screenW: screenW,
		screenH: screenH,
	}
}

// RadiusFor returns the collision radius of a tier.
func (s *AsteroidSpawner) RadiusFor(tier int) float64 {
	return float64(tier) * s.cfg.RadiusPerTier
}

// Initial returns the opening wave: InitialCount asteroids with tiers drawn
// uniformly from [MinTier, MaxTier].
func (s *AsteroidSpawner) Initial() []Asteroid {
	out := make([]Asteroid, 0, s.cfg.InitialCount)
	for i := 0; i < s.cfg.InitialCount; i++ {
		tier := s.cfg.MinTier + s.rng.Intn(s.cfg.MaxTier-s.cfg.MinTier+1)
		out = append(out, s.Spawn(tier))
	}
	return out
}

// Spawn creates an asteroid on a random playfield edge.
func (s *AsteroidSpawner) Spawn(tier int) Asteroid {
	a := s.SpawnAt(tier, core.Vec2{})
	a.Position = s.edgePosition(Edge(s.rng.Intn(4)))
	return a
}

// SpawnAt creates an asteroid at pos with a fresh outline and velocity.
func (s *AsteroidSpawner) SpawnAt(tier int, pos core.Vec2) Asteroid {
	r := s.RadiusFor(tier)
	return Asteroid{
		Position: core.Wrap(pos, s.screenW, s.screenH),
		Velocity: core.V(s.uniform(s.cfg.MaxSpeed), s.uniform(s.cfg.MaxSpeed)),
		Tier:     tier,
		local:    s.outline(r),
		radius:   r,
	}
}

// Split returns the fragments of a destroyed asteroid: SplitCount asteroids
// one tier smaller at the parent's position, or none for the smallest tier.
func (s *AsteroidSpawner) Split(parent Asteroid) []Asteroid {
	if parent.Tier <= 1 {
		return nil
	}
	out := make([]Asteroid, 0, s.cfg.SplitCount)
	for i := 0; i < s.cfg.SplitCount; i++ {
		out = append(out, s.SpawnAt(parent.Tier-1, parent.Position))
	}
	return out
}

// outline builds an irregular polygon around radius r: evenly spaced angles,
// each vertex pushed in or out by up to RadiusJitter.
func (s *AsteroidSpawner) outline(r float64) core.Shape {
	n := s.cfg.MinVertices + s.rng.Intn(s.cfg.MaxVertices-s.cfg.MinVertices+1)
	shape := make(core.Shape, n)
	for i := range shape {
		theta := 2 * math.Pi * float64(i) / float64(n)
		rr := r + s.uniform(s.cfg.RadiusJitter)
		shape[i] = core.V(rr*math.Cos(theta), rr*math.Sin(theta))
	}
	return shape
}

// edgePosition picks a uniform point along an edge, wrapped into the
// playfield (the right and bottom edges coincide with left and top).
func (s *AsteroidSpawner) edgePosition(e Edge) core.Vec2 {
	var p core.Vec2
	switch e {
	case EdgeLeft:
		p = core.V(0, s.rng.Float64()*s.screenH)
	case EdgeRight:
		p = core.V(s.screenW, s.rng.Float64()*s.screenH)
	case EdgeTop:
		p = core.V(s.rng.Float64()*s.screenW, 0)
	default:
		p = core.V(s.rng.Float64()*s.screenW, s.screenH)
	}
	return core.Wrap(p, s.screenW, s.screenH)
}

// uniform returns a value in [-bound, bound).
func (s *AsteroidSpawner) uniform(bound float64) float64 {
	return (s.rng.Float64()*2 - 1) * bound
}
