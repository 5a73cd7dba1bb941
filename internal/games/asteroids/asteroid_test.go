package asteroids

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func newTestSpawner(seed int64) *AsteroidSpawner {
	return NewAsteroidSpawner(seed, 800, 600, config.DefaultAsteroidsConfig().Asteroids)
}

func TestAsteroidRadiusIncreasesWithTier(t *testing.T) {
	s := newTestSpawner(1)
	prev := 0.0
	for tier := 1; tier <= 3; tier++ {
		r := s.Spawn(tier).Radius()
		if r != float64(tier)*10 {
			t.Errorf("tier %d radius = %f, expected %d", tier, r, tier*10)
		}
		if r <= prev {
			t.Errorf("tier %d radius %f not larger than tier %d", tier, r, tier-1)
		}
		prev = r
	}
}

func TestAsteroidOutline(t *testing.T) {
	s := newTestSpawner(2)
	for i := 0; i < 200; i++ {
		tier := 1 + i%3
		a := s.Spawn(tier)
		shape := a.LocalShape()
		n := len(shape)
		if n < 8 || n > 12 {
			t.Fatalf("vertex count = %d, expected [8,12]", n)
		}
		r := a.Radius()
		for j, p := range shape {
			d := p.Len()
			if d < r-5-1e-9 || d > r+5+1e-9 {
				t.Fatalf("vertex %d at distance %f, expected [%f,%f]", j, d, r-5, r+5)
			}
			want := 2 * math.Pi * float64(j) / float64(n)
			got := math.Atan2(p.Y, p.X)
			if got < 0 {
				got += 2 * math.Pi
			}
			if math.Abs(got-want) > 1e-9 && math.Abs(got-want-2*math.Pi) > 1e-9 {
				t.Fatalf("vertex %d at angle %f, expected %f", j, got, want)
			}
		}
	}
}

func TestAsteroidOutlinesAreNotShared(t *testing.T) {
	s := newTestSpawner(3)
	a, b := s.Spawn(2), s.Spawn(2)
	same := len(a.LocalShape()) == len(b.LocalShape())
	if same {
		for i := range a.LocalShape() {
			if a.LocalShape()[i] != b.LocalShape()[i] {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("two asteroids share one outline")
	}
}

func TestAsteroidSpawnsOnEdge(t *testing.T) {
	s := newTestSpawner(4)
	for i := 0; i < 500; i++ {
		a := s.Spawn(2)
		p := a.Position
		if p.X != 0 && p.Y != 0 {
			t.Fatalf("spawn %v is not on an edge", p)
		}
		if p.X < 0 || p.X >= 800 || p.Y < 0 || p.Y >= 600 {
			t.Fatalf("spawn %v outside the playfield", p)
		}
		if math.Abs(a.Velocity.X) > 1 || math.Abs(a.Velocity.Y) > 1 {
			t.Fatalf("velocity %v outside [-1,1]", a.Velocity)
		}
	}
}

func TestAsteroidUpdateWrapLaw(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	s := newTestSpawner(5)
	for i := 0; i < 5000; i++ {
		a := s.Spawn(1)
		a.Position = core.V(rng.Float64()*800, rng.Float64()*600)
		a.Velocity = core.V(rng.Float64()*4000-2000, rng.Float64()*4000-2000)
		a.Update(800, 600)
		if a.Position.X < 0 || a.Position.X >= 800 || a.Position.Y < 0 || a.Position.Y >= 600 {
			t.Fatalf("Update() left asteroid at %v", a.Position)
		}
	}
}

func TestAsteroidShapeIsTranslationOnly(t *testing.T) {
	s := newTestSpawner(6)
	a := s.SpawnAt(2, core.V(100, 200))
	world := a.Shape()
	for i, p := range a.LocalShape() {
		if world[i] != p.Add(core.V(100, 200)) {
			t.Fatalf("Shape()[%d] = %v, expected %v", i, world[i], p.Add(core.V(100, 200)))
		}
	}
}

func TestSplitTierOneHasNoChildren(t *testing.T) {
	s := newTestSpawner(7)
	if kids := s.Split(s.Spawn(1)); len(kids) != 0 {
		t.Errorf("Split(tier 1) = %d children, expected 0", len(kids))
	}
}

func TestInitialWave(t *testing.T) {
	s := newTestSpawner(8)
	wave := s.Initial()
	if len(wave) != 5 {
		t.Fatalf("Initial() = %d asteroids, expected 5", len(wave))
	}
	seen := map[int]bool{}
	for i := 0; i < 50; i++ {
		for _, a := range s.Initial() {
			seen[a.Tier] = true
		}
	}
	if !seen[2] || !seen[3] || seen[1] {
		t.Errorf("initial tiers seen = %v, expected exactly {2,3}", seen)
	}
}
