package asteroids

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func newTestShip() *Ship {
	cfg := config.DefaultAsteroidsConfig()
	return NewShip(core.V(400, 300), cfg.Ship, cfg.Projectile)
}

func TestShipRotate(t *testing.T) {
	tests := []struct {
		name     string
		deltas   []float64
		expected float64
	}{
		{"single left", []float64{10}, 10},
		{"wraps below zero", []float64{-10}, 350},
		{"wraps past 360", []float64{350, 20}, 10},
		{"full turn", []float64{180, 180}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestShip()
			for _, d := range tc.deltas {
				s.Rotate(d)
			}
			if math.Abs(s.Heading-tc.expected) > 1e-9 {
				t.Errorf("Heading = %f, expected %f", s.Heading, tc.expected)
			}
		})
	}
}

func TestShipFireAtHeadingZero(t *testing.T) {
	s := newTestShip()
	p := s.Fire()

	if p.Position != core.V(400, 280) {
		t.Errorf("spawn position = %v, expected nose (400,280)", p.Position)
	}
	if p.Velocity.X != 0 || p.Velocity.Y != -12 {
		t.Errorf("velocity = %v, expected (0,-12)", p.Velocity)
	}
	if p.Life != 90 || p.Radius() != 2 {
		t.Errorf("life %d radius %f, expected 90 and 2", p.Life, p.Radius())
	}
}

func TestShipFireSpeedAndDirection(t *testing.T) {
	s := newTestShip()
	for h := 0; h < 36; h++ {
		p := s.Fire()

		if speed := p.Velocity.Len(); math.Abs(speed-12) > 1e-9 {
			t.Fatalf("heading %f: speed = %f, expected 12 (not 8)", s.Heading, speed)
		}
		dir := p.Velocity.Normalize()
		nose := s.NoseDirection()
		if math.Abs(dir.X-nose.X) > 1e-9 || math.Abs(dir.Y-nose.Y) > 1e-9 {
			t.Fatalf("heading %f: direction %v, expected along the nose %v", s.Heading, dir, nose)
		}
		if p.Position.Dist(s.Nose()) > 1e-9 {
			t.Fatalf("heading %f: spawn %v, expected nose %v", s.Heading, p.Position, s.Nose())
		}
		s.Rotate(10)
	}
}

func TestShipFireHasNoSideEffect(t *testing.T) {
	s := newTestShip()
	s.Rotate(30)
	before := *s
	s.Fire()
	if s.Position != before.Position || s.Heading != before.Heading {
		t.Error("Fire should not change the ship")
	}
}

func TestShipShape(t *testing.T) {
	s := newTestShip()
	s.Rotate(90)
	pts := s.Shape()

	// Rotating (0,-20) by +90 in screen coordinates points the nose right.
	if math.Abs(pts[0].X-420) > 1e-9 || math.Abs(pts[0].Y-300) > 1e-9 {
		t.Errorf("nose at heading 90 = %v, expected (420,300)", pts[0])
	}
	if len(pts) != 3 {
		t.Errorf("Shape() has %d points, expected 3", len(pts))
	}
}
