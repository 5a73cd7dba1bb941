package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Autopilot produces input frames for a game without a human: it turns the
// nose toward the nearest asteroid and fires when roughly aligned.
// It is deterministic, so seeded runs are reproducible.
type Autopilot struct {
	Cooldown int // Minimum frames between shots

	sinceShot int
}

// NewAutopilot creates an autopilot that fires at most every cooldown frames.
func NewAutopilot(cooldown int) *Autopilot {
	cooldown = max(cooldown, 1)
	return &Autopilot{Cooldown: cooldown, sinceShot: cooldown}
}

// Next returns the input for the coming frame.
func (ap *Autopilot) Next(g *Game) core.InputFrame {
	if g.Phase() == PhaseGameOver {
		return core.NewInputFrame()
	}
	ap.sinceShot++

	target, ok := nearestAsteroid(g.Ship().Position, g.Asteroids())
	if !ok {
		return core.NewInputFrame()
	}

	diff := headingError(g.Ship(), target.Position)
	step := g.RotateStep()
	action := core.ActionNone
	switch {
	case diff > step/2:
		action = core.ActionRotateLeft
	case diff < -step/2:
		action = core.ActionRotateRight
	case ap.sinceShot >= ap.Cooldown:
		action = core.ActionFire
		ap.sinceShot = 0
	}
	return core.FrameOf(action)
}

// nearestAsteroid returns the asteroid closest to p.
func nearestAsteroid(p core.Vec2, as []Asteroid) (Asteroid, bool) {
	best, bestDist := -1, math.Inf(1)
	for i, a := range as {
		if d := a.Position.Dist(p); d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Asteroid{}, false
	}
	return as[best], true
}

// headingError returns the signed rotation in degrees, in (-180, 180], that
// would point the ship's nose at target. Positive values mean a left turn.
func headingError(s *Ship, target core.Vec2) float64 {
	d := target.Sub(s.Position)
	nose := s.NoseDirection()
	want := (math.Atan2(d.Y, d.X) - math.Atan2(nose.Y, nose.X)) * 180 / math.Pi
	diff := core.WrapF(want, 360)
	if diff > 180 {
		diff -= 360
	}
	return diff
}

// SimReport summarizes a headless run.
type SimReport struct {
	State  core.GameState
	Frames int
	Hits   int
	Shots  int
}

// Simulate steps g under ap for at most frames frames, stopping early when
// the game ends. g must already be Reset.
func Simulate(g *Game, ap *Autopilot, frames int) SimReport {
	var rep SimReport
	for rep.Frames < frames && g.Phase() != PhaseGameOver {
		res := g.Step(ap.Next(g))
		rep.Frames++
		rep.Hits += res.Hits
		rep.Shots += res.Fired
	}
	rep.State = g.State()
	return rep
}
