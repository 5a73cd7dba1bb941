// Package asteroids implements the asteroids arcade game.
// A rotating ship shoots drifting asteroids on a wrapped playfield; large
// asteroids split when hit and touching any asteroid ends the game.
package asteroids

import (
	"fmt"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Phase is the session state. GameOver is terminal.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	if p == PhaseGameOver {
		return "GameOver"
	}
	return "Playing"
}

// HUD layout in world units.
const (
	scoreTextSize    = 36
	gameOverTextSize = 72
	gameOverOffsetX  = 150
	gameOverOffsetY  = 36
)

// Game implements the asteroids game logic.
type Game struct {
	ctx *core.GameContext
	cfg config.AsteroidsConfig

	runtime core.RuntimeConfig
	screenW float64
	screenH float64

	spawner     *AsteroidSpawner
	ship        *Ship
	asteroids   []Asteroid
	projectiles []Projectile
	score       int
	phase       Phase
	frame       uint64
}

var _ core.Game = (*Game)(nil)

// New creates a game bound to ctx. Call Reset before the first Step.
func New(ctx *core.GameContext, cfg config.AsteroidsConfig) *Game {
	return &Game{ctx: ctx, cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "asteroids"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.cfg.Screen.Title != "" {
		return g.cfg.Screen.Title
	}
	return "Asteroids"
}

// Reset starts a new session: ship centered with heading 0 and a fresh
// opening wave of asteroids.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.screenW = float64(rc.ScreenW)
	g.screenH = float64(rc.ScreenH)

	g.spawner = NewAsteroidSpawner(rc.Seed, g.screenW, g.screenH, g.cfg.Asteroids)
	g.ship = NewShip(core.V(float64(rc.ScreenW/2), float64(rc.ScreenH/2)), g.cfg.Ship, g.cfg.Projectile)
	g.asteroids = g.spawner.Initial()
	g.projectiles = nil
	g.score = 0
	g.phase = PhasePlaying
	g.frame = 0

	g.ctx.Logger.Debug("new game",
		"seed", rc.Seed,
		"asteroids", len(g.asteroids),
		"width", rc.ScreenW,
		"height", rc.ScreenH,
	)
}

// Step advances the game by one frame. Once the game is over the state is
// frozen and Step only reports it.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.phase == PhaseGameOver {
		return core.StepResult{State: g.State()}
	}
	g.frame++

	fired := g.applyInput(in)

	// Shots that ran out last frame go before anything moves.
	g.projectiles = pruneExpired(g.projectiles)

	for i := range g.projectiles {
		g.projectiles[i].Update()
	}
	for i := range g.asteroids {
		g.asteroids[i].Update(g.screenW, g.screenH)
	}

	hits := g.resolveHits()

	if g.shipHit() {
		g.phase = PhaseGameOver
		g.ctx.Logger.Info("game over", "score", g.score, "frame", g.frame)
	}

	return core.StepResult{State: g.State(), Hits: hits, Fired: fired}
}

// applyInput handles the frame's key presses in order and returns the number
// of shots fired.
func (g *Game) applyInput(in core.InputFrame) int {
	fired := 0
	for _, a := range in.Actions() {
		switch a {
		case core.ActionRotateLeft:
			g.ship.Rotate(g.cfg.Ship.RotateStep)
		case core.ActionRotateRight:
			g.ship.Rotate(-g.cfg.Ship.RotateStep)
		case core.ActionFire:
			g.projectiles = append(g.projectiles, g.ship.Fire())
			fired++
		}
	}
	return fired
}

// resolveHits tests every projectile against the live asteroids. A projectile
// hits at most one asteroid per frame. Hit asteroids and spent projectiles
// are marked and compacted afterwards; fragments join the live set at once,
// so later projectiles in the same frame can hit them.
func (g *Game) resolveHits() int {
	hits := 0
	destroyed := make([]bool, len(g.asteroids))
	survivors := make([]Projectile, 0, len(g.projectiles))

	for _, p := range g.projectiles {
		hit := false
		for i := 0; i < len(g.asteroids); i++ {
			if destroyed[i] || !core.Overlaps(p, g.asteroids[i]) {
				continue
			}
			a := g.asteroids[i]
			destroyed[i] = true

			children := g.spawner.Split(a)
			g.asteroids = append(g.asteroids, children...)
			destroyed = append(destroyed, make([]bool, len(children))...)

			g.score += g.cfg.Scoring.PointsPerHit
			hits++
			hit = true
			g.ctx.Logger.Debug("asteroid destroyed",
				"tier", a.Tier,
				"fragments", len(children),
				"score", g.score,
			)
			break
		}
		if !hit {
			survivors = append(survivors, p)
		}
	}

	g.projectiles = survivors
	if hits > 0 {
		live := make([]Asteroid, 0, len(g.asteroids))
		for i, a := range g.asteroids {
			if !destroyed[i] {
				live = append(live, a)
			}
		}
		g.asteroids = live
	}
	return hits
}

// shipHit reports whether any asteroid overlaps the ship.
func (g *Game) shipHit() bool {
	for _, a := range g.asteroids {
		if core.Overlaps(g.ship, a) {
			return true
		}
	}
	return false
}

// Render draws the current game state. The frozen final frame keeps being
// drawn after game over, with an overlay.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear(core.ColorBlack)

	dst.FillPolygon(g.ship.Shape(), core.ColorWhite)
	for _, a := range g.asteroids {
		dst.StrokePolygon(a.Shape(), core.ColorWhite, 1)
	}
	for _, p := range g.projectiles {
		dst.FillCircle(p.Position, p.Radius(), core.ColorWhite)
	}

	dst.DrawText(fmt.Sprintf("Score: %d", g.score), scoreTextSize, core.ColorWhite, core.V(10, 10))

	if g.phase == PhaseGameOver {
		pos := core.V(g.screenW/2-gameOverOffsetX, g.screenH/2-gameOverOffsetY)
		dst.DrawText("GAME OVER", gameOverTextSize, core.ColorRed, pos)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
		Frame:    g.frame,
	}
}

// Phase returns the session phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Ship returns the player ship.
func (g *Game) Ship() *Ship {
	return g.ship
}

// Asteroids returns the live asteroids. The slice must not be modified.
func (g *Game) Asteroids() []Asteroid {
	return g.asteroids
}

// Projectiles returns the live projectiles. The slice must not be modified.
func (g *Game) Projectiles() []Projectile {
	return g.projectiles
}

// RotateStep returns the heading change per rotate press.
func (g *Game) RotateStep() float64 {
	return g.cfg.Ship.RotateStep
}
