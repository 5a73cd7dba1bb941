// Package window runs games in a desktop window with Ebitengine.
package window

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// keyActions maps physical keys to game actions.
var keyActions = map[ebiten.Key]core.Action{
	ebiten.KeyArrowLeft:  core.ActionRotateLeft,
	ebiten.KeyA:          core.ActionRotateLeft,
	ebiten.KeyArrowRight: core.ActionRotateRight,
	ebiten.KeyD:          core.ActionRotateRight,
	ebiten.KeySpace:      core.ActionFire,
	ebiten.KeyEscape:     core.ActionQuit,
	ebiten.KeyQ:          core.ActionQuit,
}

// Host adapts a core.Game to ebiten.Game. Ebitengine calls Update at the
// configured TPS, so each call is exactly one simulation step.
type Host struct {
	ctx  *core.GameContext
	game core.Game

	keys  []ebiten.Key
	input core.InputFrame
}

var _ ebiten.Game = (*Host)(nil)

// NewHost creates a host for game.
func NewHost(ctx *core.GameContext, game core.Game) *Host {
	return &Host{ctx: ctx, game: game, input: core.NewInputFrame()}
}

// Update implements ebiten.Game. Keys pressed since the previous tick become
// the frame's actions, in key order.
func (h *Host) Update() error {
	h.keys = inpututil.AppendJustPressedKeys(h.keys[:0])
	h.input.Clear()
	for _, k := range h.keys {
		a := keyActions[k]
		if a == core.ActionQuit {
			return ebiten.Termination
		}
		h.input.Push(a)
	}

	res := h.game.Step(h.input)
	if res.Hits > 0 {
		h.ctx.Logger.Debug("hit", "count", res.Hits, "score", res.State.Score)
	}
	return nil
}

// Draw implements ebiten.Game.
func (h *Host) Draw(screen *ebiten.Image) {
	h.game.Render(NewCanvas(screen))
}

// Layout implements ebiten.Game. The logical screen is the world size, and
// Ebitengine scales it to the window.
func (h *Host) Layout(_, _ int) (int, int) {
	return h.ctx.Config.ScreenW, h.ctx.Config.ScreenH
}

// Run opens a window and plays game until it is closed or the player quits.
// It returns the final game state.
func Run(ctx *core.GameContext, game core.Game) (core.GameState, error) {
	cfg := ctx.Config
	game.Reset(cfg)

	ebiten.SetWindowSize(cfg.ScreenW, cfg.ScreenH)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(max(cfg.TickRate, 1))

	ctx.Logger.Info("window opened", "width", cfg.ScreenW, "height", cfg.ScreenH, "tps", cfg.TickRate)
	if err := ebiten.RunGame(NewHost(ctx, game)); err != nil {
		return game.State(), fmt.Errorf("run window: %w", err)
	}
	return game.State(), nil
}
