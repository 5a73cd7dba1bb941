package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Model is the Bubble Tea model for running a game in the terminal.
type Model struct {
	ctx        *core.GameContext
	game       core.Game
	screen     *core.Screen
	raster     *core.Raster
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool

	cols int
	rows int
}

// NewModel creates a new Bubble Tea model for the given game. The playfield
// is drawn onto a cols x rows terminal above the key help.
func NewModel(ctx *core.GameContext, game core.Game, cols, rows int) Model {
	if ctx.Config.Seed == 0 {
		ctx.Config.Seed = time.Now().UnixNano()
	}
	screen := core.NewScreen(1, 1)
	m := Model{
		ctx:        ctx,
		game:       game,
		screen:     screen,
		raster:     core.NewRaster(screen, float64(ctx.Config.ScreenW), float64(ctx.Config.ScreenH)),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		cols:       cols,
		rows:       rows,
	}
	m.fitScreen()
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.ctx.Config)
	return tickCmd(m.ctx.Config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		m.fitScreen()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.gameState = m.game.State()
		return m, tea.Quit
	}
	m.inputFrame.Push(action)
	return m, nil
}

// handleResize refits the playfield to the terminal. The world size is fixed,
// so the game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.cols, m.rows = msg.Width, msg.Height
	m.help.Width = msg.Width
	m.fitScreen()
	return m, nil
}

// fitScreen gives the playfield every row the help footer does not use.
func (m Model) fitScreen() {
	helpHeight := lipgloss.Height(m.help.View(m.keys))
	m.screen.Resize(max(m.cols, 1), max(m.rows-helpHeight, 1))
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()
	return m, tickCmd(m.ctx.Config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.raster)

	dir := filepath.Join(os.Getenv("HOME"), ".asteroids", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.ctx.Logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.ctx.Logger.Warn("screenshot failed", "err", err)
		return
	}
	m.ctx.Logger.Info("screenshot saved", "path", path)
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.raster)

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteRune('\n')
	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// Run plays game in the terminal until the player quits and returns the
// final game state.
func Run(ctx *core.GameContext, game core.Game, cols, rows int) (core.GameState, error) {
	p := tea.NewProgram(NewModel(ctx, game, cols, rows), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return core.GameState{}, fmt.Errorf("run terminal ui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.State(), nil
	}
	return game.State(), nil
}
