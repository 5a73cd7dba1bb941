package core

// Game is the contract between a simulation and the host that drives it.
// Games contain pure logic; hosts handle input mapping, timing and drawing.
type Game interface {
	// ID returns a unique identifier for this game.
	ID() string

	// Title returns a human-readable name, also used as the window title.
	Title() string

	// Reset initializes the game state for a new session.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the current game state onto dst.
	Render(dst Canvas)

	// State returns the current game state.
	State() GameState
}
