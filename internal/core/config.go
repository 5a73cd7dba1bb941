package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for playfield size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Playfield width in world units
	ScreenH  int   // Playfield height in world units
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the host.
type GameState struct {
	Score    int    // Current score
	GameOver bool   // Whether the game has ended
	Frame    uint64 // Number of simulated frames
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Hits  int // Projectile-asteroid hits resolved this tick
	Fired int // Projectiles spawned this tick
}
