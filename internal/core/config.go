package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic shuffles.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in cells
	ScreenH  int   // Screen height in cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic shuffles (0 = time-based in platform)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState communicates puzzle status to the platform.
type GameState struct {
	Clusters int  // Number of clusters remaining (1 = solved)
	Pieces   int  // Total piece count
	Moves    int  // Successful merges so far
	Ticks    int  // Elapsed simulation ticks since the last shuffle
	Solved   bool // Whether all pieces form a single cluster
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}

// Game is the interface the platform drives each frame. The implementation
// contains pure logic with no terminal dependencies; the platform handles
// input mapping, timing, and display.
type Game interface {
	// ID returns a stable identifier used for solve storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or re-lays-out the game for the given runtime
	// config. Called once at start and again on terminal resize.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one fixed tick, consuming the
	// actions and pointer events gathered since the previous tick.
	Step(in InputFrame) StepResult

	// Render draws the current state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
