package core

// RuntimeConfig contains configuration passed to the game host at startup.
// The simulation uses TickRate and Seed; the terminal host also uses the screen size.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	DrawRate int   // Draw calls per second when presentation is not synchronized
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		DrawRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
