package core

// RuntimeConfig contains host-side parameters: terminal or window size and
// how often the host flushes animation frames.
type RuntimeConfig struct {
	ScreenW  int // Host screen width (terminal columns or window pixels)
	ScreenH  int // Host screen height (terminal rows or window pixels)
	TickRate int // Displayed frames per second (default 60)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}
