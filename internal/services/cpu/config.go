package cpu

// Config holds search tuning for the minimax strategy
type Config struct {
	// Depth is the lookahead depth in plies for the endgame search
	Depth int

	// TopK caps how many heuristically ranked candidate moves are searched
	TopK int
}

// DefaultConfig returns the standard search configuration
func DefaultConfig() Config {
	return Config{
		Depth: 2,
		TopK:  15,
	}
}

// normalized fills in zero fields with defaults
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.Depth <= 0 {
		c.Depth = def.Depth
	}
	if c.TopK <= 0 {
		c.TopK = def.TopK
	}
	return c
}
