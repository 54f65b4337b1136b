package model

// CPU strategy constants
const (
	CPUStrategyRandom  = "random"
	CPUStrategyMinimax = "minimax"
)

// CPUStrategyDisplayName returns a human-readable label for a strategy
func CPUStrategyDisplayName(strategy string) string {
	switch strategy {
	case CPUStrategyRandom:
		return "Random"
	case CPUStrategyMinimax:
		return "Minimax"
	default:
		return strategy
	}
}

// ValidCPUStrategies returns all valid CPU strategy names
func ValidCPUStrategies() []string {
	return []string{CPUStrategyRandom, CPUStrategyMinimax}
}

// IsValidCPUStrategy reports whether the name is a known strategy
func IsValidCPUStrategy(strategy string) bool {
	for _, s := range ValidCPUStrategies() {
		if s == strategy {
			return true
		}
	}
	return false
}
