package model

// Mark is the tri-state occupancy of a cell, small board, or meta board.
type Mark uint8

const (
	MarkNone Mark = iota
	MarkX
	MarkO
)

// Opponent returns the other player's mark, or MarkNone for MarkNone.
func (m Mark) Opponent() Mark {
	switch m {
	case MarkX:
		return MarkO
	case MarkO:
		return MarkX
	default:
		return MarkNone
	}
}

// IsPlayer returns true if the mark belongs to a player.
func (m Mark) IsPlayer() bool {
	return m == MarkX || m == MarkO
}

func (m Mark) String() string {
	switch m {
	case MarkX:
		return "X"
	case MarkO:
		return "O"
	default:
		return ""
	}
}

// MarkFromString parses "X" or "O"; anything else is MarkNone.
func MarkFromString(s string) Mark {
	switch s {
	case "X":
		return MarkX
	case "O":
		return MarkO
	default:
		return MarkNone
	}
}
