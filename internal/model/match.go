package model

import "time"

// MatchID uniquely identifies a match
type MatchID string

// MatchStatus represents the lifecycle phase of a match
type MatchStatus string

const (
	MatchStatusWaiting    MatchStatus = "waiting"     // open seat, waiting for an opponent
	MatchStatusInProgress MatchStatus = "in_progress" // both seats filled, game running
	MatchStatusFinished   MatchStatus = "finished"    // game won, drawn, or resigned
)

// OpponentKind selects what fills the second seat at match creation
type OpponentKind string

const (
	OpponentCPU   OpponentKind = "cpu"
	OpponentHuman OpponentKind = "human"
)

// Match is a single game of ultimate tic-tac-toe between two seats.
// The Board snapshot carries the full rules state; Match adds identity,
// seating, and lifecycle bookkeeping around it.
type Match struct {
	ID     MatchID
	Status MatchStatus

	Board BoardState

	// Seat assignments; SeatO is empty while Status is waiting
	SeatX PlayerID
	SeatO PlayerID

	// CPUSeat is MarkNone for human-vs-human matches
	CPUSeat     Mark
	CPUStrategy string

	ResignedBy PlayerID // set when the match ended by resignation

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SeatOf returns the mark a player occupies, or MarkNone if not seated.
func (m *Match) SeatOf(id PlayerID) Mark {
	if id == "" {
		return MarkNone
	}
	switch id {
	case m.SeatX:
		return MarkX
	case m.SeatO:
		return MarkO
	default:
		return MarkNone
	}
}

// PlayerFor returns the player seated at the given mark.
func (m *Match) PlayerFor(mark Mark) PlayerID {
	switch mark {
	case MarkX:
		return m.SeatX
	case MarkO:
		return m.SeatO
	default:
		return ""
	}
}

// HasOpenSeat returns true if the match still needs a second player.
func (m *Match) HasOpenSeat() bool {
	return m.SeatX == "" || m.SeatO == ""
}

// IsCPUTurn returns true if the match is running and the CPU seat moves next.
func (m *Match) IsCPUTurn() bool {
	return m.Status == MatchStatusInProgress &&
		m.CPUSeat != MarkNone &&
		m.Board.ToMove == m.CPUSeat
}
