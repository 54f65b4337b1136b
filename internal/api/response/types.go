package response

import (
	"time"

	"github.com/broadsidegame/broadside-go/internal/model"
	"github.com/broadsidegame/broadside-go/internal/services/auth"
)

// Player represents a player in API responses
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
	IsCPU       bool   `json:"is_cpu,omitempty"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		DisplayName: p.DisplayName,
		IsGuest:     p.IsGuest,
		IsCPU:       p.IsCPU,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Player:       PlayerFromModel(&s.Player),
		SessionToken: s.Token,
	}
}

// Move represents a single cell address
type Move struct {
	BoardX int `json:"board_x"`
	BoardY int `json:"board_y"`
	CellX  int `json:"cell_x"`
	CellY  int `json:"cell_y"`
}

// MoveFromModel converts a model.Move
func MoveFromModel(m model.Move) Move {
	return Move{BoardX: m.BoardX, BoardY: m.BoardY, CellX: m.CellX, CellY: m.CellY}
}

// Constraint represents the active-board restriction
type Constraint struct {
	Any    bool `json:"any"`
	BoardX int  `json:"board_x,omitempty"`
	BoardY int  `json:"board_y,omitempty"`
}

// ConstraintFromModel converts a model.Constraint
func ConstraintFromModel(c model.Constraint) Constraint {
	if c.IsAny() {
		return Constraint{Any: true}
	}
	return Constraint{BoardX: c.BoardX, BoardY: c.BoardY}
}

// BoardState represents the full game position. Cells are listed in
// canonical flat order; marks are "X", "O", or "" for empty.
type BoardState struct {
	Cells     []string   `json:"cells"`
	Winners   []string   `json:"winners"`
	ToMove    string     `json:"to_move"`
	Active    Constraint `json:"active"`
	Status    string     `json:"status"`
	Winner    string     `json:"winner,omitempty"`
	LastMove  *Move      `json:"last_move,omitempty"`
	MoveCount int        `json:"move_count"`
}

// BoardStateFromModel converts a model.BoardState
func BoardStateFromModel(b *model.BoardState) BoardState {
	cells := make([]string, len(b.Cells))
	for i, c := range b.Cells {
		cells[i] = c.String()
	}
	winners := make([]string, len(b.Winners))
	for i, w := range b.Winners {
		winners[i] = w.String()
	}

	state := BoardState{
		Cells:     cells,
		Winners:   winners,
		ToMove:    b.ToMove.String(),
		Active:    ConstraintFromModel(b.Active),
		Status:    string(b.Status),
		Winner:    b.Winner.String(),
		MoveCount: b.MoveCount,
	}
	if b.HasLastMove {
		last := MoveFromModel(b.LastMove)
		state.LastMove = &last
	}
	return state
}

// MoveResult represents everything a single move changed
type MoveResult struct {
	Move           Move       `json:"move"`
	Mark           string     `json:"mark"`
	BoardWon       bool       `json:"board_won"`
	BoardDrawn     bool       `json:"board_drawn"`
	GameWon        bool       `json:"game_won"`
	GameDrawn      bool       `json:"game_drawn"`
	NextConstraint Constraint `json:"next_constraint"`
	NextToMove     string     `json:"next_to_move,omitempty"`
}

// MoveResultFromModel converts a model.MoveResult
func MoveResultFromModel(r *model.MoveResult) MoveResult {
	return MoveResult{
		Move:           MoveFromModel(r.Move),
		Mark:           r.Mark.String(),
		BoardWon:       r.BoardWon,
		BoardDrawn:     r.BoardDrawn,
		GameWon:        r.GameWon,
		GameDrawn:      r.GameDrawn,
		NextConstraint: ConstraintFromModel(r.NextConstraint),
		NextToMove:     r.NextToMove.String(),
	}
}

// MoveResultsFromModel converts a slice of move results
func MoveResultsFromModel(results []model.MoveResult) []MoveResult {
	out := make([]MoveResult, len(results))
	for i := range results {
		out[i] = MoveResultFromModel(&results[i])
	}
	return out
}

// Match represents a match in API responses
type Match struct {
	ID          string     `json:"id"`
	Status      string     `json:"status"`
	Board       BoardState `json:"board"`
	SeatX       string     `json:"seat_x,omitempty"`
	SeatO       string     `json:"seat_o,omitempty"`
	CPUSeat     string     `json:"cpu_seat,omitempty"`
	CPUStrategy string     `json:"cpu_strategy,omitempty"`
	ResignedBy  string     `json:"resigned_by,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// MatchFromModel converts a model.Match
func MatchFromModel(m *model.Match) Match {
	return Match{
		ID:          string(m.ID),
		Status:      string(m.Status),
		Board:       BoardStateFromModel(&m.Board),
		SeatX:       string(m.SeatX),
		SeatO:       string(m.SeatO),
		CPUSeat:     m.CPUSeat.String(),
		CPUStrategy: m.CPUStrategy,
		ResignedBy:  string(m.ResignedBy),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// MoveResponse is the response to a submitted move: the human result, any
// CPU replies played before the turn came back, and the updated match
type MoveResponse struct {
	Result   MoveResult   `json:"result"`
	CPUMoves []MoveResult `json:"cpu_moves,omitempty"`
	Match    Match        `json:"match"`
}

// MatchResponse wraps a match with any CPU opening moves played at creation
type MatchResponse struct {
	Match    Match        `json:"match"`
	CPUMoves []MoveResult `json:"cpu_moves,omitempty"`
}

// LegalMovesResponse lists the playable moves in a position
type LegalMovesResponse struct {
	Moves []Move `json:"moves"`
}

// LegalMovesFromModel converts a slice of legal moves
func LegalMovesFromModel(moves []model.Move) LegalMovesResponse {
	out := make([]Move, len(moves))
	for i, m := range moves {
		out[i] = MoveFromModel(m)
	}
	return LegalMovesResponse{Moves: out}
}
