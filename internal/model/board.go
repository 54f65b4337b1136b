package model

// Move addresses one of the 81 cells: which small board on the meta grid,
// and which cell within that board. All coordinates are in {0,1,2}.
type Move struct {
	BoardX int `json:"board_x"`
	BoardY int `json:"board_y"`
	CellX  int `json:"cell_x"`
	CellY  int `json:"cell_y"`
}

// InBounds returns true if every coordinate is within the 3x3 range.
func (m Move) InBounds() bool {
	return m.BoardX >= 0 && m.BoardX < 3 &&
		m.BoardY >= 0 && m.BoardY < 3 &&
		m.CellX >= 0 && m.CellX < 3 &&
		m.CellY >= 0 && m.CellY < 3
}

// Constraint is the active-board restriction: the small board the next move
// must be played in. A negative coordinate pair means any open board.
type Constraint struct {
	BoardX int `json:"board_x"`
	BoardY int `json:"board_y"`
}

// AnyBoard returns the unconstrained ("play anywhere open") constraint.
func AnyBoard() Constraint {
	return Constraint{BoardX: -1, BoardY: -1}
}

// IsAny returns true if the constraint allows any open board.
func (c Constraint) IsAny() bool {
	return c.BoardX < 0 || c.BoardY < 0
}

// Allows returns true if a move in board (bx, by) satisfies the constraint.
func (c Constraint) Allows(bx, by int) bool {
	return c.IsAny() || (c.BoardX == bx && c.BoardY == by)
}

// GameStatus represents the terminal/in-progress state of a board.
type GameStatus string

const (
	GameStatusInProgress GameStatus = "in_progress"
	GameStatusWon        GameStatus = "won"
	GameStatusDrawn      GameStatus = "drawn"
)

// Outcome classifies a small board or the whole game.
type Outcome string

const (
	OutcomeOpen  Outcome = "open"
	OutcomeWon   Outcome = "won"
	OutcomeDrawn Outcome = "drawn"
)

// BoardState is the complete snapshot of an ultimate tic-tac-toe position:
// 81 cells, the 9 small-board winners, whose turn it is, and the active-board
// constraint. It has pure value semantics; assignment copies the whole
// snapshot, so previous snapshots are never aliased by later mutation.
type BoardState struct {
	Cells   [81]Mark `json:"cells"`
	Winners [9]Mark  `json:"winners"`

	ToMove Mark       `json:"to_move"`
	Active Constraint `json:"active"`

	Status GameStatus `json:"status"`
	Winner Mark       `json:"winner"`

	// The constraint is persisted explicitly rather than re-derived from the
	// last move on restore; LastMove is kept for display and auditing.
	HasLastMove bool `json:"has_last_move"`
	LastMove    Move `json:"last_move"`
	MoveCount   int  `json:"move_count"`
}

// NewBoardState returns the initial position: empty, X to move, any board.
func NewBoardState() BoardState {
	return BoardState{
		ToMove: MarkX,
		Active: AnyBoard(),
		Status: GameStatusInProgress,
	}
}

// CellIndex maps (boardX, boardY, cellX, cellY) to the canonical flat index.
func CellIndex(bx, by, cx, cy int) int {
	return (bx*3+by)*9 + (cx*3 + cy)
}

// winnerIndex maps small-board coordinates to the winners array.
func winnerIndex(bx, by int) int {
	return bx*3 + by
}

// CellAt returns the occupancy of a single cell.
func (s *BoardState) CellAt(bx, by, cx, cy int) Mark {
	return s.Cells[CellIndex(bx, by, cx, cy)]
}

// SetCell records occupancy of a single cell.
func (s *BoardState) SetCell(bx, by, cx, cy int, m Mark) {
	s.Cells[CellIndex(bx, by, cx, cy)] = m
}

// WinnerAt returns the winner of a small board, or MarkNone if undecided.
func (s *BoardState) WinnerAt(bx, by int) Mark {
	return s.Winners[winnerIndex(bx, by)]
}

// SetWinner records the winner of a small board.
func (s *BoardState) SetWinner(bx, by int, m Mark) {
	s.Winners[winnerIndex(bx, by)] = m
}

// BoardFull reports whether all 9 cells of a small board are occupied.
// Fullness is always derived from occupancy, never from the winner state.
func (s *BoardState) BoardFull(bx, by int) bool {
	for cx := 0; cx < 3; cx++ {
		for cy := 0; cy < 3; cy++ {
			if s.CellAt(bx, by, cx, cy) == MarkNone {
				return false
			}
		}
	}
	return true
}

// BoardClosed reports whether a small board accepts no further placement:
// it has been won, or it is full with no winner.
func (s *BoardState) BoardClosed(bx, by int) bool {
	return s.WinnerAt(bx, by) != MarkNone || s.BoardFull(bx, by)
}

// OccupiedCount returns the number of occupied cells across all boards.
func (s *BoardState) OccupiedCount() int {
	count := 0
	for _, c := range s.Cells {
		if c != MarkNone {
			count++
		}
	}
	return count
}

// MoveResult enumerates everything a single accepted move changed, so callers
// can react to outcomes without the engine emitting events.
type MoveResult struct {
	Move Move `json:"move"`
	Mark Mark `json:"mark"`

	BoardWon   bool `json:"board_won"`   // the move closed its small board in the mover's favor
	BoardDrawn bool `json:"board_drawn"` // the move filled its small board with no winner

	GameWon   bool `json:"game_won"`
	GameDrawn bool `json:"game_drawn"`

	NextConstraint Constraint `json:"next_constraint"`
	NextToMove     Mark       `json:"next_to_move"` // MarkNone when the game ended
}

// Terminal returns true if the move ended the game.
func (r MoveResult) Terminal() bool {
	return r.GameWon || r.GameDrawn
}
