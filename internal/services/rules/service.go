package rules

import (
	"fmt"

	"github.com/broadsidegame/broadside-go/internal/model"
)

// Service implements the ultimate tic-tac-toe rules: move legality, move
// application with all cascading consequences, and outcome classification.
// It is stateless; every method works on the snapshot it is given.
type Service struct{}

// New creates a new rules Service
func New() *Service {
	return &Service{}
}

// IsLegalMove reports whether the move may be played in the given position.
// Legality depends only on the position, never on which mark is moving:
// the game must be in progress, the coordinates in bounds, the target cell
// empty, the target board still open, and the active-board constraint
// satisfied.
func (s *Service) IsLegalMove(state *model.BoardState, mv model.Move) bool {
	if state.Status != model.GameStatusInProgress {
		return false
	}
	if !mv.InBounds() {
		return false
	}
	if !state.Active.Allows(mv.BoardX, mv.BoardY) {
		return false
	}
	if state.BoardClosed(mv.BoardX, mv.BoardY) {
		return false
	}
	return state.CellAt(mv.BoardX, mv.BoardY, mv.CellX, mv.CellY) == model.MarkNone
}

// LegalMoves enumerates every legal move in board-major order: boards scanned
// (0,0), (0,1), ... (2,2), cells within each board in the same order. The
// ordering is deterministic and is relied on for tie-breaking elsewhere.
func (s *Service) LegalMoves(state *model.BoardState) []model.Move {
	if state.Status != model.GameStatusInProgress {
		return nil
	}
	moves := make([]model.Move, 0, 81)
	for bx := 0; bx < 3; bx++ {
		for by := 0; by < 3; by++ {
			if !state.Active.Allows(bx, by) || state.BoardClosed(bx, by) {
				continue
			}
			for cx := 0; cx < 3; cx++ {
				for cy := 0; cy < 3; cy++ {
					if state.CellAt(bx, by, cx, cy) == model.MarkNone {
						moves = append(moves, model.Move{BoardX: bx, BoardY: by, CellX: cx, CellY: cy})
					}
				}
			}
		}
	}
	return moves
}

// ApplyMove plays a move for the given mark and returns the successor
// position along with everything the move changed. The input snapshot is
// untouched; the returned snapshot is a fresh value.
//
// ApplyMove panics on an illegal move or a mark that is not on turn.
// Callers own legality screening; a bad position reaching this point means
// corrupted state, which must not be played through.
func (s *Service) ApplyMove(state model.BoardState, mv model.Move, mark model.Mark) (model.BoardState, model.MoveResult) {
	if mark != state.ToMove || !mark.IsPlayer() {
		panic(fmt.Sprintf("rules: ApplyMove for %q out of turn (to move: %q)", mark, state.ToMove))
	}
	if !s.IsLegalMove(&state, mv) {
		panic(fmt.Sprintf("rules: ApplyMove with illegal move %+v", mv))
	}

	state.SetCell(mv.BoardX, mv.BoardY, mv.CellX, mv.CellY, mark)
	state.HasLastMove = true
	state.LastMove = mv
	state.MoveCount++

	result := model.MoveResult{
		Move: mv,
		Mark: mark,
	}

	// Small-board consequences
	if s.smallBoardWonBy(&state, mv.BoardX, mv.BoardY, mark) {
		state.SetWinner(mv.BoardX, mv.BoardY, mark)
		result.BoardWon = true
	} else if state.BoardFull(mv.BoardX, mv.BoardY) {
		result.BoardDrawn = true
	}

	// Meta-board consequences. Only a freshly won small board can complete a
	// meta line; a drawn board counts for neither player.
	if result.BoardWon && s.metaWonBy(&state, mark) {
		state.Status = model.GameStatusWon
		state.Winner = mark
		result.GameWon = true
	} else if s.allBoardsClosed(&state) {
		state.Status = model.GameStatusDrawn
		result.GameDrawn = true
	}

	if result.Terminal() {
		state.ToMove = model.MarkNone
		state.Active = model.AnyBoard()
		result.NextToMove = model.MarkNone
		result.NextConstraint = model.AnyBoard()
		return state, result
	}

	// The cell played dictates the next board; relax to any open board when
	// that board is already decided or full.
	next := model.Constraint{BoardX: mv.CellX, BoardY: mv.CellY}
	if state.BoardClosed(next.BoardX, next.BoardY) {
		next = model.AnyBoard()
	}
	state.Active = next
	state.ToMove = mark.Opponent()
	result.NextConstraint = next
	result.NextToMove = state.ToMove
	return state, result
}

// SmallBoardOutcome classifies a single small board: won (and by whom),
// drawn (full with no winner), or still open.
func (s *Service) SmallBoardOutcome(state *model.BoardState, bx, by int) (model.Outcome, model.Mark) {
	if w := state.WinnerAt(bx, by); w != model.MarkNone {
		return model.OutcomeWon, w
	}
	if state.BoardFull(bx, by) {
		return model.OutcomeDrawn, model.MarkNone
	}
	return model.OutcomeOpen, model.MarkNone
}

// GameOutcome classifies the whole game from its snapshot.
func (s *Service) GameOutcome(state *model.BoardState) (model.Outcome, model.Mark) {
	switch state.Status {
	case model.GameStatusWon:
		return model.OutcomeWon, state.Winner
	case model.GameStatusDrawn:
		return model.OutcomeDrawn, model.MarkNone
	default:
		return model.OutcomeOpen, model.MarkNone
	}
}

// ThreatCount returns how many lines of a small board the mark could
// complete with one placement: two own cells and the third empty. A closed
// board has no threats.
func (s *Service) ThreatCount(state *model.BoardState, bx, by int, mark model.Mark) int {
	if state.BoardClosed(bx, by) {
		return 0
	}
	count := 0
	for _, l := range winLines {
		mine, empty := 0, 0
		for _, c := range l {
			switch state.CellAt(bx, by, c[0], c[1]) {
			case mark:
				mine++
			case model.MarkNone:
				empty++
			}
		}
		if mine == 2 && empty == 1 {
			count++
		}
	}
	return count
}

// MetaThreatCount returns how many meta lines the mark could complete by
// winning one more small board: two boards won, the third still open.
func (s *Service) MetaThreatCount(state *model.BoardState, mark model.Mark) int {
	count := 0
	for _, l := range winLines {
		wins, open := 0, 0
		for _, c := range l {
			w := state.WinnerAt(c[0], c[1])
			switch {
			case w == mark:
				wins++
			case w == model.MarkNone && !state.BoardClosed(c[0], c[1]):
				open++
			}
		}
		if wins == 2 && open == 1 {
			count++
		}
	}
	return count
}

// smallBoardWonBy checks whether the mark completes a line within one
// small board.
func (s *Service) smallBoardWonBy(state *model.BoardState, bx, by int, mark model.Mark) bool {
	for _, l := range winLines {
		if state.CellAt(bx, by, l[0][0], l[0][1]) == mark &&
			state.CellAt(bx, by, l[1][0], l[1][1]) == mark &&
			state.CellAt(bx, by, l[2][0], l[2][1]) == mark {
			return true
		}
	}
	return false
}

// metaWonBy checks whether the mark holds a full line of small-board wins.
func (s *Service) metaWonBy(state *model.BoardState, mark model.Mark) bool {
	for _, l := range winLines {
		if state.WinnerAt(l[0][0], l[0][1]) == mark &&
			state.WinnerAt(l[1][0], l[1][1]) == mark &&
			state.WinnerAt(l[2][0], l[2][1]) == mark {
			return true
		}
	}
	return false
}

// allBoardsClosed reports whether no small board accepts further placement.
func (s *Service) allBoardsClosed(state *model.BoardState) bool {
	for bx := 0; bx < 3; bx++ {
		for by := 0; by < 3; by++ {
			if !state.BoardClosed(bx, by) {
				return false
			}
		}
	}
	return true
}
