package cpu

import (
	"github.com/broadsidegame/broadside-go/internal/model"
)

// alphaBeta searches the position to the given depth and returns its score
// from the perspective of the mark `as`. Wins found earlier score higher
// than wins found later, so the search prefers the shortest mate.
func (s *MinimaxStrategy) alphaBeta(state model.BoardState, depth, alpha, beta int, as model.Mark) int {
	switch state.Status {
	case model.GameStatusWon:
		if state.Winner == as {
			return winScore + depth
		}
		return -(winScore + depth)
	case model.GameStatusDrawn:
		return 0
	}

	if depth <= 0 {
		return s.evaluate(&state, as)
	}

	moves := s.rankedMoves(&state, state.ToMove)
	if state.ToMove == as {
		value := -searchInf
		for _, mv := range moves {
			child, _ := s.rules.ApplyMove(state, mv, state.ToMove)
			score := s.alphaBeta(child, depth-1, alpha, beta, as)
			if score > value {
				value = score
			}
			if value > alpha {
				alpha = value
			}
			if alpha >= beta {
				break
			}
		}
		return value
	}

	value := searchInf
	for _, mv := range moves {
		child, _ := s.rules.ApplyMove(state, mv, state.ToMove)
		score := s.alphaBeta(child, depth-1, alpha, beta, as)
		if score < value {
			value = score
		}
		if value < beta {
			beta = value
		}
		if alpha >= beta {
			break
		}
	}
	return value
}
