package cpu

import (
	"github.com/broadsidegame/broadside-go/internal/model"
	"github.com/broadsidegame/broadside-go/internal/services/rules"
)

// MinimaxStrategy chooses moves through a short tactical pipeline backed by
// an alpha-beta search. Forced tactics are taken immediately; otherwise the
// heuristically best candidates are searched to the configured depth. Every
// tie breaks toward the earlier move in board-major order, so the strategy
// is fully deterministic.
type MinimaxStrategy struct {
	rules *rules.Service
	cfg   Config
}

// NewMinimaxStrategy creates a new MinimaxStrategy
func NewMinimaxStrategy(rulesService *rules.Service, cfg Config) *MinimaxStrategy {
	return &MinimaxStrategy{
		rules: rulesService,
		cfg:   cfg.normalized(),
	}
}

var _ Strategy = (*MinimaxStrategy)(nil)

// ChooseMove selects a move for the given mark:
//
//  1. take an immediate game win
//  2. block the opponent's immediate game win
//  3. deny the opponent a small-board win
//  4. take a small-board win
//  5. search the top-ranked candidates with alpha-beta
//
// If the search finds nothing better than its starting point, the first
// legal move in board-major order is played.
func (s *MinimaxStrategy) ChooseMove(state *model.BoardState, as model.Mark) (model.Move, bool) {
	moves := s.rules.LegalMoves(state)
	if len(moves) == 0 {
		return model.Move{}, false
	}
	opp := as.Opponent()

	for _, mv := range moves {
		if _, result := s.simulate(state, mv, as); result.GameWon {
			return mv, true
		}
	}
	for _, mv := range moves {
		if _, result := s.simulate(state, mv, opp); result.GameWon {
			return mv, true
		}
	}
	for _, mv := range moves {
		if _, result := s.simulate(state, mv, opp); result.BoardWon {
			return mv, true
		}
	}
	for _, mv := range moves {
		if _, result := s.simulate(state, mv, as); result.BoardWon {
			return mv, true
		}
	}

	base := *state
	base.ToMove = as

	bestMove := moves[0]
	bestScore := -searchInf
	alpha, beta := -searchInf, searchInf
	for _, mv := range s.rankedMoves(&base, as) {
		child, _ := s.rules.ApplyMove(base, mv, as)
		score := s.alphaBeta(child, s.cfg.Depth-1, alpha, beta, as)
		if score > bestScore {
			bestScore = score
			bestMove = mv
		}
		if score > alpha {
			alpha = score
		}
	}

	return bestMove, true
}

// simulate plays a move for the given mark on a copy of the position,
// regardless of whose turn is recorded, and reports what it would change.
func (s *MinimaxStrategy) simulate(state *model.BoardState, mv model.Move, mark model.Mark) (model.BoardState, model.MoveResult) {
	sim := *state
	sim.ToMove = mark
	return s.rules.ApplyMove(sim, mv, mark)
}
