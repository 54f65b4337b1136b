package cpu

import (
	"sort"

	"github.com/broadsidegame/broadside-go/internal/model"
)

// positional weight of a 3x3 coordinate: the centre dominates, corners
// beat edges. Applied to both the board on the meta grid and the cell
// within a board.
var posWeight = [3][3]int{
	{3, 2, 3},
	{2, 4, 2},
	{3, 2, 3},
}

// Priority bonuses for move ordering
const (
	priorityBoardWin   = 500
	priorityBoardBlock = 400
	priorityThreat     = 25
	priorityExposed    = 60
)

// movePriority ranks a candidate move for the given mark. Higher is better.
// Winning or saving a small board dwarfs positional play; handing the
// opponent a board they can immediately win is penalized.
func (s *MinimaxStrategy) movePriority(state *model.BoardState, mv model.Move, as model.Mark) int {
	opp := as.Opponent()
	score := posWeight[mv.BoardX][mv.BoardY] + posWeight[mv.CellX][mv.CellY]

	after, result := s.simulate(state, mv, as)
	if result.BoardWon {
		score += priorityBoardWin
	}
	if _, oppResult := s.simulate(state, mv, opp); oppResult.BoardWon {
		score += priorityBoardBlock
	}

	// Reward new threats in the board just played
	created := s.rules.ThreatCount(&after, mv.BoardX, mv.BoardY, as) -
		s.rules.ThreatCount(state, mv.BoardX, mv.BoardY, as)
	if created > 0 {
		score += priorityThreat * created
	}

	// Penalize sending the opponent into a board where they have a threat
	// waiting. An unconstrained reply is not penalized here; the search
	// handles that case.
	if !result.Terminal() && !result.NextConstraint.IsAny() {
		dest := result.NextConstraint
		if s.rules.ThreatCount(&after, dest.BoardX, dest.BoardY, opp) > 0 {
			score -= priorityExposed
		}
	}

	return score
}

// rankedMoves returns the legal moves for the side to move, ordered best
// first by movePriority and truncated to the configured candidate cap.
// Equal-priority moves keep their board-major enumeration order.
func (s *MinimaxStrategy) rankedMoves(state *model.BoardState, mover model.Mark) []model.Move {
	moves := s.rules.LegalMoves(state)
	if len(moves) < 2 {
		return moves
	}

	scores := make([]int, len(moves))
	for i, mv := range moves {
		scores[i] = s.movePriority(state, mv, mover)
	}
	idx := make([]int, len(moves))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})

	ranked := make([]model.Move, 0, len(moves))
	for _, i := range idx {
		ranked = append(ranked, moves[i])
	}
	if len(ranked) > s.cfg.TopK {
		ranked = ranked[:s.cfg.TopK]
	}
	return ranked
}
