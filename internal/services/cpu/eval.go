package cpu

import (
	"github.com/broadsidegame/broadside-go/internal/model"
)

// Evaluation weights. Terminal scores sit far above anything the static
// evaluation can reach, so a found win always outranks positional play.
const (
	winScore  = 10000
	searchInf = 1 << 20

	wonBoardScore   = 100
	wonBoardPosMult = 10
	metaThreatScore = 50
	cellThreatScore = 8
	cellPosScore    = 1
)

// evaluate scores a non-terminal position from the given mark's point of
// view. Won boards carry most of the weight, open boards contribute their
// threats and occupied-cell positions, and near-complete meta lines add a
// bonus on top.
func (s *MinimaxStrategy) evaluate(state *model.BoardState, as model.Mark) int {
	opp := as.Opponent()
	score := 0

	for bx := 0; bx < 3; bx++ {
		for by := 0; by < 3; by++ {
			boardValue := wonBoardScore + wonBoardPosMult*posWeight[bx][by]
			switch state.WinnerAt(bx, by) {
			case as:
				score += boardValue
			case opp:
				score -= boardValue
			default:
				if state.BoardFull(bx, by) {
					continue
				}
				score += cellThreatScore * (s.rules.ThreatCount(state, bx, by, as) -
					s.rules.ThreatCount(state, bx, by, opp))
				for cx := 0; cx < 3; cx++ {
					for cy := 0; cy < 3; cy++ {
						switch state.CellAt(bx, by, cx, cy) {
						case as:
							score += cellPosScore * posWeight[cx][cy]
						case opp:
							score -= cellPosScore * posWeight[cx][cy]
						}
					}
				}
			}
		}
	}

	score += metaThreatScore * (s.rules.MetaThreatCount(state, as) -
		s.rules.MetaThreatCount(state, opp))

	return score
}
