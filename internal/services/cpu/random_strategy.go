package cpu

import (
	"github.com/broadsidegame/broadside-go/internal/dependencies/random"
	"github.com/broadsidegame/broadside-go/internal/model"
	"github.com/broadsidegame/broadside-go/internal/services/rules"
)

// RandomStrategy picks a uniformly random legal move
type RandomStrategy struct {
	rules  *rules.Service
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rulesService *rules.Service, rnd random.Random) *RandomStrategy {
	return &RandomStrategy{rules: rulesService, random: rnd}
}

var _ Strategy = (*RandomStrategy)(nil)

// ChooseMove picks a random legal move
func (s *RandomStrategy) ChooseMove(state *model.BoardState, as model.Mark) (model.Move, bool) {
	moves := s.rules.LegalMoves(state)
	if len(moves) == 0 {
		return model.Move{}, false
	}
	return moves[s.random.Intn(len(moves))], true
}
