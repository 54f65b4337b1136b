package cpu

import (
	"github.com/broadsidegame/broadside-go/internal/dependencies/random"
	"github.com/broadsidegame/broadside-go/internal/model"
	"github.com/broadsidegame/broadside-go/internal/services/rules"
)

// Strategy defines how a CPU opponent chooses its move. Implementations must
// only ever return legal moves for the given position.
type Strategy interface {
	// ChooseMove selects a move for the given mark. The second return is
	// false only when the position has no legal moves.
	ChooseMove(state *model.BoardState, as model.Mark) (model.Move, bool)
}

// DefaultStrategies returns the standard strategy registry keyed by name
func DefaultStrategies(rulesService *rules.Service, rnd random.Random, cfg Config) map[string]Strategy {
	return map[string]Strategy{
		model.CPUStrategyRandom:  NewRandomStrategy(rulesService, rnd),
		model.CPUStrategyMinimax: NewMinimaxStrategy(rulesService, cfg),
	}
}
