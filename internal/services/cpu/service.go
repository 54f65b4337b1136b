package cpu

import (
	"context"
	"log/slog"

	"github.com/broadsidegame/broadside-go/internal/model"
	"github.com/broadsidegame/broadside-go/internal/services/match"
)

// MaxCPUIterations is a safety limit for the PlayTurns loop
const MaxCPUIterations = 100

// Service drives CPU seats in matches. After a human move (or at the start
// of a CPU-as-X match) it plays consecutive CPU turns until the turn passes
// back to a human or the match finishes.
type Service struct {
	matches    match.ControllerInterface
	strategies map[string]Strategy
	logger     *slog.Logger
}

// NewService creates a new cpu Service
func NewService(
	matches match.ControllerInterface,
	strategies map[string]Strategy,
	logger *slog.Logger,
) *Service {
	return &Service{
		matches:    matches,
		strategies: strategies,
		logger:     logger.With(slog.String("component", "cpu-service")),
	}
}

// PlayTurns advances the match through any pending CPU turns and returns
// the moves played, in order
func (s *Service) PlayTurns(ctx context.Context, matchID model.MatchID) ([]model.MoveResult, error) {
	var results []model.MoveResult

	for i := 0; i < MaxCPUIterations; i++ {
		m, err := s.matches.GetMatch(ctx, matchID)
		if err != nil {
			return results, err
		}
		if !m.IsCPUTurn() {
			break
		}

		strategy := s.strategyFor(m.CPUStrategy)
		if strategy == nil {
			return results, model.ErrInvalidStrategy
		}

		// Hand the strategy its own copy so stored state is never aliased
		board := m.Board
		mv, ok := strategy.ChooseMove(&board, m.CPUSeat)
		if !ok {
			break
		}

		result, err := s.matches.SubmitMove(ctx, matchID, m.PlayerFor(m.CPUSeat), mv)
		if err != nil {
			s.logger.Error("cpu move rejected",
				slog.String("match_id", string(matchID)),
				slog.String("strategy", m.CPUStrategy),
				slog.String("error", err.Error()),
			)
			return results, err
		}
		results = append(results, *result)

		s.logger.Info("cpu move played",
			slog.String("match_id", string(matchID)),
			slog.String("strategy", m.CPUStrategy),
			slog.String("mark", result.Mark.String()),
			slog.Int("board_x", mv.BoardX),
			slog.Int("board_y", mv.BoardY),
			slog.Int("cell_x", mv.CellX),
			slog.Int("cell_y", mv.CellY),
		)

		if result.Terminal() {
			break
		}
	}

	return results, nil
}

// strategyFor resolves a strategy by name, falling back to minimax
func (s *Service) strategyFor(name string) Strategy {
	if strategy, ok := s.strategies[name]; ok {
		return strategy
	}
	return s.strategies[model.CPUStrategyMinimax]
}
