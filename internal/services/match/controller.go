package match

import (
	"context"
	"log/slog"

	"github.com/broadsidegame/broadside-go/internal/dependencies/clock"
	"github.com/broadsidegame/broadside-go/internal/dependencies/random"
	"github.com/broadsidegame/broadside-go/internal/model"
	"github.com/broadsidegame/broadside-go/internal/services/rules"
	"github.com/broadsidegame/broadside-go/internal/storage"
)

const matchIDAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// CreateOptions controls how a new match is set up
type CreateOptions struct {
	// Opponent selects the second seat: a CPU opponent or an open seat
	// for another human to join
	Opponent model.OpponentKind

	// CPUStrategy names the CPU strategy for CPU matches; defaults to minimax
	CPUStrategy string

	// HostMark is the creator's seat; defaults to X
	HostMark model.Mark
}

// Controller manages match lifecycle and turn flow. Rules screening happens
// here before any move reaches the engine, so illegal input from a client is
// rejected with an error rather than tripping the engine's invariants.
type Controller struct {
	storage storage.Storage
	rules   *rules.Service
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// NewController creates a new match Controller
func NewController(
	storage storage.Storage,
	rules *rules.Service,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		rules:   rules,
		clock:   clock,
		random:  random,
		logger:  logger,
	}
}

// CreateMatch initializes a new match hosted by the given player
func (c *Controller) CreateMatch(ctx context.Context, hostID model.PlayerID, opts CreateOptions) (*model.Match, error) {
	if opts.Opponent == "" {
		opts.Opponent = model.OpponentCPU
	}
	if opts.HostMark == model.MarkNone {
		opts.HostMark = model.MarkX
	}
	if !opts.HostMark.IsPlayer() {
		return nil, model.ErrInvalidMark
	}

	now := c.clock.Now()
	match := &model.Match{
		ID:        model.MatchID(c.random.String(8, matchIDAlphabet)),
		Status:    model.MatchStatusWaiting,
		Board:     model.NewBoardState(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	switch opts.HostMark {
	case model.MarkX:
		match.SeatX = hostID
	case model.MarkO:
		match.SeatO = hostID
	}

	if opts.Opponent == model.OpponentCPU {
		strategy := opts.CPUStrategy
		if strategy == "" {
			strategy = model.CPUStrategyMinimax
		}
		if !model.IsValidCPUStrategy(strategy) {
			return nil, model.ErrInvalidStrategy
		}

		cpuPlayer := &model.Player{
			ID:          model.PlayerID("cpu-" + c.random.String(16, random.AlphabetLowerAlnum)),
			DisplayName: "CPU (" + model.CPUStrategyDisplayName(strategy) + ")",
			IsCPU:       true,
			CPUStrategy: strategy,
			CreatedAt:   now,
		}
		if err := c.storage.SavePlayer(ctx, cpuPlayer); err != nil {
			return nil, err
		}

		match.CPUSeat = opts.HostMark.Opponent()
		match.CPUStrategy = strategy
		if match.CPUSeat == model.MarkX {
			match.SeatX = cpuPlayer.ID
		} else {
			match.SeatO = cpuPlayer.ID
		}
		match.Status = model.MatchStatusInProgress
	}

	if err := c.storage.SaveMatch(ctx, match); err != nil {
		c.logger.Error("failed to save match",
			slog.String("match_id", string(match.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("match created",
		slog.String("match_id", string(match.ID)),
		slog.String("host_id", string(hostID)),
		slog.String("opponent", string(opts.Opponent)),
		slog.String("cpu_strategy", match.CPUStrategy),
	)

	return match, nil
}

// JoinMatch seats a second human player in a waiting match
func (c *Controller) JoinMatch(ctx context.Context, matchID model.MatchID, playerID model.PlayerID) (*model.Match, error) {
	match, err := c.storage.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if match.SeatOf(playerID) != model.MarkNone {
		return nil, model.ErrAlreadyInMatch
	}
	if match.Status != model.MatchStatusWaiting || !match.HasOpenSeat() {
		return nil, model.ErrMatchFull
	}

	if match.SeatX == "" {
		match.SeatX = playerID
	} else {
		match.SeatO = playerID
	}
	match.Status = model.MatchStatusInProgress
	match.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveMatch(ctx, match); err != nil {
		return nil, err
	}

	c.logger.Info("player joined match",
		slog.String("match_id", string(matchID)),
		slog.String("player_id", string(playerID)),
	)

	return match, nil
}

// SubmitMove plays a move for the given player. The move is screened for
// legality first; illegal input is reported as an error, never played.
func (c *Controller) SubmitMove(ctx context.Context, matchID model.MatchID, playerID model.PlayerID, mv model.Move) (*model.MoveResult, error) {
	match, err := c.storage.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if match.Status == model.MatchStatusWaiting {
		return nil, model.ErrMatchNotStarted
	}
	if match.Status == model.MatchStatusFinished {
		return nil, model.ErrMatchFinished
	}

	seat := match.SeatOf(playerID)
	if seat == model.MarkNone {
		return nil, model.ErrNotInMatch
	}
	if match.Board.ToMove != seat {
		return nil, model.ErrNotPlayerTurn
	}

	if !mv.InBounds() {
		return nil, model.ErrInvalidPosition
	}
	if !c.rules.IsLegalMove(&match.Board, mv) {
		return nil, model.ErrIllegalMove
	}

	board, result := c.rules.ApplyMove(match.Board, mv, seat)
	match.Board = board
	if result.Terminal() {
		match.Status = model.MatchStatusFinished
	}
	match.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveMatch(ctx, match); err != nil {
		return nil, err
	}

	c.logger.Info("move played",
		slog.String("match_id", string(matchID)),
		slog.String("player_id", string(playerID)),
		slog.String("mark", seat.String()),
		slog.Int("board_x", mv.BoardX),
		slog.Int("board_y", mv.BoardY),
		slog.Int("cell_x", mv.CellX),
		slog.Int("cell_y", mv.CellY),
		slog.Bool("terminal", result.Terminal()),
	)

	return &result, nil
}

// LegalMoves returns every move currently playable in the match
func (c *Controller) LegalMoves(ctx context.Context, matchID model.MatchID) ([]model.Move, error) {
	match, err := c.storage.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	return c.rules.LegalMoves(&match.Board), nil
}

// ResetMatch starts the match over with a fresh board. Only a seated player
// may reset, and only once both seats are filled.
func (c *Controller) ResetMatch(ctx context.Context, matchID model.MatchID, playerID model.PlayerID) (*model.Match, error) {
	match, err := c.storage.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	if match.SeatOf(playerID) == model.MarkNone {
		return nil, model.ErrNotInMatch
	}
	if match.Status == model.MatchStatusWaiting {
		return nil, model.ErrMatchNotStarted
	}

	match.Board = model.NewBoardState()
	match.Status = model.MatchStatusInProgress
	match.ResignedBy = ""
	match.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveMatch(ctx, match); err != nil {
		return nil, err
	}

	c.logger.Info("match reset",
		slog.String("match_id", string(matchID)),
		slog.String("player_id", string(playerID)),
	)

	return match, nil
}

// ResignMatch ends the match in the opponent's favor
func (c *Controller) ResignMatch(ctx context.Context, matchID model.MatchID, playerID model.PlayerID) (*model.Match, error) {
	match, err := c.storage.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	seat := match.SeatOf(playerID)
	if seat == model.MarkNone {
		return nil, model.ErrNotInMatch
	}
	if match.Status == model.MatchStatusWaiting {
		return nil, model.ErrMatchNotStarted
	}
	if match.Status == model.MatchStatusFinished {
		return nil, model.ErrMatchFinished
	}

	match.Board.Status = model.GameStatusWon
	match.Board.Winner = seat.Opponent()
	match.Board.ToMove = model.MarkNone
	match.Board.Active = model.AnyBoard()
	match.Status = model.MatchStatusFinished
	match.ResignedBy = playerID
	match.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveMatch(ctx, match); err != nil {
		return nil, err
	}

	c.logger.Info("match resigned",
		slog.String("match_id", string(matchID)),
		slog.String("player_id", string(playerID)),
		slog.String("winner", seat.Opponent().String()),
	)

	return match, nil
}

// GetMatch retrieves a match by ID
func (c *Controller) GetMatch(ctx context.Context, matchID model.MatchID) (*model.Match, error) {
	return c.storage.GetMatch(ctx, matchID)
}

// ControllerInterface defines the match controller operations, for mocking
type ControllerInterface interface {
	CreateMatch(ctx context.Context, hostID model.PlayerID, opts CreateOptions) (*model.Match, error)
	JoinMatch(ctx context.Context, matchID model.MatchID, playerID model.PlayerID) (*model.Match, error)
	SubmitMove(ctx context.Context, matchID model.MatchID, playerID model.PlayerID, mv model.Move) (*model.MoveResult, error)
	LegalMoves(ctx context.Context, matchID model.MatchID) ([]model.Move, error)
	ResetMatch(ctx context.Context, matchID model.MatchID, playerID model.PlayerID) (*model.Match, error)
	ResignMatch(ctx context.Context, matchID model.MatchID, playerID model.PlayerID) (*model.Match, error)
	GetMatch(ctx context.Context, matchID model.MatchID) (*model.Match, error)
}

var _ ControllerInterface = (*Controller)(nil)
