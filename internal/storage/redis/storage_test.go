package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/broadsidegame/broadside-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	cfg := DefaultConfig()
	cfg.GuestPlayerTTL = time.Hour
	cfg.MatchTTL = time.Hour

	s.storage = NewWithClient(client, cfg)
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:          "player-1",
		DisplayName: "Alice",
		IsGuest:     false,
		CreatedAt:   time.Now(),
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal(player.DisplayName, retrieved.DisplayName)
}

func (s *StorageSuite) TestGuestPlayerExpires() {
	player := &model.Player{ID: "guest-1", DisplayName: "Guest", IsGuest: true}
	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	s.mini.FastForward(2 * time.Hour)

	_, err = s.storage.GetPlayer(s.ctx, "guest-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestRegisteredAccountPlayerDoesNotExpire() {
	player := &model.Player{ID: "player-1", DisplayName: "Alice", IsGuest: false}
	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	s.mini.FastForward(48 * time.Hour)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("player-1"), retrieved.ID)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Registered player tests

func (s *StorageSuite) TestSaveAndGetRegisteredPlayer() {
	rp := &model.RegisteredPlayer{
		PlayerID:     "player-1",
		Username:     "alice",
		PasswordHash: "hashed",
		CreatedAt:    time.Now(),
	}

	err := s.storage.SaveRegisteredPlayer(s.ctx, rp)
	s.Require().NoError(err)

	byID, err := s.storage.GetRegisteredPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal("alice", byID.Username)

	byName, err := s.storage.GetRegisteredPlayerByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("player-1"), byName.PlayerID)
}

func (s *StorageSuite) TestGetRegisteredPlayerByUsernameNotFound() {
	_, err := s.storage.GetRegisteredPlayerByUsername(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Match tests

func (s *StorageSuite) TestSaveAndGetMatchRoundTripsBoardState() {
	board := model.NewBoardState()
	board.SetCell(1, 1, 0, 2, model.MarkX)
	board.SetWinner(0, 0, model.MarkO)
	board.ToMove = model.MarkO
	board.Active = model.Constraint{BoardX: 0, BoardY: 2}
	board.HasLastMove = true
	board.LastMove = model.Move{BoardX: 1, BoardY: 1, CellX: 0, CellY: 2}
	board.MoveCount = 1

	match := &model.Match{
		ID:          "MATCH1",
		Status:      model.MatchStatusInProgress,
		Board:       board,
		SeatX:       "player-1",
		SeatO:       "cpu-1",
		CPUSeat:     model.MarkO,
		CPUStrategy: model.CPUStrategyMinimax,
		CreatedAt:   time.Now().UTC(),
	}

	err := s.storage.SaveMatch(s.ctx, match)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetMatch(s.ctx, "MATCH1")
	s.Require().NoError(err)

	// The restored snapshot must carry the constraint explicitly, not
	// require re-derivation from the move history
	s.Equal(model.Constraint{BoardX: 0, BoardY: 2}, retrieved.Board.Active)
	s.Equal(model.MarkX, retrieved.Board.CellAt(1, 1, 0, 2))
	s.Equal(model.MarkO, retrieved.Board.WinnerAt(0, 0))
	s.Equal(model.MarkO, retrieved.Board.ToMove)
	s.Equal(1, retrieved.Board.MoveCount)
	s.Equal(model.MarkO, retrieved.CPUSeat)
	s.Equal(model.CPUStrategyMinimax, retrieved.CPUStrategy)
}

func (s *StorageSuite) TestGetMatchNotFound() {
	_, err := s.storage.GetMatch(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *StorageSuite) TestDeleteMatch() {
	_ = s.storage.SaveMatch(s.ctx, &model.Match{ID: "MATCH1"})

	err := s.storage.DeleteMatch(s.ctx, "MATCH1")
	s.Require().NoError(err)

	_, err = s.storage.GetMatch(s.ctx, "MATCH1")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *StorageSuite) TestMatchExists() {
	exists, err := s.storage.MatchExists(s.ctx, "MATCH1")
	s.Require().NoError(err)
	s.False(exists)

	_ = s.storage.SaveMatch(s.ctx, &model.Match{ID: "MATCH1"})

	exists, err = s.storage.MatchExists(s.ctx, "MATCH1")
	s.Require().NoError(err)
	s.True(exists)
}
