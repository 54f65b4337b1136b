package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Match errors
	ErrMatchNotFound    = errors.New("match not found")
	ErrMatchFull        = errors.New("match has no open seat")
	ErrAlreadyInMatch   = errors.New("player is already in match")
	ErrNotInMatch       = errors.New("player is not in match")
	ErrMatchNotStarted  = errors.New("match has not started")
	ErrMatchFinished    = errors.New("match is already finished")
	ErrNotPlayerTurn    = errors.New("not this player's turn")
	ErrInvalidStrategy  = errors.New("invalid cpu strategy")
	ErrInvalidMark      = errors.New("invalid mark")

	// Move errors
	ErrInvalidPosition = errors.New("invalid board position")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrBoardClosed     = errors.New("small board is already decided")
	ErrWrongBoard      = errors.New("move is outside the active board")
	ErrIllegalMove     = errors.New("illegal move")
)
