package model

import "errors"

// Errors returned by game construction and move application
var (
	// Construction errors
	ErrInvalidTeam       = errors.New("invalid team")
	ErrTooManyTeams      = errors.New("too many teams")
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	ErrInvalidRunLength  = errors.New("invalid run length")

	// Move errors
	ErrOutOfBounds      = errors.New("column out of bounds")
	ErrColumnFull       = errors.New("column is full")
	ErrNotThatTeamsTurn = errors.New("not that team's turn")
	ErrGameOver         = errors.New("game is already over")
)
