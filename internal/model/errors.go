package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrPlayerSeated   = errors.New("player has an active seat in the current game")

	// Game lifecycle errors
	ErrGameNotFound      = errors.New("game not found")
	ErrNoActiveGame      = errors.New("no game in progress")
	ErrGameInProgress    = errors.New("a game is already in progress")
	ErrInsufficientSeats = errors.New("a game needs at least 2 seats")
	ErrSeatsUnresolved   = errors.New("every seat must cash out before the game can end")
)
