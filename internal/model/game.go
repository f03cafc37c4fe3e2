package model

import "time"

// GameID uniquely identifies a game
type GameID string

// Seat is a player's participation record within one game.
//
// PlayerID is a weak reference: it survives deletion of the player so
// historical ledgers stay intact. Name is a snapshot of the player's display
// name at seating time, kept in sync on rename only while the owning game is
// still open. BuyIn is cumulative and only ever grows. CashOut is nil while
// the seat is active and set exactly once when the player leaves the table.
type Seat struct {
	PlayerID PlayerID `json:"playerId"`
	Name     string   `json:"name"`
	BuyIn    float64  `json:"buyIn"`
	CashOut  *float64 `json:"cashOut"`
	IsActive bool     `json:"isActive"`
}

// CashOutOrZero returns the recorded cash-out, defaulting to zero when the
// seat has none
func (s *Seat) CashOutOrZero() float64 {
	if s.CashOut == nil {
		return 0
	}
	return *s.CashOut
}

// Profit returns cash-out (or zero) minus cumulative buy-in for this seat
func (s *Seat) Profit() float64 {
	return s.CashOutOrZero() - s.BuyIn
}

// Resolved reports whether the seat no longer blocks ending the game:
// either the player has left, or a cash-out is recorded
func (s *Seat) Resolved() bool {
	return !s.IsActive || s.CashOut != nil
}

// Game represents one poker session. At most one game is open (IsActive)
// at any time system-wide. Seats are append-only: they are never removed,
// only mutated while the game is open. Once a game closes, nothing in it
// may change again.
type Game struct {
	ID       GameID     `json:"id"`
	Date     time.Time  `json:"date"`
	IsActive bool       `json:"isActive"`
	EndedAt  *time.Time `json:"endedAt,omitempty"`
	Players  []Seat     `json:"players"`
}

// Seat returns the seat held by the given player, or nil if they are not
// seated in this game
func (g *Game) Seat(id PlayerID) *Seat {
	for i := range g.Players {
		if g.Players[i].PlayerID == id {
			return &g.Players[i]
		}
	}
	return nil
}

// HasSeat reports whether the given player holds a seat in this game
func (g *Game) HasSeat(id PlayerID) bool {
	return g.Seat(id) != nil
}

// AllSeatsResolved reports whether every seat is resolved, the precondition
// for ending the game
func (g *Game) AllSeatsResolved() bool {
	for i := range g.Players {
		if !g.Players[i].Resolved() {
			return false
		}
	}
	return true
}

// EndTime returns when the game finished, falling back to the start date
// for games with no recorded end
func (g *Game) EndTime() time.Time {
	if g.EndedAt != nil {
		return *g.EndedAt
	}
	return g.Date
}
