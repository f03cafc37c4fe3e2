package model

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player represents a person in the roster.
//
// The cumulative totals cover ended games only. They are updated exclusively
// by the end-game fold, all four together, and are never mutated directly.
type Player struct {
	ID            PlayerID `json:"id"`
	Name          string   `json:"name"`
	TotalBuyIns   float64  `json:"totalBuyIns"`
	TotalCashOuts float64  `json:"totalCashOuts"`
	NetProfits    float64  `json:"netProfits"`
	GamesPlayed   int      `json:"gamesPlayed"`
}
