package response

import (
	"time"

	"github.com/hleth/pokerledger/internal/ledger"
	"github.com/hleth/pokerledger/internal/model"
)

// Player represents a player in API responses
type Player struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TotalBuyIns   float64 `json:"totalBuyIns"`
	TotalCashOuts float64 `json:"totalCashOuts"`
	NetProfits    float64 `json:"netProfits"`
	GamesPlayed   int     `json:"gamesPlayed"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:            string(p.ID),
		Name:          p.Name,
		TotalBuyIns:   p.TotalBuyIns,
		TotalCashOuts: p.TotalCashOuts,
		NetProfits:    p.NetProfits,
		GamesPlayed:   p.GamesPlayed,
	}
}

// PlayersFromModel converts a slice of players
func PlayersFromModel(players []model.Player) []Player {
	out := make([]Player, 0, len(players))
	for i := range players {
		out = append(out, PlayerFromModel(&players[i]))
	}
	return out
}

// Group represents a player group in API responses
type Group struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	PlayerIDs []string `json:"playerIds"`
}

// GroupFromModel converts a model.Group to a response Group
func GroupFromModel(g *model.Group) Group {
	ids := make([]string, 0, len(g.PlayerIDs))
	for _, id := range g.PlayerIDs {
		ids = append(ids, string(id))
	}
	return Group{
		ID:        string(g.ID),
		Name:      g.Name,
		PlayerIDs: ids,
	}
}

// GroupsFromModel converts a slice of groups
func GroupsFromModel(groups []model.Group) []Group {
	out := make([]Group, 0, len(groups))
	for i := range groups {
		out = append(out, GroupFromModel(&groups[i]))
	}
	return out
}

// Seat represents one seat in a game, with its derived profit
type Seat struct {
	PlayerID string   `json:"playerId"`
	Name     string   `json:"name"`
	BuyIn    float64  `json:"buyIn"`
	CashOut  *float64 `json:"cashOut"`
	IsActive bool     `json:"isActive"`
	Profit   float64  `json:"profit"`
}

// SeatFromModel converts a model.Seat to a response Seat
func SeatFromModel(s *model.Seat) Seat {
	return Seat{
		PlayerID: string(s.PlayerID),
		Name:     s.Name,
		BuyIn:    s.BuyIn,
		CashOut:  s.CashOut,
		IsActive: s.IsActive,
		Profit:   ledger.SeatProfit(s),
	}
}

// GameTotals are the derived totals for one game
type GameTotals struct {
	Seats         int     `json:"seats"`
	TotalBuyIns   float64 `json:"totalBuyIns"`
	TotalCashOuts float64 `json:"totalCashOuts"`
	Difference    float64 `json:"difference"`
}

// Game represents a game in API responses
type Game struct {
	ID       string     `json:"id"`
	Date     time.Time  `json:"date"`
	EndedAt  *time.Time `json:"endedAt,omitempty"`
	IsActive bool       `json:"isActive"`
	Players  []Seat     `json:"players"`
	Totals   GameTotals `json:"totals"`
}

// GameFromModel converts a model.Game to a response Game
func GameFromModel(g *model.Game) Game {
	seats := make([]Seat, 0, len(g.Players))
	for i := range g.Players {
		seats = append(seats, SeatFromModel(&g.Players[i]))
	}
	totals := ledger.Totals(g)
	return Game{
		ID:       string(g.ID),
		Date:     g.Date,
		EndedAt:  g.EndedAt,
		IsActive: g.IsActive,
		Players:  seats,
		Totals: GameTotals{
			Seats:         totals.Seats,
			TotalBuyIns:   totals.TotalBuyIns,
			TotalCashOuts: totals.TotalCashOuts,
			Difference:    totals.Difference,
		},
	}
}

// GamesFromModel converts a slice of games
func GamesFromModel(games []model.Game) []Game {
	out := make([]Game, 0, len(games))
	for i := range games {
		out = append(out, GameFromModel(&games[i]))
	}
	return out
}
