package ledger

import (
	"sort"

	"github.com/hleth/pokerledger/internal/model"
	"github.com/hleth/pokerledger/internal/money"
)

// GameTotals are the derived per-game ledger figures. In a fair session the
// difference is zero (money conserved), but nothing enforces that; it is
// purely informational.
type GameTotals struct {
	Seats         int
	TotalBuyIns   float64
	TotalCashOuts float64
	Difference    float64
}

// Totals computes the ledger totals for one game
func Totals(g *model.Game) GameTotals {
	var buyIns, cashOuts float64
	for i := range g.Players {
		buyIns += g.Players[i].BuyIn
		cashOuts += g.Players[i].CashOutOrZero()
	}
	buyIns = money.Round2(buyIns)
	cashOuts = money.Round2(cashOuts)
	return GameTotals{
		Seats:         len(g.Players),
		TotalBuyIns:   buyIns,
		TotalCashOuts: cashOuts,
		Difference:    money.Round2(buyIns - cashOuts),
	}
}

// SeatProfit returns the seat's rounded profit (cash-out or zero, minus
// cumulative buy-in)
func SeatProfit(s *model.Seat) float64 {
	return money.Round2(s.Profit())
}

// Game returns a snapshot of one game by id
func (l *Ledger) Game(id model.GameID) (model.Game, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.games {
		if l.games[i].ID == id {
			return l.games[i].Clone(), nil
		}
	}
	return model.Game{}, model.ErrGameNotFound
}

// PastGames returns all closed games, most recently ended first. Games with
// no recorded end timestamp sort by their start date.
func (l *Ledger) PastGames() []model.Game {
	l.mu.Lock()
	defer l.mu.Unlock()

	var past []model.Game
	for i := range l.games {
		if !l.games[i].IsActive {
			past = append(past, l.games[i].Clone())
		}
	}
	sort.SliceStable(past, func(i, j int) bool {
		return past[i].EndTime().After(past[j].EndTime())
	})
	return past
}
