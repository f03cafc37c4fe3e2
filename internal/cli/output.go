package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/hleth/pokerledger/internal/money"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case Group:
		o.printGroup(v)
	case []Group:
		o.printGroups(v)
	case Game:
		o.printGame(v)
	case []Game:
		o.printGames(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TotalBuyIns   float64 `json:"totalBuyIns"`
	TotalCashOuts float64 `json:"totalCashOuts"`
	NetProfits    float64 `json:"netProfits"`
	GamesPlayed   int     `json:"gamesPlayed"`
}

// Group response type
type Group struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	PlayerIDs []string `json:"playerIds"`
}

// Seat response type
type Seat struct {
	PlayerID string   `json:"playerId"`
	Name     string   `json:"name"`
	BuyIn    float64  `json:"buyIn"`
	CashOut  *float64 `json:"cashOut"`
	IsActive bool     `json:"isActive"`
	Profit   float64  `json:"profit"`
}

// GameTotals response type
type GameTotals struct {
	Seats         int     `json:"seats"`
	TotalBuyIns   float64 `json:"totalBuyIns"`
	TotalCashOuts float64 `json:"totalCashOuts"`
	Difference    float64 `json:"difference"`
}

// Game response type
type Game struct {
	ID       string     `json:"id"`
	Date     time.Time  `json:"date"`
	EndedAt  *time.Time `json:"endedAt,omitempty"`
	IsActive bool       `json:"isActive"`
	Players  []Seat     `json:"players"`
	Totals   GameTotals `json:"totals"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.Name, p.ID)
	fmt.Printf("Games Played: %d\n", p.GamesPlayed)
	fmt.Printf("Total Buy-Ins: %s\n", money.Format(p.TotalBuyIns, true))
	fmt.Printf("Total Cash-Outs: %s\n", money.Format(p.TotalCashOuts, true))
	fmt.Printf("Net Profit: %s\n", money.FormatSigned(p.NetProfits, true))
}

func (o *Output) printPlayers(players []Player) {
	if len(players) == 0 {
		fmt.Println("No players")
		return
	}
	fmt.Printf("Players (%d):\n", len(players))
	for _, p := range players {
		fmt.Printf("  - %s (%s): %d games, net %s\n",
			p.Name, p.ID, p.GamesPlayed, money.FormatSigned(p.NetProfits, true))
	}
}

func (o *Output) printGroup(g Group) {
	fmt.Printf("Group: %s (%s)\n", g.Name, g.ID)
	fmt.Printf("Members (%d):\n", len(g.PlayerIDs))
	for _, id := range g.PlayerIDs {
		fmt.Printf("  - %s\n", id)
	}
}

func (o *Output) printGroups(groups []Group) {
	if len(groups) == 0 {
		fmt.Println("No groups")
		return
	}
	fmt.Printf("Groups (%d):\n", len(groups))
	for _, g := range groups {
		fmt.Printf("  - %s (%s): %d members\n", g.Name, g.ID, len(g.PlayerIDs))
	}
}

func (o *Output) printGame(g Game) {
	status := "ended"
	if g.IsActive {
		status = "active"
	}
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("Status: %s\n", status)
	fmt.Printf("Started: %s\n", g.Date.Format(time.RFC3339))
	if g.EndedAt != nil {
		fmt.Printf("Ended: %s\n", g.EndedAt.Format(time.RFC3339))
	}
	fmt.Printf("Seats (%d):\n", len(g.Players))
	for _, seat := range g.Players {
		seatStatus := "cashed out"
		if seat.IsActive {
			seatStatus = "playing"
		}
		cashOut := "-"
		if seat.CashOut != nil {
			cashOut = money.Format(*seat.CashOut, true)
		}
		fmt.Printf("  - %s: in %s, out %s, profit %s [%s]\n",
			seat.Name,
			money.Format(seat.BuyIn, true),
			cashOut,
			money.FormatSigned(seat.Profit, true),
			seatStatus,
		)
	}
	fmt.Printf("Totals: in %s, out %s, difference %s\n",
		money.Format(g.Totals.TotalBuyIns, true),
		money.Format(g.Totals.TotalCashOuts, true),
		money.FormatSigned(g.Totals.Difference, true),
	)
}

func (o *Output) printGames(games []Game) {
	if len(games) == 0 {
		fmt.Println("No games")
		return
	}
	fmt.Printf("Games (%d):\n", len(games))
	for _, g := range games {
		when := g.Date
		if g.EndedAt != nil {
			when = *g.EndedAt
		}
		fmt.Printf("  - %s: %s, %d seats, in %s / out %s\n",
			g.ID,
			when.Format("2006-01-02"),
			len(g.Players),
			money.Format(g.Totals.TotalBuyIns, true),
			money.Format(g.Totals.TotalCashOuts, true),
		)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
