package model

// Clone helpers produce independent copies of ledger entities, so callers
// holding a snapshot cannot reach back into live engine or store state
// through shared slices and pointers.

// Clone returns a deep copy of the group
func (g *Group) Clone() Group {
	out := *g
	out.PlayerIDs = append([]PlayerID(nil), g.PlayerIDs...)
	return out
}

// Clone returns a deep copy of the game, including its seats
func (g *Game) Clone() Game {
	out := *g
	if g.EndedAt != nil {
		t := *g.EndedAt
		out.EndedAt = &t
	}
	out.Players = make([]Seat, len(g.Players))
	for i, s := range g.Players {
		out.Players[i] = s
		if s.CashOut != nil {
			c := *s.CashOut
			out.Players[i].CashOut = &c
		}
	}
	return out
}

// ClonePlayers returns a deep copy of a player list
func ClonePlayers(players []Player) []Player {
	out := make([]Player, len(players))
	copy(out, players)
	return out
}

// CloneGroups returns a deep copy of a group list
func CloneGroups(groups []Group) []Group {
	out := make([]Group, len(groups))
	for i := range groups {
		out[i] = groups[i].Clone()
	}
	return out
}

// CloneGames returns a deep copy of a game list
func CloneGames(games []Game) []Game {
	out := make([]Game, len(games))
	for i := range games {
		out[i] = games[i].Clone()
	}
	return out
}

// CashOutAmount is a convenience for building a seat's cash-out pointer
func CashOutAmount(v float64) *float64 {
	return &v
}
