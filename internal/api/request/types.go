package request

// CreatePlayerRequest is the request body for adding a player
type CreatePlayerRequest struct {
	Name string `json:"name"`
}

// RenamePlayerRequest is the request body for renaming a player
type RenamePlayerRequest struct {
	Name string `json:"name"`
}

// CreateGroupRequest is the request body for creating a group
type CreateGroupRequest struct {
	Name      string   `json:"name"`
	PlayerIDs []string `json:"playerIds"`
}

// SeatRequest is one initial seat when starting a game
type SeatRequest struct {
	PlayerID string  `json:"playerId"`
	BuyIn    float64 `json:"buyIn"`
}

// StartGameRequest is the request body for starting a game
type StartGameRequest struct {
	Players []SeatRequest `json:"players"`
}

// JoinGameRequest is the request body for seating a player mid-game
type JoinGameRequest struct {
	PlayerID string  `json:"playerId"`
	BuyIn    float64 `json:"buyIn"`
}

// BuyInRequest is the request body for an additional buy-in
type BuyInRequest struct {
	Amount float64 `json:"amount"`
}

// CashOutRequest is the request body for cashing a player out
type CashOutRequest struct {
	Amount float64 `json:"amount"`
}
