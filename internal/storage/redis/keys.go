package redis

import (
	"fmt"

	"github.com/hleth/pokerledger/internal/model"
)

// Key prefix for all ledger data
const keyPrefix = "pokerledger"

// Entry names within a profile namespace
const (
	entryPlayers    = "players"
	entryGroups     = "groups"
	entryGames      = "games"
	entryActiveGame = "active_game"
)

// entryKey returns the Redis key for one named entry in a profile namespace
func entryKey(profile model.ProfileID, entry string) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, profile, entry)
}
