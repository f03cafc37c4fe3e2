package storage

import (
	"context"

	"github.com/hleth/pokerledger/internal/model"
)

// Storage defines the interface for persisting ledger state.
//
// State is partitioned by an opaque profile id and laid out as four
// independent entries per profile: players, groups, games, and the active
// game id hint. Implementations must treat a missing or malformed entry as
// empty rather than failing the load; errors are reserved for the transport
// itself (e.g. a lost connection).
type Storage interface {
	LoadPlayers(ctx context.Context, profile model.ProfileID) ([]model.Player, error)
	SavePlayers(ctx context.Context, profile model.ProfileID, players []model.Player) error

	LoadGroups(ctx context.Context, profile model.ProfileID) ([]model.Group, error)
	SaveGroups(ctx context.Context, profile model.ProfileID, groups []model.Group) error

	LoadGames(ctx context.Context, profile model.ProfileID) ([]model.Game, error)
	SaveGames(ctx context.Context, profile model.ProfileID, games []model.Game) error

	// LoadActiveGameID returns the active-game hint, or "" when no game is open
	LoadActiveGameID(ctx context.Context, profile model.ProfileID) (model.GameID, error)
	SaveActiveGameID(ctx context.Context, profile model.ProfileID, id model.GameID) error
	ClearActiveGameID(ctx context.Context, profile model.ProfileID) error
}
