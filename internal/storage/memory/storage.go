package memory

import (
	"context"
	"sync"

	"github.com/hleth/pokerledger/internal/model"
	"github.com/hleth/pokerledger/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Entries are deep-copied on both save and load so the store never shares
// state with the engine.
type Storage struct {
	mu sync.RWMutex

	players       map[model.ProfileID][]model.Player
	groups        map[model.ProfileID][]model.Group
	games         map[model.ProfileID][]model.Game
	activeGameIDs map[model.ProfileID]model.GameID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:       make(map[model.ProfileID][]model.Player),
		groups:        make(map[model.ProfileID][]model.Group),
		games:         make(map[model.ProfileID][]model.Game),
		activeGameIDs: make(map[model.ProfileID]model.GameID),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) LoadPlayers(ctx context.Context, profile model.ProfileID) ([]model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.ClonePlayers(s.players[profile]), nil
}

func (s *Storage) SavePlayers(ctx context.Context, profile model.ProfileID, players []model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[profile] = model.ClonePlayers(players)
	return nil
}

func (s *Storage) LoadGroups(ctx context.Context, profile model.ProfileID) ([]model.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CloneGroups(s.groups[profile]), nil
}

func (s *Storage) SaveGroups(ctx context.Context, profile model.ProfileID, groups []model.Group) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups[profile] = model.CloneGroups(groups)
	return nil
}

func (s *Storage) LoadGames(ctx context.Context, profile model.ProfileID) ([]model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.CloneGames(s.games[profile]), nil
}

func (s *Storage) SaveGames(ctx context.Context, profile model.ProfileID, games []model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[profile] = model.CloneGames(games)
	return nil
}

func (s *Storage) LoadActiveGameID(ctx context.Context, profile model.ProfileID) (model.GameID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeGameIDs[profile], nil
}

func (s *Storage) SaveActiveGameID(ctx context.Context, profile model.ProfileID, id model.GameID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeGameIDs[profile] = id
	return nil
}

func (s *Storage) ClearActiveGameID(ctx context.Context, profile model.ProfileID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.activeGameIDs, profile)
	return nil
}
