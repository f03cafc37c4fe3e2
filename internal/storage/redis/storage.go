package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hleth/pokerledger/internal/model"
	"github.com/hleth/pokerledger/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
//
// Each profile namespace holds four independent entries. A missing or
// malformed entry loads as empty rather than failing, so one corrupt payload
// never takes the rest of the ledger down with it.
type Storage struct {
	client *redis.Client
	logger *slog.Logger
}

// New creates a new Redis storage instance
func New(cfg Config, logger *slog.Logger) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{client: client, logger: logger}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, logger *slog.Logger) *Storage {
	return &Storage{client: client, logger: logger}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// loadEntry fetches one entry's raw payload. A missing entry returns nil
// data and no error.
func (s *Storage) loadEntry(ctx context.Context, profile model.ProfileID, entry string) ([]byte, error) {
	data, err := s.client.Get(ctx, entryKey(profile, entry)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// decodeEntry unmarshals an entry payload into out. Malformed payloads are
// logged and treated as empty; out is left untouched in that case.
func (s *Storage) decodeEntry(profile model.ProfileID, entry string, data []byte, out any) {
	if len(data) == 0 {
		return
	}
	if err := json.Unmarshal(data, out); err != nil {
		s.logger.Warn("malformed stored entry, loading empty",
			slog.String("profile", string(profile)),
			slog.String("entry", entry),
			slog.String("error", err.Error()),
		)
	}
}

func (s *Storage) saveEntry(ctx context.Context, profile model.ProfileID, entry string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, entryKey(profile, entry), data, 0).Err()
}

func (s *Storage) LoadPlayers(ctx context.Context, profile model.ProfileID) ([]model.Player, error) {
	data, err := s.loadEntry(ctx, profile, entryPlayers)
	if err != nil {
		return nil, err
	}
	players := []model.Player{}
	s.decodeEntry(profile, entryPlayers, data, &players)
	return players, nil
}

func (s *Storage) SavePlayers(ctx context.Context, profile model.ProfileID, players []model.Player) error {
	return s.saveEntry(ctx, profile, entryPlayers, players)
}

func (s *Storage) LoadGroups(ctx context.Context, profile model.ProfileID) ([]model.Group, error) {
	data, err := s.loadEntry(ctx, profile, entryGroups)
	if err != nil {
		return nil, err
	}
	groups := []model.Group{}
	s.decodeEntry(profile, entryGroups, data, &groups)
	return groups, nil
}

func (s *Storage) SaveGroups(ctx context.Context, profile model.ProfileID, groups []model.Group) error {
	return s.saveEntry(ctx, profile, entryGroups, groups)
}

func (s *Storage) LoadGames(ctx context.Context, profile model.ProfileID) ([]model.Game, error) {
	data, err := s.loadEntry(ctx, profile, entryGames)
	if err != nil {
		return nil, err
	}
	games := []model.Game{}
	s.decodeEntry(profile, entryGames, data, &games)
	return games, nil
}

func (s *Storage) SaveGames(ctx context.Context, profile model.ProfileID, games []model.Game) error {
	return s.saveEntry(ctx, profile, entryGames, games)
}

func (s *Storage) LoadActiveGameID(ctx context.Context, profile model.ProfileID) (model.GameID, error) {
	// The hint is stored as a plain string, not JSON
	id, err := s.client.Get(ctx, entryKey(profile, entryActiveGame)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", err
	}
	return model.GameID(id), nil
}

func (s *Storage) SaveActiveGameID(ctx context.Context, profile model.ProfileID, id model.GameID) error {
	return s.client.Set(ctx, entryKey(profile, entryActiveGame), string(id), 0).Err()
}

func (s *Storage) ClearActiveGameID(ctx context.Context, profile model.ProfileID) error {
	return s.client.Del(ctx, entryKey(profile, entryActiveGame)).Err()
}
