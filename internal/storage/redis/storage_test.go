package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/hleth/pokerledger/internal/model"
	"github.com/hleth/pokerledger/internal/testutil"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

func (s *StorageSuite) TestLoadEmptyProfile() {
	players, err := s.storage.LoadPlayers(s.ctx, "p1")
	s.Require().NoError(err)
	s.Empty(players)

	groups, err := s.storage.LoadGroups(s.ctx, "p1")
	s.Require().NoError(err)
	s.Empty(groups)

	games, err := s.storage.LoadGames(s.ctx, "p1")
	s.Require().NoError(err)
	s.Empty(games)

	id, err := s.storage.LoadActiveGameID(s.ctx, "p1")
	s.Require().NoError(err)
	s.Empty(id)
}

func (s *StorageSuite) TestPlayersRoundTrip() {
	players := []model.Player{
		{ID: "a", Name: "Alice", TotalBuyIns: 100, TotalCashOuts: 150, NetProfits: 50, GamesPlayed: 3},
		{ID: "b", Name: "Bob"},
	}
	s.Require().NoError(s.storage.SavePlayers(s.ctx, "p1", players))

	loaded, err := s.storage.LoadPlayers(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(players, loaded)
}

func (s *StorageSuite) TestGroupsRoundTrip() {
	groups := []model.Group{
		{ID: "g1", Name: "Regulars", PlayerIDs: []model.PlayerID{"a", "b"}},
	}
	s.Require().NoError(s.storage.SaveGroups(s.ctx, "p1", groups))

	loaded, err := s.storage.LoadGroups(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(groups, loaded)
}

func (s *StorageSuite) TestGamesRoundTrip() {
	ended := time.Date(2025, 3, 1, 23, 0, 0, 0, time.UTC)
	games := []model.Game{
		{
			ID:       "g1",
			Date:     time.Date(2025, 3, 1, 19, 0, 0, 0, time.UTC),
			EndedAt:  &ended,
			IsActive: false,
			Players: []model.Seat{
				{PlayerID: "a", Name: "Alice", BuyIn: 10, CashOut: model.CashOutAmount(30)},
				{PlayerID: "b", Name: "Bob", BuyIn: 20, IsActive: true},
			},
		},
	}
	s.Require().NoError(s.storage.SaveGames(s.ctx, "p1", games))

	loaded, err := s.storage.LoadGames(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(games, loaded)
}

func (s *StorageSuite) TestActiveGameIDStoredAsPlainString() {
	s.Require().NoError(s.storage.SaveActiveGameID(s.ctx, "p1", "g1"))

	raw, err := s.mini.Get("pokerledger:p1:active_game")
	s.Require().NoError(err)
	s.Equal("g1", raw)

	id, err := s.storage.LoadActiveGameID(s.ctx, "p1")
	s.Require().NoError(err)
	s.Equal(model.GameID("g1"), id)

	s.Require().NoError(s.storage.ClearActiveGameID(s.ctx, "p1"))
	id, err = s.storage.LoadActiveGameID(s.ctx, "p1")
	s.Require().NoError(err)
	s.Empty(id)
}

func (s *StorageSuite) TestKeyLayout() {
	s.Require().NoError(s.storage.SavePlayers(s.ctx, "p1", []model.Player{{ID: "a", Name: "Alice"}}))
	s.Require().NoError(s.storage.SaveGroups(s.ctx, "p1", nil))
	s.Require().NoError(s.storage.SaveGames(s.ctx, "p1", nil))

	s.True(s.mini.Exists("pokerledger:p1:players"))
	s.True(s.mini.Exists("pokerledger:p1:groups"))
	s.True(s.mini.Exists("pokerledger:p1:games"))
}

func (s *StorageSuite) TestProfilesAreIsolated() {
	s.Require().NoError(s.storage.SavePlayers(s.ctx, "p1", []model.Player{{ID: "a", Name: "Alice"}}))
	s.Require().NoError(s.storage.SavePlayers(s.ctx, "p2", []model.Player{{ID: "b", Name: "Bob"}}))

	p1, err := s.storage.LoadPlayers(s.ctx, "p1")
	s.Require().NoError(err)
	p2, err := s.storage.LoadPlayers(s.ctx, "p2")
	s.Require().NoError(err)

	s.Require().Len(p1, 1)
	s.Require().Len(p2, 1)
	s.Equal("Alice", p1[0].Name)
	s.Equal("Bob", p2[0].Name)
}

func (s *StorageSuite) TestMalformedEntryLoadsEmpty() {
	s.Require().NoError(s.mini.Set("pokerledger:p1:players", "{not json"))

	players, err := s.storage.LoadPlayers(s.ctx, "p1")
	s.Require().NoError(err)
	s.Empty(players)
}

func (s *StorageSuite) TestPersistedFieldNames() {
	s.Require().NoError(s.storage.SavePlayers(s.ctx, "p1", []model.Player{
		{ID: "a", Name: "Alice", TotalBuyIns: 10, TotalCashOuts: 30, NetProfits: 20, GamesPlayed: 1},
	}))

	raw, err := s.mini.Get("pokerledger:p1:players")
	s.Require().NoError(err)
	s.JSONEq(`[{"id":"a","name":"Alice","totalBuyIns":10,"totalCashOuts":30,"netProfits":20,"gamesPlayed":1}]`, raw)
}
