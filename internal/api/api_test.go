package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hleth/pokerledger/internal/api"
	"github.com/hleth/pokerledger/internal/api/response"
	"github.com/hleth/pokerledger/internal/factory"
)

// testServer wires a router over in-memory storage
type testServer struct {
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with real random/clock
	app, err := factory.New(factory.Config{Profile: "test-profile"})
	require.NoError(t, err)
	require.NoError(t, app.Ledger.Load(context.Background()))

	router := api.NewRouter(api.RouterConfig{
		Logger: logger,
		Ledger: app.Ledger,
	})

	return &testServer{handler: router}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func (ts *testServer) createPlayer(t *testing.T, name string) response.Player {
	t.Helper()
	rr := ts.request(http.MethodPost, "/api/v1/players", map[string]string{"name": name})
	require.Equal(t, http.StatusCreated, rr.Code)

	var player response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &player))
	return player
}

func (ts *testServer) startGame(t *testing.T, seats ...map[string]any) response.Game {
	t.Helper()
	rr := ts.request(http.MethodPost, "/api/v1/games", map[string]any{"players": seats})
	require.Equal(t, http.StatusCreated, rr.Code)

	var game response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &game))
	return game
}

func (ts *testServer) cashOut(t *testing.T, playerID string, amount float64) {
	t.Helper()
	rr := ts.request(http.MethodPost,
		fmt.Sprintf("/api/v1/games/active/players/%s/cashout", playerID),
		map[string]float64{"amount": amount})
	require.Equal(t, http.StatusNoContent, rr.Code)
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestCreatePlayer(t *testing.T) {
	ts := newTestServer(t)

	player := ts.createPlayer(t, "Alice")
	assert.NotEmpty(t, player.ID)
	assert.Equal(t, "Alice", player.Name)
	assert.Zero(t, player.GamesPlayed)

	rr := ts.request(http.MethodGet, "/api/v1/players", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	var players []response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &players))
	assert.Len(t, players, 1)
}

func TestCreatePlayerRequiresName(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/players", map[string]string{"name": "   "})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "INVALID_REQUEST")
}

func TestRenamePlayer(t *testing.T) {
	ts := newTestServer(t)
	player := ts.createPlayer(t, "Alice")

	rr := ts.request(http.MethodPatch, "/api/v1/players/"+player.ID, map[string]string{"name": "Alicia"})
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/players", nil)
	var players []response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &players))
	require.Len(t, players, 1)
	assert.Equal(t, "Alicia", players[0].Name)
}

func TestDeleteSeatedPlayerConflicts(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createPlayer(t, "Alice")
	bob := ts.createPlayer(t, "Bob")
	ts.startGame(t,
		map[string]any{"playerId": alice.ID, "buyIn": 10},
		map[string]any{"playerId": bob.ID, "buyIn": 20},
	)

	rr := ts.request(http.MethodDelete, "/api/v1/players/"+alice.ID, nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "PLAYER_SEATED")
}

func TestCreateGroup(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createPlayer(t, "Alice")

	rr := ts.request(http.MethodPost, "/api/v1/groups", map[string]any{
		"name":      "Regulars",
		"playerIds": []string{alice.ID},
	})
	assert.Equal(t, http.StatusCreated, rr.Code)

	var group response.Group
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &group))
	assert.Equal(t, "Regulars", group.Name)
	assert.Equal(t, []string{alice.ID}, group.PlayerIDs)
}

func TestStartGame(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createPlayer(t, "Alice")
	bob := ts.createPlayer(t, "Bob")

	game := ts.startGame(t,
		map[string]any{"playerId": alice.ID, "buyIn": 10},
		map[string]any{"playerId": bob.ID, "buyIn": 20},
	)

	assert.True(t, game.IsActive)
	require.Len(t, game.Players, 2)
	assert.Equal(t, "Alice", game.Players[0].Name)
	assert.Equal(t, 30.0, game.Totals.TotalBuyIns)

	rr := ts.request(http.MethodGet, "/api/v1/games/active", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestStartGameValidation(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createPlayer(t, "Alice")
	bob := ts.createPlayer(t, "Bob")

	// single seat is rejected by the engine
	rr := ts.request(http.MethodPost, "/api/v1/games", map[string]any{
		"players": []map[string]any{{"playerId": alice.ID, "buyIn": 10}},
	})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "INSUFFICIENT_SEATS")

	// non-positive buy-ins never reach the engine
	rr = ts.request(http.MethodPost, "/api/v1/games", map[string]any{
		"players": []map[string]any{
			{"playerId": alice.ID, "buyIn": 0},
			{"playerId": bob.ID, "buyIn": 20},
		},
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestStartSecondGameConflicts(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createPlayer(t, "Alice")
	bob := ts.createPlayer(t, "Bob")
	ts.startGame(t,
		map[string]any{"playerId": alice.ID, "buyIn": 10},
		map[string]any{"playerId": bob.ID, "buyIn": 20},
	)

	rr := ts.request(http.MethodPost, "/api/v1/games", map[string]any{
		"players": []map[string]any{
			{"playerId": alice.ID, "buyIn": 10},
			{"playerId": bob.ID, "buyIn": 20},
		},
	})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "GAME_IN_PROGRESS")
}

func TestActiveGameNotFoundWhenNoneOpen(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/games/active", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "NO_ACTIVE_GAME")
}

func TestBuyInAndCashOut(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createPlayer(t, "Alice")
	bob := ts.createPlayer(t, "Bob")
	ts.startGame(t,
		map[string]any{"playerId": alice.ID, "buyIn": 10},
		map[string]any{"playerId": bob.ID, "buyIn": 20},
	)

	rr := ts.request(http.MethodPost,
		fmt.Sprintf("/api/v1/games/active/players/%s/buyin", alice.ID),
		map[string]float64{"amount": 15})
	assert.Equal(t, http.StatusNoContent, rr.Code)

	ts.cashOut(t, alice.ID, 40)

	rr = ts.request(http.MethodGet, "/api/v1/games/active", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var game response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &game))
	require.Len(t, game.Players, 2)

	seat := game.Players[0]
	assert.Equal(t, alice.ID, seat.PlayerID)
	assert.Equal(t, 25.0, seat.BuyIn)
	require.NotNil(t, seat.CashOut)
	assert.Equal(t, 40.0, *seat.CashOut)
	assert.False(t, seat.IsActive)
	assert.Equal(t, 15.0, seat.Profit)
}

func TestEndGameRequiresResolvedSeats(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createPlayer(t, "Alice")
	bob := ts.createPlayer(t, "Bob")
	ts.startGame(t,
		map[string]any{"playerId": alice.ID, "buyIn": 10},
		map[string]any{"playerId": bob.ID, "buyIn": 20},
	)

	rr := ts.request(http.MethodPost, "/api/v1/games/active/end", nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Contains(t, rr.Body.String(), "SEATS_UNRESOLVED")
}

func TestEndGameFoldsStats(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createPlayer(t, "Alice")
	bob := ts.createPlayer(t, "Bob")
	ts.startGame(t,
		map[string]any{"playerId": alice.ID, "buyIn": 10},
		map[string]any{"playerId": bob.ID, "buyIn": 20},
	)
	ts.cashOut(t, alice.ID, 30)
	ts.cashOut(t, bob.ID, 15)

	rr := ts.request(http.MethodPost, "/api/v1/games/active/end", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var game response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &game))
	assert.False(t, game.IsActive)
	assert.NotNil(t, game.EndedAt)

	rr = ts.request(http.MethodGet, "/api/v1/players", nil)
	var players []response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &players))
	require.Len(t, players, 2)

	byID := map[string]response.Player{}
	for _, p := range players {
		byID[p.ID] = p
	}
	assert.Equal(t, 20.0, byID[alice.ID].NetProfits)
	assert.Equal(t, -5.0, byID[bob.ID].NetProfits)
	assert.Equal(t, 1, byID[alice.ID].GamesPlayed)

	// the closed game is now listed in history
	rr = ts.request(http.MethodGet, "/api/v1/games", nil)
	var past []response.Game
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &past))
	require.Len(t, past, 1)
	assert.Equal(t, game.ID, past[0].ID)
}

func TestEndGameWithoutActiveGame(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/games/active/end", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "NO_ACTIVE_GAME")
}

func TestGetGameByID(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.createPlayer(t, "Alice")
	bob := ts.createPlayer(t, "Bob")
	game := ts.startGame(t,
		map[string]any{"playerId": alice.ID, "buyIn": 10},
		map[string]any{"playerId": bob.ID, "buyIn": 20},
	)

	rr := ts.request(http.MethodGet, "/api/v1/games/"+game.ID, nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/games/nonexistent", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "GAME_NOT_FOUND")
}

func TestInvalidBody(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/players", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
