package handler

import (
	"encoding/json"
	"math"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hleth/pokerledger/internal/api/request"
	"github.com/hleth/pokerledger/internal/api/response"
	"github.com/hleth/pokerledger/internal/ledger"
	"github.com/hleth/pokerledger/internal/model"
)

// GameHandler handles game lifecycle endpoints
type GameHandler struct {
	ledger *ledger.Ledger
}

// NewGameHandler creates a new game handler
func NewGameHandler(l *ledger.Ledger) *GameHandler {
	return &GameHandler{ledger: l}
}

// validAmount rejects NaN and infinities; the caller decides the sign rule
func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Start handles POST /api/v1/games
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req request.StartGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	seats := make([]ledger.SeatRequest, 0, len(req.Players))
	for _, seat := range req.Players {
		if seat.PlayerID == "" {
			WriteError(w, NewInvalidRequestError("playerId is required for every seat"))
			return
		}
		if !validAmount(seat.BuyIn) || seat.BuyIn <= 0 {
			WriteError(w, NewInvalidRequestError("buyIn must be a positive amount"))
			return
		}
		seats = append(seats, ledger.SeatRequest{
			PlayerID: model.PlayerID(seat.PlayerID),
			BuyIn:    seat.BuyIn,
		})
	}

	game, err := h.ledger.StartGame(r.Context(), seats)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GameFromModel(&game))
}

// List handles GET /api/v1/games, returning past games newest first
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.GamesFromModel(h.ledger.PastGames()))
}

// Get handles GET /api/v1/games/{id}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	game, err := h.ledger.Game(id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(&game))
}

// GetActive handles GET /api/v1/games/active
func (h *GameHandler) GetActive(w http.ResponseWriter, r *http.Request) {
	game := h.ledger.ActiveGame()
	if game == nil {
		WriteError(w, model.ErrNoActiveGame)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(game))
}

// Join handles POST /api/v1/games/active/players
func (h *GameHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req request.JoinGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.PlayerID == "" {
		WriteError(w, NewInvalidRequestError("playerId is required"))
		return
	}
	if !validAmount(req.BuyIn) || req.BuyIn <= 0 {
		WriteError(w, NewInvalidRequestError("buyIn must be a positive amount"))
		return
	}

	if err := h.ledger.AddPlayerToGame(r.Context(), model.PlayerID(req.PlayerID), req.BuyIn); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// BuyIn handles POST /api/v1/games/active/players/{id}/buyin
func (h *GameHandler) BuyIn(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	var req request.BuyInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if !validAmount(req.Amount) || req.Amount <= 0 {
		WriteError(w, NewInvalidRequestError("amount must be a positive amount"))
		return
	}

	if err := h.ledger.UpdateBuyIn(r.Context(), id, req.Amount); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// CashOut handles POST /api/v1/games/active/players/{id}/cashout
func (h *GameHandler) CashOut(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	var req request.CashOutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if !validAmount(req.Amount) || req.Amount < 0 {
		WriteError(w, NewInvalidRequestError("amount must not be negative"))
		return
	}

	if err := h.ledger.LeaveTable(r.Context(), id, req.Amount); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// End handles POST /api/v1/games/active/end
func (h *GameHandler) End(w http.ResponseWriter, r *http.Request) {
	endedID, err := h.ledger.EndGame(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	game, err := h.ledger.Game(endedID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(&game))
}
