package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/hleth/pokerledger/internal/api/request"
	"github.com/hleth/pokerledger/internal/api/response"
	"github.com/hleth/pokerledger/internal/ledger"
	"github.com/hleth/pokerledger/internal/model"
)

// PlayerHandler handles player registry endpoints
type PlayerHandler struct {
	ledger *ledger.Ledger
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(l *ledger.Ledger) *PlayerHandler {
	return &PlayerHandler{ledger: l}
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.PlayersFromModel(h.ledger.Players()))
}

// Create handles POST /api/v1/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	player, err := h.ledger.AddPlayer(r.Context(), name)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(&player))
}

// Rename handles PATCH /api/v1/players/{id}
func (h *PlayerHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	var req request.RenamePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	if err := h.ledger.RenamePlayer(r.Context(), id, name); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Delete handles DELETE /api/v1/players/{id}
func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	if err := h.ledger.DeletePlayer(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
