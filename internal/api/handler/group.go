package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/hleth/pokerledger/internal/api/request"
	"github.com/hleth/pokerledger/internal/api/response"
	"github.com/hleth/pokerledger/internal/ledger"
	"github.com/hleth/pokerledger/internal/model"
)

// GroupHandler handles player group endpoints
type GroupHandler struct {
	ledger *ledger.Ledger
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(l *ledger.Ledger) *GroupHandler {
	return &GroupHandler{ledger: l}
}

// List handles GET /api/v1/groups
func (h *GroupHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.GroupsFromModel(h.ledger.Groups()))
}

// Create handles POST /api/v1/groups
func (h *GroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		WriteError(w, NewInvalidRequestError("name is required"))
		return
	}

	memberIDs := make([]model.PlayerID, 0, len(req.PlayerIDs))
	for _, id := range req.PlayerIDs {
		if id == "" {
			WriteError(w, NewInvalidRequestError("playerIds must not contain empty ids"))
			return
		}
		memberIDs = append(memberIDs, model.PlayerID(id))
	}

	group, err := h.ledger.CreateGroup(r.Context(), name, memberIDs)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.GroupFromModel(&group))
}
