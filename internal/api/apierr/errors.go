package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hleth/pokerledger/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodePlayerNotFound    = "PLAYER_NOT_FOUND"
	CodePlayerSeated      = "PLAYER_SEATED"
	CodeGameNotFound      = "GAME_NOT_FOUND"
	CodeNoActiveGame      = "NO_ACTIVE_GAME"
	CodeGameInProgress    = "GAME_IN_PROGRESS"
	CodeInsufficientSeats = "INSUFFICIENT_SEATS"
	CodeSeatsUnresolved   = "SEATS_UNRESOLVED"
	CodeInternalError     = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrPlayerSeated):
		return &httpError{http.StatusConflict, APIError{CodePlayerSeated, "Player is seated in the active game"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrNoActiveGame):
		return &httpError{http.StatusNotFound, APIError{CodeNoActiveGame, "No game in progress"}}
	case errors.Is(err, model.ErrGameInProgress):
		return &httpError{http.StatusConflict, APIError{CodeGameInProgress, "A game is already in progress"}}
	case errors.Is(err, model.ErrInsufficientSeats):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientSeats, "A game needs at least 2 seated players"}}
	case errors.Is(err, model.ErrSeatsUnresolved):
		return &httpError{http.StatusConflict, APIError{CodeSeatsUnresolved, "All seated players must cash out first"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
