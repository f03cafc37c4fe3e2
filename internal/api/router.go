package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/hleth/pokerledger/internal/api/handler"
	"github.com/hleth/pokerledger/internal/api/middleware"
	"github.com/hleth/pokerledger/internal/ledger"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger *slog.Logger
	Ledger *ledger.Ledger
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	playerHandler := handler.NewPlayerHandler(cfg.Ledger)
	groupHandler := handler.NewGroupHandler(cfg.Ledger)
	gameHandler := handler.NewGameHandler(cfg.Ledger)

	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player registry
	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players", playerHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/players/{id}", playerHandler.Rename).Methods(http.MethodPatch)
	api.HandleFunc("/players/{id}", playerHandler.Delete).Methods(http.MethodDelete)

	// Groups
	api.HandleFunc("/groups", groupHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/groups", groupHandler.Create).Methods(http.MethodPost)

	// Game lifecycle. The /games/active subtree addresses the single open
	// game; registration order matters so "active" is not matched as an id.
	api.HandleFunc("/games", gameHandler.Start).Methods(http.MethodPost)
	api.HandleFunc("/games", gameHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/games/active", gameHandler.GetActive).Methods(http.MethodGet)
	api.HandleFunc("/games/active/players", gameHandler.Join).Methods(http.MethodPost)
	api.HandleFunc("/games/active/players/{id}/buyin", gameHandler.BuyIn).Methods(http.MethodPost)
	api.HandleFunc("/games/active/players/{id}/cashout", gameHandler.CashOut).Methods(http.MethodPost)
	api.HandleFunc("/games/active/end", gameHandler.End).Methods(http.MethodPost)
	api.HandleFunc("/games/{id}", gameHandler.Get).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
