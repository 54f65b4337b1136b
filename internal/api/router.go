package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/broadsidegame/broadside-go/internal/api/handler"
	"github.com/broadsidegame/broadside-go/internal/api/middleware"
	"github.com/broadsidegame/broadside-go/internal/services/auth"
	"github.com/broadsidegame/broadside-go/internal/services/cpu"
	"github.com/broadsidegame/broadside-go/internal/services/match"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger          *slog.Logger
	AuthService     *auth.Service
	MatchController match.ControllerInterface
	CPUService      *cpu.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	playerHandler := handler.NewPlayerHandler(cfg.AuthService)
	matchHandler := handler.NewMatchHandler(cfg.MatchController, cfg.CPUService)

	authMiddleware := middleware.Auth(cfg.AuthService)
	optionalAuthMiddleware := middleware.OptionalAuth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Player routes (no auth required for creating players/logging in)
	api.HandleFunc("/players/guest", playerHandler.CreateGuest).Methods(http.MethodPost)
	api.HandleFunc("/players/register", playerHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/players/login", playerHandler.Login).Methods(http.MethodPost)

	// Protected player routes
	playerProtected := api.PathPrefix("/players").Subrouter()
	playerProtected.Use(authMiddleware)
	playerProtected.HandleFunc("/me", playerHandler.GetMe).Methods(http.MethodGet)

	// Match routes requiring a seat at the table
	matches := api.PathPrefix("/matches").Subrouter()
	matches.Use(authMiddleware)
	matches.HandleFunc("", matchHandler.Create).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/join", matchHandler.Join).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/moves", matchHandler.Move).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/reset", matchHandler.Reset).Methods(http.MethodPost)
	matches.HandleFunc("/{id}/resign", matchHandler.Resign).Methods(http.MethodPost)

	// Spectator-friendly match views
	spectate := api.PathPrefix("/matches").Subrouter()
	spectate.Use(optionalAuthMiddleware)
	spectate.HandleFunc("/{id}", matchHandler.Get).Methods(http.MethodGet)
	spectate.HandleFunc("/{id}/moves/legal", matchHandler.LegalMoves).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
