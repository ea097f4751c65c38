package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/brawlops/brawlsquad/internal/api/handler"
	"github.com/brawlops/brawlsquad/internal/api/middleware"
	appmiddleware "github.com/brawlops/brawlsquad/internal/middleware"
	"github.com/brawlops/brawlsquad/internal/services/auth"
	"github.com/brawlops/brawlsquad/internal/services/mission"
	"github.com/brawlops/brawlsquad/internal/token"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	AuthService    *auth.Service
	MissionService *mission.Service
	// HeaderCodec verifies Authorization-header credentials;
	// CookieCodec verifies session-cookie credentials. They may share
	// a secret but don't have to.
	HeaderCodec *token.Codec
	CookieCodec *token.Codec
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	brawlerHandler := handler.NewBrawlerHandler(cfg.AuthService, cfg.CookieCodec)
	missionHandler := handler.NewMissionHandler(cfg.MissionService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.HeaderCodec, cfg.CookieCodec)
	loggingMiddleware := appmiddleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Brawler routes (no auth required for registering/logging in)
	api.HandleFunc("/brawlers/register", brawlerHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/brawlers/login", brawlerHandler.Login).Methods(http.MethodPost)

	// Protected brawler routes
	brawlerProtected := api.PathPrefix("/brawlers").Subrouter()
	brawlerProtected.Use(authMiddleware)
	brawlerProtected.HandleFunc("/avatar", brawlerHandler.UploadAvatar).Methods(http.MethodPost)
	brawlerProtected.HandleFunc("/my-missions", brawlerHandler.MyMissions).Methods(http.MethodGet)

	// Mission routes (all require auth)
	missions := api.PathPrefix("/missions").Subrouter()
	missions.Use(authMiddleware)
	missions.HandleFunc("", missionHandler.Create).Methods(http.MethodPost)
	missions.HandleFunc("", missionHandler.List).Methods(http.MethodGet)
	missions.HandleFunc("/{id}", missionHandler.Get).Methods(http.MethodGet)
	missions.HandleFunc("/{id}", missionHandler.Delete).Methods(http.MethodDelete)
	missions.HandleFunc("/{id}/in-progress", missionHandler.Start).Methods(http.MethodPost)
	missions.HandleFunc("/{id}/complete", missionHandler.Complete).Methods(http.MethodPost)
	missions.HandleFunc("/{id}/fail", missionHandler.Fail).Methods(http.MethodPost)
	missions.HandleFunc("/{id}/join", missionHandler.Join).Methods(http.MethodPost)
	missions.HandleFunc("/{id}/leave", missionHandler.Leave).Methods(http.MethodPost)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
