// Package server sets up the HTTP server, router, and all route definitions.
//
// This package is the composition root: it wires the database, services,
// handlers, and middleware together in one place, decides which middleware
// runs on which routes, and owns graceful startup/shutdown. main.go stays
// minimal — read config, build a Server, Start it.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/jobwise/jobwise/internal/assistant"
	"github.com/jobwise/jobwise/internal/auth"
	"github.com/jobwise/jobwise/internal/handler"
	"github.com/jobwise/jobwise/internal/middleware"
	sqliteRepo "github.com/jobwise/jobwise/internal/repository/sqlite"
	"github.com/jobwise/jobwise/internal/service"
)

// Config holds server configuration. A struct (rather than positional
// parameters) lets new options arrive without signature churn.
type Config struct {
	Port      int
	DBPath    string
	StaticDir string // optional: serve the SPA bundle from here when set

	// JWTSecret signs session tokens. Required.
	JWTSecret string

	// Chat-completion provider settings. Empty values fall back to the
	// assistant package defaults.
	AssistantBaseURL string
	AssistantModel   string
}

// Server owns the router and the resources that need closing on shutdown.
// The database connection is held here so Start can close it after the
// last in-flight request finishes.
type Server struct {
	router *chi.Mux
	config Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New creates a Server and assembles the full dependency chain:
//
//	sqlite.DB → repositories → services → handlers → routes
//
// Each layer receives only what it needs: services get repository
// interfaces, handlers get services. Nothing below the handler layer knows
// about HTTP.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}

	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}

	if err := s.setupRoutes(); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting up routes: %w", err)
	}

	return s, nil
}

// setupRoutes configures all middleware and route handlers.
//
// ROUTE STRUCTURE:
//
//	POST /api/auth/register          → create account + session
//	POST /api/auth/login             → start session
//	POST /api/auth/logout            → clear session
//	GET  /api/me                     → current user           [auth]
//	PUT  /api/me/skills              → replace skill list     [auth]
//	GET  /api/jobs                   → catalog (?q= filters)
//	GET  /api/jobs/recommended       → ranked matches         [auth]
//	GET  /api/jobs/{id}              → single posting
//	GET  /api/skills                 → skill vocabulary
//	GET  /api/assistant/greeting     → bot opening message
//	POST /api/assistant/message      → scripted bot           [auth]
//	POST /api/assistant/completions  → provider passthrough   [auth]
//	GET  /healthz                    → liveness probe
//	GET  /static/*                   → SPA assets (when StaticDir set)
//
// Middleware order matters — RequestID first so every later log line can
// carry it, Recoverer before our logger so panics still produce a 500 log.
func (s *Server) setupRoutes() error {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.RealIP)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.Logger(s.logger))

	// === Auth plumbing ===
	tokens, err := auth.NewTokenService(s.config.JWTSecret)
	if err != nil {
		return fmt.Errorf("creating token service: %w", err)
	}
	passwords := auth.NewPasswordService()

	// === Services ===
	profileService := service.NewProfileService(s.db.Users(), passwords, s.logger)
	jobService := service.NewJobService(s.db.Jobs(), s.logger)
	assistantService := service.NewAssistantService(
		assistant.NewBot(),
		assistant.NewProxyClient(s.config.AssistantBaseURL, s.config.AssistantModel),
		s.db.Users(),
		s.logger,
	)

	// === Handlers ===
	authHandler := handler.NewAuthHandler(profileService, tokens, s.logger)
	jobHandler := handler.NewJobHandler(jobService, profileService, s.logger)
	assistantHandler := handler.NewAssistantHandler(assistantService, s.logger)

	requireAuth := auth.RequireAuth(tokens)

	s.router.Route("/api", func(r chi.Router) {
		// Public: account lifecycle and catalog browsing.
		r.Post("/auth/register", authHandler.HandleRegister)
		r.Post("/auth/login", authHandler.HandleLogin)
		r.Post("/auth/logout", authHandler.HandleLogout)
		r.Get("/jobs", jobHandler.HandleList)
		r.Get("/jobs/{id}", jobHandler.HandleGetByID)
		r.Get("/skills", jobHandler.HandleSkills)
		r.Get("/assistant/greeting", assistantHandler.HandleGreeting)

		// Protected: everything keyed to the logged-in user.
		r.Group(func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/me", authHandler.HandleMe)
			r.Put("/me/skills", authHandler.HandleUpdateSkills)
			r.Get("/jobs/recommended", jobHandler.HandleRecommended)
			r.Post("/assistant/message", assistantHandler.HandleMessage)
			r.Post("/assistant/completions", assistantHandler.HandleCompletions)
		})
	})

	// Liveness probe for container orchestration.
	s.router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	// The SPA bundle, when one is deployed alongside the API.
	if s.config.StaticDir != "" {
		fileServer := http.FileServer(http.Dir(s.config.StaticDir))
		s.router.Handle("/static/*", http.StripPrefix("/static/", fileServer))
	}

	return nil
}

// Start runs the HTTP server and blocks until shutdown.
//
// GRACEFUL SHUTDOWN:
//  1. Stop accepting new connections on SIGINT/SIGTERM
//  2. Wait up to 30s for in-flight requests to finish
//  3. Close the database (flushes WAL, releases the file lock)
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("url", fmt.Sprintf("http://localhost:%d", s.config.Port)),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
