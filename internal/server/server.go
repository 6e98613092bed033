package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dukerupert/reclamos/internal/auth"
	"github.com/dukerupert/reclamos/internal/handler"
	"github.com/dukerupert/reclamos/internal/middleware"
	"github.com/dukerupert/reclamos/internal/realtime"
	"github.com/dukerupert/reclamos/internal/store"
)

type Server struct {
	db            *sql.DB
	hub           *realtime.Hub
	authenticator *auth.Authenticator
	authH         *handler.AuthHandler
	claimH        *handler.ClaimHandler
	companyH      *handler.CompanyHandler
	rateLimiter   *middleware.RateLimiter
	logger        *slog.Logger
}

func New(db *sql.DB, logger *slog.Logger) *Server {
	hub := realtime.NewHub(logger.With("component", "realtime"))

	userStore := store.NewUserStore(db)
	sessionStore := store.NewSessionStore(db)
	claimStore := store.NewClaimStore(db)
	companyStore := store.NewCompanyStore(db)

	authenticator := auth.New(userStore, sessionStore)

	return &Server{
		db:            db,
		hub:           hub,
		authenticator: authenticator,
		authH:         handler.NewAuthHandler(authenticator, logger.With("component", "auth")),
		claimH:        handler.NewClaimHandler(claimStore, hub, logger.With("component", "claim")),
		companyH:      handler.NewCompanyHandler(companyStore, hub, logger.With("component", "company")),
		rateLimiter:   middleware.NewRateLimiter(),
		logger:        logger,
	}
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

func (s *Server) Router() http.Handler {
	outerMux := http.NewServeMux()

	// Public routes
	outerMux.HandleFunc("POST /login", s.rateLimitedHandler(s.authH.Login))
	outerMux.HandleFunc("GET /health", s.healthHandler)

	// Everything else requires a valid bearer token
	protectedMux := http.NewServeMux()
	s.registerProtectedRoutes(protectedMux)

	authMiddleware := middleware.RequireAuth(s.authenticator)
	outerMux.Handle("/", authMiddleware(protectedMux))

	return middleware.RequestLogger(s.logger.With("component", "http"))(outerMux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) rateLimitedHandler(h http.HandlerFunc) http.HandlerFunc {
	keyFunc := func(r *http.Request) string {
		return middleware.RealIP(r)
	}
	rl := middleware.RateLimit(s.rateLimiter, keyFunc, 10, time.Minute)
	return func(w http.ResponseWriter, r *http.Request) {
		rl(http.HandlerFunc(h)).ServeHTTP(w, r)
	}
}

func (s *Server) registerProtectedRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /logout", s.authH.Logout)
	mux.HandleFunc("GET /me", s.authH.Me)

	// Claim API routes
	mux.HandleFunc("GET /api/claims", s.claimH.List)
	mux.HandleFunc("POST /api/claims", s.claimH.Create)
	mux.HandleFunc("GET /api/claims/{id}", s.claimH.Get)
	mux.HandleFunc("PUT /api/claims/{id}", s.claimH.Update)
	mux.HandleFunc("DELETE /api/claims/{id}", s.claimH.Delete)

	// Company API routes
	mux.HandleFunc("GET /api/companies", s.companyH.List)
	mux.HandleFunc("POST /api/companies", s.companyH.Create)
	mux.HandleFunc("GET /api/companies/{id}", s.companyH.Get)
	mux.HandleFunc("PUT /api/companies/{id}", s.companyH.Update)
	mux.HandleFunc("DELETE /api/companies/{id}", s.companyH.Delete)

	// Live entity-change feed
	mux.HandleFunc("GET /ws", realtime.Handler(s.hub))
}
