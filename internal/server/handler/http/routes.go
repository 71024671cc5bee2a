package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/ritvikjaiswal02/A-Loving-Lunch/internal/middleware"
)

// NewRouter constructs the HTTP handler serving the A-Loving-Lunch API.
//
// Routes:
//
//	GET    /api/health               → liveness probe, no auth
//	POST   /api/auth/register        → AuthHandler.Register
//	POST   /api/auth/login           → AuthHandler.Login
//	GET    /api/auth/me              → AuthHandler.Me (bearer auth)
//	POST   /api/bentoboxes           → BentoBoxHandler.Create (bearer auth)
//	GET    /api/bentoboxes/my        → BentoBoxHandler.My (bearer auth)
//	GET    /api/bentoboxes/public    → BentoBoxHandler.Public (bearer auth)
//	GET    /api/bentoboxes/{id}      → BentoBoxHandler.Get (bearer auth)
//	PUT    /api/bentoboxes/{id}      → BentoBoxHandler.Update (bearer auth)
//	DELETE /api/bentoboxes/{id}      → BentoBoxHandler.Delete (bearer auth)
//
// Middleware chain (applied in order):
//  1. AllowContentType("application/json") — rejects non-JSON bodies
//  2. WithRequestLogging(logger)           — logs request metadata
//  3. Recoverer                            — converts panics to a stable 500
func NewRouter(
	authHandler *AuthHandler,
	bentoHandler *BentoBoxHandler,
	signKey []byte,
	logger *zap.Logger,
	environment string,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.AllowContentType("application/json"))
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(middleware.Recoverer(logger, environment))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", health)

		r.Route("/auth", func(r chi.Router) {
			// Public endpoints
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			// Protected: requires a valid bearer token
			r.Group(func(r chi.Router) {
				r.Use(middleware.BearerAuth(signKey))
				r.Get("/me", authHandler.Me)
			})
		})

		r.Route("/bentoboxes", func(r chi.Router) {
			r.Use(middleware.BearerAuth(signKey))
			r.Post("/", bentoHandler.Create)
			r.Get("/my", bentoHandler.My)
			r.Get("/public", bentoHandler.Public)
			r.Get("/{id}", bentoHandler.Get)
			r.Put("/{id}", bentoHandler.Update)
			r.Delete("/{id}", bentoHandler.Delete)
		})
	})

	return r
}

func health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"message":   "A Loving Lunch API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
