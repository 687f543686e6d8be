package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/hoverhouse/hoverhouse-api/internal/api/handlers"
	"github.com/hoverhouse/hoverhouse-api/internal/api/middleware"
	"github.com/hoverhouse/hoverhouse-api/internal/config"
	"github.com/hoverhouse/hoverhouse-api/internal/service"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// CORS must run before anything that can short-circuit the request
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Origin", "X-Requested-With", "Content-Type", "Accept", "Authorization"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	propertyHandler := handlers.NewPropertyHandler(services.Property)

	r.Route("/api", func(r chi.Router) {
		// Public auth routes
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)

		r.Route("/properties", func(r chi.Router) {
			// Public read routes
			r.Get("/", propertyHandler.List)
			r.Get("/{id}", propertyHandler.Get)

			// Mutations require a valid bearer token
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Post("/", propertyHandler.Create)
				r.Put("/{id}", propertyHandler.Update)
				r.Delete("/{id}", propertyHandler.Delete)
			})
		})
	})

	return r
}
