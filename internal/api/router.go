package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tomd/hero-build-planner/internal/api/handlers"
	"github.com/tomd/hero-build-planner/internal/api/middleware"
	"github.com/tomd/hero-build-planner/internal/service"
)

func NewRouter(services *service.Services) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)
	r.Use(middleware.Metrics)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Handle("/metrics", promhttp.Handler())

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	heroHandler := handlers.NewHeroHandler(services.Hero)
	abilityHandler := handlers.NewAbilityHandler(services.Ability)
	upgradeHandler := handlers.NewUpgradeHandler(services.Upgrade)
	buildHandler := handlers.NewBuildHandler(services.Build)
	buildUpgradeHandler := handlers.NewBuildUpgradeHandler(services.BuildUpgrade)

	r.Route("/api", func(r chi.Router) {
		// Public auth routes
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// Protected auth routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))
			r.Get("/me", authHandler.Me)
			r.Post("/logout", authHandler.Logout)
		})

		// Catalog routes (public)
		r.Route("/heroes", func(r chi.Router) {
			r.Get("/", heroHandler.List)
			r.Post("/", heroHandler.Create)
			r.Get("/{id}", heroHandler.Get)
			r.Put("/{id}", heroHandler.Update)
			r.Delete("/{id}", heroHandler.Delete)
		})

		r.Route("/abilities", func(r chi.Router) {
			r.Get("/", abilityHandler.List)
			r.Post("/", abilityHandler.Create)
			r.Get("/{id}", abilityHandler.Get)
			r.Put("/{id}", abilityHandler.Update)
			r.Delete("/{id}", abilityHandler.Delete)
		})

		r.Route("/upgrades", func(r chi.Router) {
			r.Get("/", upgradeHandler.List)
			r.Post("/", upgradeHandler.Create)
			r.Get("/{id}", upgradeHandler.Get)
			r.Put("/{id}", upgradeHandler.Update)
			r.Delete("/{id}", upgradeHandler.Delete)
		})

		// Build routes (owned by the authenticated user)
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			r.Route("/builds", func(r chi.Router) {
				r.Get("/", buildHandler.List)
				r.Post("/", buildHandler.Create)
				r.Get("/{id}", buildHandler.Get)
				r.Put("/{id}", buildHandler.Update)
				r.Delete("/{id}", buildHandler.Delete)
			})

			r.Route("/build-upgrades", func(r chi.Router) {
				r.Get("/", buildUpgradeHandler.List)
				r.Post("/", buildUpgradeHandler.Create)
				r.Get("/{id}", buildUpgradeHandler.Get)
				r.Put("/{id}", buildUpgradeHandler.Update)
				r.Delete("/{id}", buildUpgradeHandler.Delete)
			})
		})
	})

	return r
}
