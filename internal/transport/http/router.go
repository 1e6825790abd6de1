package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/go-inbox-api/internal/application/auth"
	"github.com/go-inbox-api/internal/application/notification"
	"github.com/go-inbox-api/internal/config"
	"github.com/go-inbox-api/internal/transport/http/handler"
	appmiddleware "github.com/go-inbox-api/internal/transport/http/middleware"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	Probe            handler.DatabaseProbe
	UserRepo         UserRepository
	NotificationRepo NotificationRepository
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(appmiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authSvc := auth.NewService(deps.UserRepo)
	notifSvc := notification.NewService(deps.NotificationRepo, deps.UserRepo)

	healthH := handler.NewHealthHandler(deps.Probe, cfg)
	authH := handler.NewAuthHandler(authSvc)
	notifH := handler.NewNotificationHandler(notifSvc)

	r.Get("/", healthH.Root)
	r.Get("/api/hello", healthH.Hello)
	r.Get("/test", healthH.Test)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authH.Register)
		r.Post("/login", authH.Login)
	})

	r.Route("/notifications", func(r chi.Router) {
		r.Post("/", notifH.Create)
		r.Get("/", notifH.List)
		r.Post("/mark-all-read", notifH.MarkAllRead)
	})

	return r
}
