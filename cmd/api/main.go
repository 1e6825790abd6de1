package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/go-inbox-api/internal/config"
	"github.com/go-inbox-api/internal/infrastructure/mongodb"
	"github.com/go-inbox-api/internal/metrics"
	transporthttp "github.com/go-inbox-api/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	metrics.Init()

	cfg := config.Load()

	// Database connection is optional: the API still serves without it and
	// reports the condition on /test and per request.
	store, err := mongodb.Connect(context.Background(), cfg)
	if err != nil {
		log.Printf("WARN: database not available: %v", err)
		store = mongodb.Unavailable()
	}
	mongodb.EnsureIndexes(context.Background(), store, cfg.Collections)

	deps := &transporthttp.Deps{
		Probe:            store,
		UserRepo:         mongodb.NewUserRepo(store, cfg.Collections.Users),
		NotificationRepo: mongodb.NewNotificationRepo(store, cfg.Collections.Notifications),
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	if err := store.Close(ctx); err != nil {
		log.Printf("WARN: closing database: %v", err)
	}
	log.Println("Server stopped")
}
