package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"osas/clubport/internal/api"
	"osas/clubport/internal/config"
	"osas/clubport/internal/logging"
	"osas/clubport/internal/server"
	"osas/clubport/internal/workers"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()

	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Clubport gateway starting up",
		"environment", cfg.AppEnv,
		"upstream", cfg.UpstreamBaseURL,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	var redisClient *redis.Client
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logging.Warn("redis unreachable, logout broadcast disabled", "error", err.Error())
			redisClient = nil
		}
	}

	deps, err := api.InitDependencies(cfg, redisClient)
	if err != nil {
		logging.Error("failed to initialize dependencies", "error", err.Error())
		log.Fatalf("failed to initialize dependencies: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// background workers
	go deps.Services.Sessions.WatchLogout(ctx)
	if deps.SessionStore != nil {
		// Only the gorm store accumulates rows; redis entries expire on
		// their own.
		go workers.NewSessionSweeper(deps.SessionStore, 15*time.Minute, deps.Metrics).Start(ctx)
	}
	go deps.Audit.Start(ctx)

	upSince := time.Now()
	router := server.RegisterRoutes(deps, upSince)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: mux,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logging.Warn("server shutdown failed", "error", err.Error())
		}
	}()

	logging.Info("Server starting", "addr", cfg.HTTPAddr, "environment", cfg.AppEnv)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
	logging.Info("Server stopped")
}
