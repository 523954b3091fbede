package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"

	post_service "likeme-post-service/internal/application/service/post"
	post_repository "likeme-post-service/internal/domain/ports/output/post"
	"likeme-post-service/internal/infrastructure/config"
	delivery_http "likeme-post-service/internal/infrastructure/inbound/http"
	post_http "likeme-post-service/internal/infrastructure/inbound/http/post"
	metrics_server "likeme-post-service/internal/infrastructure/inbound/metrics"
	"likeme-post-service/internal/infrastructure/logger"
	prometheus_metrics "likeme-post-service/internal/infrastructure/outbound/metrics/prometheus"
	post_memory "likeme-post-service/internal/infrastructure/outbound/repository/post/memory"
	post_postgres "likeme-post-service/internal/infrastructure/outbound/repository/post/postgres"
	"likeme-post-service/internal/infrastructure/outbound/repository/postgres/migrations"
)

func main() {
	cfg := config.MustLoad()
	ctx := context.Background()
	log := logger.New(cfg.Env)

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()

	var postRepo post_repository.Repository
	switch cfg.Storage.Type {
	case config.StorageTypeMemory:
		log.Warn("Using in-memory post storage, data is lost on restart")
		postRepo = post_memory.NewPostRepository(log)
	default:
		if cfg.Database.MigrateOnStart {
			if err := runMigrations(cfg, log); err != nil {
				log.Error("Failed to run migrations", slog.String("error", err.Error()))
				os.Exit(1)
			}
		}

		poolConfig, err := pgxpool.ParseConfig(cfg.Database.DSN())
		if err != nil {
			log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if cfg.Database.MaxConns > 0 {
			poolConfig.MaxConns = cfg.Database.MaxConns
		}

		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer pool.Close()

		var now time.Time
		if err := pool.QueryRow(ctx, "SELECT NOW()").Scan(&now); err != nil {
			log.Error("Error connecting to database", slog.String("error", err.Error()))
		} else {
			log.Info("Database connected successfully", slog.Time("now", now))
		}

		postRepo = post_postgres.NewPostRepository(pool, log, metrics)
	}

	validate := validator.New()
	postService := post_service.NewPostService(postRepo, validate, log, metrics)

	postAPI := post_http.NewPostHTTPApi(postService, validate, log)
	router := delivery_http.NewRouter(postAPI, postService, log, metrics)
	httpServer := delivery_http.NewServer(
		router,
		cfg.HTTPServer.Address,
		cfg.HTTPServer.Port,
		cfg.HTTPServer.ReadTimeout,
		cfg.HTTPServer.WriteTimeout,
		log,
	)

	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	metrics.SetServiceHealth(true)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	log.Info("Server exited")
}

func runMigrations(cfg *config.Config, log *logger.Logger) error {
	migrator, err := migrations.New(cfg.Database.MigrationsPath, cfg.Database.DSN(), log)
	if err != nil {
		return err
	}
	defer migrator.Close()
	return migrator.Up()
}
