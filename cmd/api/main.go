package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"candidate-registry-backend/config"
	v1 "candidate-registry-backend/internal/delivery/http/v1"
	"candidate-registry-backend/internal/repository/snapshot"
	"candidate-registry-backend/internal/usecase"
	"candidate-registry-backend/pkg/audit"
	"candidate-registry-backend/pkg/kvstore"
	"candidate-registry-backend/pkg/logger"
	"candidate-registry-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Loggers
	logger.Init(slog.LevelDebug)
	logger.Log.Info("Starting candidate registry", "port", cfg.Port, "storage", cfg.StorageDriver)

	auditLog := audit.Init("candidate-registry", cfg.Environment)
	defer auditLog.Sync()

	// 3. Setup Storage
	store, err := newStore(cfg)
	if err != nil {
		logger.Log.Error("Failed to initialize storage backend", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	storageKey := snapshot.DefaultKey
	if cfg.StorageNamespace != "" {
		storageKey = cfg.StorageNamespace + ":" + storageKey
	}
	candidateRepo := snapshot.NewCandidateRepository(store, storageKey)

	// 4. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	candidateUC := usecase.NewCandidateUsecase(candidateRepo, validate, auditLog)
	statsUC := usecase.NewStatsUsecase(candidateRepo)
	exportUC := usecase.NewExportUsecase(candidateRepo, auditLog)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		CandidateUC: candidateUC,
		StatsUC:     statsUC,
		ExportUC:    exportUC,
		Config:      cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

// newStore picks the snapshot backend from configuration.
func newStore(cfg *config.Config) (kvstore.Store, error) {
	switch cfg.StorageDriver {
	case "redis":
		return kvstore.NewRedis(kvstore.RedisConfig{
			URL:      cfg.RedisURL,
			Password: cfg.RedisPassword,
		})
	case "postgres":
		return kvstore.NewPostgres(cfg.DBUrl)
	case "memory":
		return kvstore.NewMemory(), nil
	default:
		return kvstore.NewFile(cfg.StorageDir)
	}
}
