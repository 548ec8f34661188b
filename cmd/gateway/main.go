package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	api "github.com/mind-engage/netdefense-quiz/internal/api/http"
	"github.com/mind-engage/netdefense-quiz/internal/config"
	"github.com/mind-engage/netdefense-quiz/internal/db"
	"github.com/mind-engage/netdefense-quiz/internal/grading"
	"github.com/mind-engage/netdefense-quiz/internal/logger"
	"github.com/mind-engage/netdefense-quiz/internal/metrics"
	"github.com/mind-engage/netdefense-quiz/internal/quiz"
	"github.com/mind-engage/netdefense-quiz/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer lg.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	openCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	bs, closeStore, err := storage.Open(openCtx, storage.Options{
		Driver:   cfg.BlobDriver,
		BasePath: cfg.BlobBasePath,
		DBDriver: db.Driver(cfg.DBDriver),
		DBDSN:    cfg.DBDSN,
	})
	cancel()
	if err != nil {
		lg.Fatal("blob store", zap.String("driver", cfg.BlobDriver), zap.Error(err))
	}
	defer closeStore() //nolint:errcheck

	deps := api.RouterDeps{
		Questions:   quiz.NewDispatcher(bs),
		Grader:      grading.NewDefaultGrader(),
		Log:         lg,
		CORSOrigins: cfg.CORSOrigins(),
		AccessLog:   true,
	}
	if cfg.EnableStatic {
		deps.Blobs = bs
	}
	if cfg.EnableMetrics {
		deps.Metrics = metrics.New()
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           api.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	lg.Info("listening",
		zap.String("addr", cfg.HTTPAddr),
		zap.String("mode", string(cfg.Mode)),
		zap.String("blob_driver", cfg.BlobDriver),
	)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		lg.Fatal("http server", zap.Error(err))
	}
	lg.Info("shutdown complete")
}
