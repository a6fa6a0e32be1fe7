package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"aupac-site/internal/config"
	"aupac-site/internal/platform/logger"
	"aupac-site/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	nLogger, err := logger.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalln(err)
	}
	defer nLogger.Sync()

	r := router.NewRouter(router.Options{Config: cfg, Log: nLogger})

	srv := &http.Server{
		Addr:         cfg.RunAddr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		nLogger.Info("starting server",
			zap.String("addr", cfg.RunAddr),
			zap.String("storage", cfg.Storage),
			zap.String("uploader", cfg.Uploader),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			nLogger.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		nLogger.Error("shutdown", zap.Error(err))
	}
	nLogger.Info("server stopped")
}
