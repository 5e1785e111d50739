// Package main - Entry point for the immoquote API server
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"immoquote/api"
	"immoquote/core/catalog"
	"immoquote/internal/config"
	"immoquote/internal/logging"
	"immoquote/store"
)

const version = "1.0.0"

func main() {
	cfgFile := flag.String("config", "", "config file")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		logging.Fatal("load config", zap.Error(err))
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Fatal("initialize logging", zap.Error(err))
	}
	defer logging.Sync()

	cat := catalog.Default()
	if cfg.Pricing.OverridesFile != "" {
		if err := cat.ApplyOverridesFile(cfg.Pricing.OverridesFile); err != nil {
			logging.Fatal("apply pricing overrides", zap.Error(err))
		}
		logging.Info("pricing overrides applied", zap.String("file", cfg.Pricing.OverridesFile))
	}

	listen := cfg.Server.Addr
	if *addr != "" {
		listen = *addr
	}

	apiServer := api.NewServerWithStore(version, cat, logging.Logger, store.NewMemoryStore())

	srv := &http.Server{
		Addr:              listen,
		Handler:           apiServer,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logging.Info("immoquote server listening",
			zap.String("addr", listen),
			zap.String("version", version))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.Error("shutdown", zap.Error(err))
	}
	logging.Info("server stopped")
}
