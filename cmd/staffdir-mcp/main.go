package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/qyinm/staffdir/config"
	"github.com/qyinm/staffdir/fetcher"
	"github.com/qyinm/staffdir/logging"
	"github.com/qyinm/staffdir/mcpsrv"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dirCfg, err := config.Load(os.Getenv("STAFFDIR_CONFIG"))
	if err != nil {
		logging.InitWriter(os.Stderr, "info")
		logging.Error("load config", "err", err)
		os.Exit(1)
	}
	logging.InitWriter(os.Stderr, dirCfg.LogLevel)

	cfg := mcpsrv.LoadConfig()
	source := fetcher.New(dirCfg.FetcherOptions())
	server := mcpsrv.NewServer(source, version, &mcpsrv.ServerOptions{
		EnableAdmin: cfg.AdminEnabled(),
		APIKey:      cfg.APIKey,
		AssetDir:    dirCfg.AssetDir,
	})

	if cfg.CacheClearInterval > 0 {
		go clearCachePeriodically(ctx, source, cfg.CacheClearInterval)
	}

	httpServer := &http.Server{
		Addr:              ":" + strings.TrimSpace(cfg.Port),
		Handler:           mcpsrv.NewMux(server, cfg),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      0,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn("shutdown error", "err", err)
		}
	}()

	logging.Info("staffdir-mcp listening", "addr", httpServer.Addr, "primary", dirCfg.PrimaryURL, "admin", cfg.AdminEnabled())
	err = httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Error("server failed", "err", err)
		os.Exit(1)
	}
}

func clearCachePeriodically(ctx context.Context, source *fetcher.Resolver, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			source.ClearCache()
			logging.Debug("employee cache cleared", "interval", every)
		case <-ctx.Done():
			return
		}
	}
}
