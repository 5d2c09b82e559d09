package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/qyinm/staffdir/config"
	"github.com/qyinm/staffdir/fetcher"
	"github.com/qyinm/staffdir/logging"
	"github.com/qyinm/staffdir/mcpsrv"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// stdout carries the protocol; logs go to stderr.
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
		go func() {
			ticker := time.NewTicker(cfg.CacheClearInterval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					source.ClearCache()
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		logging.Error("stdio mcp server failed", "err", err)
		os.Exit(1)
	}
}
