package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/qverkk/osrs-nav/internal/config"
	"github.com/qverkk/osrs-nav/internal/gridio"
	"github.com/qverkk/osrs-nav/internal/journal"
	"github.com/qverkk/osrs-nav/internal/webservice"
)

const defaultConfigPath = "config/navserver.yaml"

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the route server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&configPath, "config", defaultConfigPath, "path to YAML config")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	return run(ctx)
}

func run(ctx context.Context) error {
	// Load config FIRST to determine log level
	path := configPath
	if p := os.Getenv("NAVSERVER_CONFIG"); p != "" {
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("navserver starting", "log_level", cfg.LogLevel, "frontier", cfg.Search.Frontier)

	started := time.Now()
	grid, err := gridio.Load(cfg.NavGridPath)
	if err != nil {
		return fmt.Errorf("loading nav grid: %w", err)
	}
	slog.Info("nav grid loaded",
		"path", cfg.NavGridPath,
		"width", grid.Width,
		"height", grid.Height,
		"edge_cells", len(grid.Edges),
		"teleports", len(grid.Teleports),
		"elapsed", time.Since(started))

	var cache *webservice.RouteCache
	if cfg.Cache.Enabled {
		cache = webservice.NewRouteCache(cfg.Cache, grid.Checksum)
		if err := cache.Ping(ctx); err != nil {
			return fmt.Errorf("pinging route cache: %w", err)
		}
		defer cache.Close()
		slog.Info("route cache connected", "endpoint", cfg.Cache.Endpoint, "ttl", cfg.Cache.TTL())
	}

	var jrnl *journal.Journal
	if cfg.Database.Enabled {
		if err := journal.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database migrations applied")

		jrnl, err = journal.New(ctx, cfg.Database.DSN(), journal.Options{
			QueueSize:     cfg.Database.QueueSize,
			FlushBatch:    cfg.Database.FlushBatch,
			FlushInterval: time.Duration(cfg.Database.FlushInterval) * time.Second,
		})
		if err != nil {
			return fmt.Errorf("connecting query journal: %w", err)
		}
		defer jrnl.Close()
		slog.Info("query journal connected", "queue_size", cfg.Database.QueueSize)
	}

	server := webservice.New(cfg, grid, cache, jrnl)

	g, gctx := errgroup.WithContext(ctx)

	if jrnl != nil {
		g.Go(func() error {
			slog.Info("starting query journal writer",
				"flush_batch", cfg.Database.FlushBatch,
				"flush_interval", time.Duration(cfg.Database.FlushInterval)*time.Second)
			if err := jrnl.Run(gctx); err != nil {
				return fmt.Errorf("query journal: %w", err)
			}
			return nil
		})
	}

	g.Go(func() error {
		slog.Info("starting web service", "bind", cfg.BindAddress, "port", cfg.Port)
		if err := server.Run(gctx); err != nil {
			return fmt.Errorf("web service: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
