package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/insightchat/analytics/internal/analytics"
	"github.com/insightchat/analytics/internal/bootstrap"
	corecfg "github.com/insightchat/analytics/internal/core/config"
	"github.com/insightchat/analytics/internal/ingestion"
	"github.com/insightchat/analytics/internal/nlquery"
	"github.com/insightchat/analytics/internal/reporting"
	"github.com/insightchat/analytics/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (YAML)")
	envFile := flag.String("env-file", ".env", "Optional dotenv file loaded before configuration")
	flag.Parse()

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("Failed to load env file", "path", *envFile, "error", err)
		os.Exit(1)
	}

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config",
		"database_type", cfg.Database.Type,
		"collaborator", cfg.Collaborator.BaseURL,
		"change_mode", cfg.Reporting.ChangeMode,
		"trend_year_qualified", cfg.Reporting.TrendYearQualified)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 2. Initialize Record Store (+ migrations)
	store, err := bootstrap.OpenStore(ctx, cfg.Database)
	if err != nil {
		slog.Error("Failed to open record store", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	// 3. Aggregation Engine + Reporting Façade
	engine := analytics.NewEngine(store, cfg.EngineOptions())
	collaborator := nlquery.NewClient(cfg.Collaborator.BaseURL, cfg.Collaborator.Timeout)
	reportingSvc := reporting.NewService(engine, collaborator, cfg.Reporting.TopVendorsLimit)

	// 4. Record write API
	ingestionSvc := ingestion.NewService(store, cfg.Server.MaxBodySizeMB)

	// 5. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), store, cfg.Server.Mode, cfg.Server.MaxBodySizeMB)
	ingestionSvc.RegisterRoutes(srv.Engine)
	reportingSvc.RegisterRoutes(srv.Engine)

	// Signal handler triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
