// Command insightctl prints the analytics reports straight from the record
// store and performs maintenance operations.
//
//	insightctl [-config insight.yaml] [-format json|yaml] metrics
//	insightctl revenue-trend
//	insightctl top-vendors [-limit 5]
//	insightctl reset -yes
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/insightchat/analytics/internal/analytics"
	"github.com/insightchat/analytics/internal/bootstrap"
	corecfg "github.com/insightchat/analytics/internal/core/config"
	"github.com/insightchat/analytics/internal/core/storage"
	"github.com/insightchat/analytics/internal/reporting"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

var errUsage = errors.New("usage: insightctl [-config file] [-env-file file] [-format json|yaml] metrics | revenue-trend | top-vendors [-limit N] | reset -yes")

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	global := flag.NewFlagSet("insightctl", flag.ContinueOnError)
	global.SetOutput(io.Discard)
	configPath := global.String("config", "", "Path to configuration file (YAML)")
	envFile := global.String("env-file", ".env", "Optional dotenv file loaded before configuration")
	format := global.String("format", "json", "Output format: json or yaml")
	if err := global.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if global.NArg() == 0 {
		return errUsage
	}
	if *format != "json" && *format != "yaml" {
		return fmt.Errorf("unsupported format %q", *format)
	}

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file: %w", err)
	}

	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		return err
	}

	store, err := bootstrap.OpenStore(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer store.Close()

	return dispatch(ctx, cfg, store, global.Args(), *format, stdout)
}

func dispatch(ctx context.Context, cfg *corecfg.Config, store storage.Store, args []string, format string, stdout io.Writer) error {
	svc := reporting.NewService(analytics.NewEngine(store, cfg.EngineOptions()), nil, cfg.Reporting.TopVendorsLimit)

	command, rest := args[0], args[1:]
	switch command {
	case "metrics":
		metrics, err := svc.GetMetrics(ctx)
		if err != nil {
			return err
		}
		return render(stdout, format, metrics)

	case "revenue-trend":
		trend, err := svc.GetRevenueTrend(ctx)
		if err != nil {
			return err
		}
		return render(stdout, format, trend)

	case "top-vendors":
		flags := flag.NewFlagSet("top-vendors", flag.ContinueOnError)
		flags.SetOutput(io.Discard)
		limit := flags.Int("limit", cfg.Reporting.TopVendorsLimit, "Number of vendors to return")
		if err := flags.Parse(rest); err != nil {
			return fmt.Errorf("%w: %w", errUsage, err)
		}
		top, err := svc.GetTopVendors(ctx, *limit)
		if err != nil {
			return err
		}
		return render(stdout, format, top)

	case "reset":
		flags := flag.NewFlagSet("reset", flag.ContinueOnError)
		flags.SetOutput(io.Discard)
		yes := flags.Bool("yes", false, "Confirm deletion of every vendor, transaction and order")
		if err := flags.Parse(rest); err != nil {
			return fmt.Errorf("%w: %w", errUsage, err)
		}
		if !*yes {
			return errors.New("reset deletes every vendor, transaction and order; pass -yes to confirm")
		}
		if err := store.Reset(ctx); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
		fmt.Fprintln(stdout, "all records deleted")
		return nil

	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

func render(w io.Writer, format string, v interface{}) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
