package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/insightchat/analytics/internal/analytics"
	coreagg "github.com/insightchat/analytics/internal/core/aggregation"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override, e.g. INSIGHT_DATABASE__DSN.
const EnvPrefix = "INSIGHT_"

const (
	DatabasePostgres = "postgres"
	DatabaseMemory   = "memory"
)

// Config represents the top-level application config.
type Config struct {
	Server       ServerConfig       `koanf:"server"`
	Database     DatabaseConfig     `koanf:"database"`
	Collaborator CollaboratorConfig `koanf:"collaborator"`
	Reporting    ReportingConfig    `koanf:"reporting"`
}

type ServerConfig struct {
	Port          int    `koanf:"port"`
	Host          string `koanf:"host"`
	MaxBodySizeMB int    `koanf:"max_body_size_mb"`
	Mode          string `koanf:"mode"` // debug | release
}

type DatabaseConfig struct {
	Type         string        `koanf:"type"` // postgres | memory
	DSN          string        `koanf:"dsn"`
	MaxOpenConns int           `koanf:"max_open_conns"`
	MaxIdleConns int           `koanf:"max_idle_conns"`
	AutoMigrate  bool          `koanf:"auto_migrate"`
	QueryTimeout time.Duration `koanf:"query_timeout"`
}

// CollaboratorConfig locates the NL-to-SQL service.
type CollaboratorConfig struct {
	BaseURL string        `koanf:"base_url"`
	Timeout time.Duration `koanf:"timeout"`
}

type ReportingConfig struct {
	TopVendorsLimit    int    `koanf:"top_vendors_limit"`
	TrendMonths        int    `koanf:"trend_months"`
	GrowthWindow       string `koanf:"growth_window"` // parsed and validated on startup
	ChangeMode         string `koanf:"change_mode"`   // placeholder | computed
	TrendYearQualified bool   `koanf:"trend_year_qualified"`
}

// EngineOptions converts the reporting and database settings into engine options.
// Call only on a validated config.
func (c *Config) EngineOptions() analytics.Options {
	window, _ := coreagg.ParseWindowSize(c.Reporting.GrowthWindow)
	return analytics.Options{
		QueryTimeout:       c.Database.QueryTimeout,
		GrowthWindow:       window.Size,
		TrendMonths:        c.Reporting.TrendMonths,
		YearQualifiedTrend: c.Reporting.TrendYearQualified,
		ChangeMode:         analytics.ChangeMode(c.Reporting.ChangeMode),
	}
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d (must be 1-65535)", c.Server.Port)
	}
	if strings.TrimSpace(c.Server.Host) == "" {
		return fmt.Errorf("server.host is required")
	}
	if c.Server.MaxBodySizeMB <= 0 {
		return fmt.Errorf("server.max_body_size_mb must be > 0")
	}
	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server.mode %q (must be debug or release)", c.Server.Mode)
	}

	switch c.Database.Type {
	case DatabasePostgres:
		if strings.TrimSpace(c.Database.DSN) == "" {
			return fmt.Errorf("database.dsn is required")
		}
		if c.Database.MaxOpenConns <= 0 {
			return fmt.Errorf("database.max_open_conns must be > 0")
		}
		if c.Database.MaxIdleConns <= 0 {
			return fmt.Errorf("database.max_idle_conns must be > 0")
		}
	case DatabaseMemory:
	default:
		return fmt.Errorf("unsupported database.type %q", c.Database.Type)
	}
	if c.Database.QueryTimeout <= 0 {
		return fmt.Errorf("database.query_timeout must be > 0")
	}

	u, err := url.Parse(c.Collaborator.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid collaborator.base_url %q (must be an http(s) URL)", c.Collaborator.BaseURL)
	}
	if c.Collaborator.Timeout <= 0 {
		return fmt.Errorf("collaborator.timeout must be > 0")
	}

	if c.Reporting.TopVendorsLimit <= 0 {
		return fmt.Errorf("reporting.top_vendors_limit must be > 0")
	}
	if c.Reporting.TrendMonths <= 0 {
		return fmt.Errorf("reporting.trend_months must be > 0")
	}
	if _, err := coreagg.ParseWindowSize(c.Reporting.GrowthWindow); err != nil {
		return fmt.Errorf("invalid reporting.growth_window: %w", err)
	}
	if !analytics.ValidChangeMode(analytics.ChangeMode(c.Reporting.ChangeMode)) {
		return fmt.Errorf("invalid reporting.change_mode %q (must be placeholder or computed)", c.Reporting.ChangeMode)
	}

	return nil
}

// Load parses config from defaults, an optional YAML file and INSIGHT_ env vars, then validates it.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"server.port":                    8080,
		"server.host":                    "0.0.0.0",
		"server.max_body_size_mb":        1,
		"server.mode":                    "release",
		"database.type":                  DatabasePostgres,
		"database.dsn":                   "postgres://localhost:5432/insight?sslmode=disable",
		"database.max_open_conns":        25,
		"database.max_idle_conns":        25,
		"database.auto_migrate":          true,
		"database.query_timeout":         "5s",
		"collaborator.base_url":          "http://localhost:8000",
		"collaborator.timeout":           "30s",
		"reporting.top_vendors_limit":    analytics.DefaultTopVendorLimit,
		"reporting.trend_months":         analytics.DefaultTrendMonths,
		"reporting.growth_window":        "30d",
		"reporting.change_mode":          string(analytics.ChangePlaceholder),
		"reporting.trend_year_qualified": false,
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
