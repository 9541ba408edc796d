// Package mcp parses MCP command flags and launches the stdio server.
package mcp

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/cafecursor/internal/platform/cmd"
	"github.com/louisbranch/cafecursor/internal/services/cafe/ordering"
	"github.com/louisbranch/cafecursor/internal/services/cafe/storage/sqlite"
	"github.com/louisbranch/cafecursor/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	DBPath string `env:"CAFE_CURSOR_DB_PATH" envDefault:"cafe_cursor.db"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the sqlite database file")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter over stdio.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer store.Close()

		system, err := ordering.New(ctx, store)
		if err != nil {
			return fmt.Errorf("build ordering system: %w", err)
		}

		server, err := service.New(system)
		if err != nil {
			return err
		}
		return server.Serve(ctx)
	})
}
