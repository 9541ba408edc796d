// Package server parses cafe server flags and launches the chosen surface:
// an interactive console session or a TCP listener for one role.
package server

import (
	"context"
	"flag"
	"fmt"
	"os"

	entrypoint "github.com/louisbranch/cafecursor/internal/platform/cmd"
	"github.com/louisbranch/cafecursor/internal/services/cafe/app"
	"github.com/louisbranch/cafecursor/internal/services/cafe/ordering"
	"github.com/louisbranch/cafecursor/internal/services/cafe/session"
	"github.com/louisbranch/cafecursor/internal/services/cafe/storage/sqlite"
)

// Run modes. Console drives a single local session; the serve modes bind a
// TCP listener for exactly one role.
const (
	ModeConsole    = "console"
	ModeServeGuest = "serve-guest"
	ModeServeStaff = "serve-staff"
)

// Config holds cafe server command configuration.
type Config struct {
	DBPath    string `env:"CAFE_CURSOR_DB_PATH"    envDefault:"cafe_cursor.db"`
	GuestAddr string `env:"CAFE_CURSOR_GUEST_ADDR" envDefault:"0.0.0.0:5555"`
	StaffAddr string `env:"CAFE_CURSOR_STAFF_ADDR" envDefault:"127.0.0.1:6000"`
	Mode      string `env:"CAFE_CURSOR_MODE"       envDefault:"console"`
	Role      string `env:"CAFE_CURSOR_ROLE"       envDefault:"guest"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the sqlite database file")
	fs.StringVar(&cfg.GuestAddr, "guest-addr", cfg.GuestAddr, "guest listener address")
	fs.StringVar(&cfg.StaffAddr, "staff-addr", cfg.StaffAddr, "staff listener address")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "run mode: console, serve-guest, or serve-staff")
	fs.StringVar(&cfg.Role, "role", cfg.Role, "console session role: guest or staff")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run opens the shared store and drives the configured surface until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceCafe, func(ctx context.Context) error {
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer store.Close()

		system, err := ordering.New(ctx, store)
		if err != nil {
			return fmt.Errorf("build ordering system: %w", err)
		}

		switch cfg.Mode {
		case ModeConsole:
			role, err := parseRole(cfg.Role)
			if err != nil {
				return err
			}
			return app.RunConsole(ctx, role, system, os.Stdin, os.Stdout)
		case ModeServeGuest:
			return serve(ctx, session.RoleGuest, cfg.GuestAddr, system)
		case ModeServeStaff:
			return serve(ctx, session.RoleStaff, cfg.StaffAddr, system)
		default:
			return fmt.Errorf("unknown mode %q: want %s, %s, or %s", cfg.Mode, ModeConsole, ModeServeGuest, ModeServeStaff)
		}
	})
}

func serve(ctx context.Context, role session.Role, addr string, system *ordering.System) error {
	server, err := app.New(role, addr, system)
	if err != nil {
		return err
	}
	return server.Serve(ctx)
}

func parseRole(value string) (session.Role, error) {
	switch value {
	case "guest":
		return session.RoleGuest, nil
	case "staff":
		return session.RoleStaff, nil
	default:
		return session.RoleGuest, fmt.Errorf("unknown role %q: want guest or staff", value)
	}
}
