// Package game parses game command flags and serves the campaign engine
// over MCP stdio.
package game

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/flotilla.space/internal/platform/cmd"
	"github.com/louisbranch/flotilla.space/internal/services/game/app"
	"github.com/louisbranch/flotilla.space/internal/services/game/storage/sqlite"
	mcpservice "github.com/louisbranch/flotilla.space/internal/services/mcp/service"
	"github.com/louisbranch/flotilla.space/internal/telemetry"
)

// Config holds game command configuration.
type Config struct {
	DBPath string `env:"FLOTILLA_SPACE_GAME_DB" envDefault:"flotilla.db"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the SQLite database file")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run opens storage and serves the campaign engine until the context ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceGame, func(ctx context.Context) error {
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open storage: %w", err)
		}
		defer store.Close()

		engine := app.NewService(store, telemetry.NewEmitter(store))
		server, err := mcpservice.New(engine)
		if err != nil {
			return fmt.Errorf("create MCP server: %w", err)
		}
		return server.Serve(ctx)
	})
}
