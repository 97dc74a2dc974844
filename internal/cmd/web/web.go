// Package web parses web command flags and wires the web service.
package web

import (
	"context"
	"flag"
	"fmt"

	platformcmd "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/platform/cmd"
	eventsapp "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/app"
	statsdomain "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/stats/domain"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr      string `env:"EVENT_CONNECT_WEB_ADDR" envDefault:"localhost:8080"`
	DBPath        string `env:"EVENT_CONNECT_DB_PATH" envDefault:"data/events.db"`
	DefaultUserID int64  `env:"EVENT_CONNECT_WEB_DEFAULT_USER_ID" envDefault:"42"`
}

// ParseConfig parses environment defaults and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "sqlite database path")
	fs.Int64Var(&cfg.DefaultUserID, "default-user-id", cfg.DefaultUserID, "organizer served when no identity header is present (0 disables)")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server and blocks until shutdown.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceWeb, func(ctx context.Context) error {
		application, err := eventsapp.Bootstrap(eventsapp.Config{DBPath: cfg.DBPath})
		if err != nil {
			return fmt.Errorf("bootstrap event service: %w", err)
		}
		defer func() { _ = application.Close() }()

		stats := statsdomain.NewService(application.Store, nil)

		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:      cfg.HTTPAddr,
			DefaultUserID: cfg.DefaultUserID,
			StatsClient:   stats,
			EventsClient:  application.Events,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
