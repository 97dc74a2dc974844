// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"
	"strings"

	platformcmd "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/platform/cmd"
	mcpservice "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	DBPath       string `env:"EVENT_CONNECT_DB_PATH"      envDefault:"data/events.db"`
	HTTPAddr     string `env:"EVENT_CONNECT_MCP_ADDR"      envDefault:"localhost:8081"`
	Transport    string `env:"EVENT_CONNECT_MCP_TRANSPORT" envDefault:"stdio"`
	AllowedHosts string `env:"EVENT_CONNECT_MCP_ALLOWED_HOSTS"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "sqlite database path")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	fs.StringVar(&cfg.AllowedHosts, "allowed-hosts", cfg.AllowedHosts, "comma-separated hosts accepted by the HTTP transport")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceMCP, func(ctx context.Context) error {
		return mcpservice.Run(ctx, mcpservice.Config{
			DBPath:       cfg.DBPath,
			Transport:    mcpservice.TransportKind(cfg.Transport),
			HTTPAddr:     cfg.HTTPAddr,
			AllowedHosts: splitHosts(cfg.AllowedHosts),
		})
	})
}

func splitHosts(raw string) []string {
	var hosts []string
	for _, host := range strings.Split(raw, ",") {
		host = strings.TrimSpace(host)
		if host != "" {
			hosts = append(hosts, host)
		}
	}
	return hosts
}
