package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/platform/branding"
	eventsapp "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/app"
	eventsdomain "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/domain"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/domain/invite"
	statsdomain "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/stats/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// serverVersion identifies the MCP server version.
const serverVersion = "0.1.0"

// serverName identifies this MCP server to clients.
var serverName = branding.AppName + " MCP"

// healthCheckInterval paces the background storage health monitor.
const healthCheckInterval = 30 * time.Second

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP runs MCP over streamable HTTP for browser or remote clients.
	TransportHTTP TransportKind = "http"
)

// Config configures the MCP server.
type Config struct {
	DBPath    string
	Transport TransportKind
	// HTTPAddr is the HTTP server address (e.g. "localhost:8081"). Defaults
	// to localhost:8081 for HTTP transport.
	HTTPAddr string
	// AllowedHosts lists non-loopback Host/Origin values accepted by the
	// HTTP transport. Loopback hosts are always accepted.
	AllowedHosts []string
}

// Dependencies carries the domain services behind the MCP tools.
type Dependencies struct {
	Stats  statsdomain.Provider
	Events *eventsdomain.Service
	// Grants enables invite grant checks on rsvp_submit when set.
	Grants *invite.GrantConfig
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
	health    func(context.Context) error
	closer    func() error
}

// New opens event storage and assembles a configured MCP server.
func New(cfg Config) (*Server, error) {
	application, err := eventsapp.Bootstrap(eventsapp.Config{DBPath: cfg.DBPath})
	if err != nil {
		return nil, fmt.Errorf("bootstrap event services: %w", err)
	}

	grants, err := loadGrantConfig()
	if err != nil {
		if closeErr := application.Close(); closeErr != nil {
			return nil, fmt.Errorf("load invite grant config: %v; close event store: %w", err, closeErr)
		}
		return nil, err
	}

	server := newServer(Dependencies{
		Stats:  statsdomain.NewService(application.Store, nil),
		Events: application.Events,
		Grants: grants,
	})
	server.health = application.Store.Ping
	server.closer = application.Close
	return server, nil
}

// newServer builds the MCP server and registers every tool module.
func newServer(deps Dependencies) *Server {
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, &mcp.ServerOptions{
		CompletionHandler: completionHandler,
	})

	for _, module := range newRegistrationModules(deps) {
		module.register(mcpServer)
	}

	return &Server{mcpServer: mcpServer}
}

// loadGrantConfig reads invite grant verification config when the public key
// is present. Grant checks stay disabled otherwise.
func loadGrantConfig() (*invite.GrantConfig, error) {
	if os.Getenv(invite.EnvInvitePublicKey) == "" {
		return nil, nil
	}
	cfg, err := invite.LoadGrantConfigFromEnv(nil)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// completionHandler handles completion/complete requests with empty results.
// TODO: Complete event_id arguments from recent events once listing supports
// a cheap id-only projection.
func completionHandler(_ context.Context, _ *mcp.CompleteRequest) (*mcp.CompleteResult, error) {
	return &mcp.CompleteResult{
		Completion: mcp.CompletionResultDetails{
			Values: []string{},
		},
	}, nil
}

// Run is the service entrypoint for MCP and blocks until context cancellation.
// It is intentionally transport-agnostic so startup can choose stdio for local
// tools and HTTP for browser or remote integrations.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}

	switch cfg.Transport {
	case TransportStdio:
		return runWithTransport(ctx, cfg, &mcp.StdioTransport{})
	case TransportHTTP:
		return runWithHTTPTransport(ctx, cfg)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

// runWithTransport creates a server and serves it over the provided transport.
func runWithTransport(ctx context.Context, cfg Config, transport mcp.Transport) error {
	server, err := New(cfg)
	if err != nil {
		return err
	}
	return server.serveWithTransport(ctx, transport)
}

// runWithHTTPTransport creates a server and serves it over streamable HTTP.
func runWithHTTPTransport(ctx context.Context, cfg Config) error {
	server, err := New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := server.Close(); closeErr != nil {
			log.Printf("close event store: %v", closeErr)
		}
	}()

	healthCtx, healthCancel := context.WithCancel(ctx)
	defer healthCancel()
	go server.monitorHealth(healthCtx)

	transport := NewHTTPTransport(cfg.HTTPAddr, cfg.AllowedHosts, server.mcpServer)
	return transport.Start(ctx)
}

// monitorHealth periodically checks storage health. Failures are logged but
// do not terminate the HTTP server; individual requests surface their own
// storage errors.
func (s *Server) monitorHealth(ctx context.Context) {
	if s == nil || s.health == nil {
		return
	}

	ticker := time.NewTicker(healthCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			callCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err := s.health(callCtx)
			cancel()
			if err != nil {
				log.Printf("storage health check failed: %v", err)
			}
		}
	}
}

// Serve starts the MCP server on stdio and blocks until it stops or the
// context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// Close releases the storage held by the server.
func (s *Server) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	closer := s.closer
	s.closer = nil
	return closer()
}

// serveWithTransport starts the MCP server using the provided transport. The
// server and its storage share a single exit path so cleanup behavior is
// consistent for both stdio and HTTP runs.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	closeErr := s.Close()
	if closeErr != nil {
		if err == nil {
			return fmt.Errorf("close event store: %w", closeErr)
		}
		return fmt.Errorf("serve MCP: %v; close event store: %w", err, closeErr)
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
