package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/platform/timeouts"
)

const defaultHTTPAddr = "localhost:8081"

// HTTPTransport serves the MCP protocol over streamable HTTP. Incoming
// requests must present a loopback or explicitly allowed Host header, which
// blocks DNS rebinding against local deployments.
type HTTPTransport struct {
	addr         string
	handler      http.Handler
	allowedHosts map[string]struct{}
}

// NewHTTPTransport creates an HTTP transport for the given MCP server.
// It defaults to localhost-only binding so the default footprint stays
// constrained to local development. allowedHosts lists additional Host
// header values accepted besides loopback.
func NewHTTPTransport(addr string, allowedHosts []string, server *mcp.Server) *HTTPTransport {
	if strings.TrimSpace(addr) == "" {
		addr = defaultHTTPAddr
	}
	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)
	return &HTTPTransport{
		addr:         addr,
		handler:      handler,
		allowedHosts: parseAllowedHosts(allowedHosts),
	}
}

// Start runs the HTTP server until ctx is canceled, then shuts it down
// gracefully.
func (t *HTTPTransport) Start(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/mcp", t.guard(t.handler))

	// GET /mcp/health - Health check endpoint
	mux.HandleFunc("/mcp/health", t.handleHealth)

	server := &http.Server{
		Addr:              t.addr,
		Handler:           mux,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}

	log.Printf("Starting MCP HTTP server on %s", t.addr)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Printf("Shutting down MCP HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown HTTP server: %w", err)
		}
		<-serveErr
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("HTTP server error: %w", err)
	}
}

// guard rejects requests whose Host or Origin header is neither loopback nor
// explicitly allowed.
func (t *HTTPTransport) guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := t.validateLocalRequest(r); err != nil {
			http.Error(w, err.Error(), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleHealth reports server liveness. The host guard applies here too so
// rebound pages cannot probe the endpoint.
func (t *HTTPTransport) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := t.validateLocalRequest(r); err != nil {
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, "OK")
}

// validateLocalRequest checks the Host header and, when present, the Origin
// header against the loopback and allowed host sets.
func (t *HTTPTransport) validateLocalRequest(r *http.Request) error {
	if !t.isAllowedHost(r.Host) {
		return fmt.Errorf("host %q is not allowed", r.Host)
	}
	origin := r.Header.Get("Origin")
	if origin == "" {
		return nil
	}
	parsed, err := url.Parse(origin)
	if err != nil || parsed.Host == "" {
		return fmt.Errorf("origin %q is not a valid URL", origin)
	}
	if !t.isAllowedHost(parsed.Host) {
		return fmt.Errorf("origin %q is not allowed", origin)
	}
	return nil
}

func (t *HTTPTransport) isAllowedHost(host string) bool {
	normalized := normalizeHost(host)
	if normalized == "" {
		return false
	}
	if isLoopbackHost(normalized) {
		return true
	}
	_, ok := t.allowedHosts[normalized]
	return ok
}

func isLoopbackHost(host string) bool {
	switch host {
	case "localhost", "127.0.0.1", "::1":
		return true
	}
	return false
}

// normalizeHost strips an optional port and IPv6 brackets and lowercases the
// result. Bare IPv6 literals without brackets pass through unchanged.
func normalizeHost(host string) string {
	host = strings.TrimSpace(host)
	if host == "" {
		return ""
	}
	if strings.HasPrefix(host, "[") {
		if h, _, err := net.SplitHostPort(host); err == nil {
			return strings.ToLower(h)
		}
		return strings.ToLower(strings.Trim(host, "[]"))
	}
	if strings.Count(host, ":") > 1 {
		return strings.ToLower(host)
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		return strings.ToLower(h)
	}
	return strings.ToLower(host)
}

func parseAllowedHosts(hosts []string) map[string]struct{} {
	allowed := make(map[string]struct{}, len(hosts))
	for _, host := range hosts {
		normalized := normalizeHost(host)
		if normalized == "" {
			continue
		}
		allowed[normalized] = struct{}{}
	}
	return allowed
}
