package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/domain"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/storage/sqlite"
)

const defaultDBPath = "data/events.db"

// Config controls event service startup. Callers resolve the database path
// from their own flag and env surface before bootstrapping.
type Config struct {
	DBPath string `env:"EVENT_CONNECT_DB_PATH"`
}

// App bundles the event store and domain service shared by the MCP and web
// surfaces.
type App struct {
	Store  *sqlite.Store
	Events *domain.Service
}

// Bootstrap opens persistence and assembles the event domain service.
func Bootstrap(cfg Config) (*App, error) {
	if strings.TrimSpace(cfg.DBPath) == "" {
		cfg.DBPath = defaultDBPath
	}
	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create event storage dir: %w", err)
		}
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open event sqlite store: %w", err)
	}

	events := domain.NewService(NewDomainStore(store, store, store), nil, nil)
	return &App{Store: store, Events: events}, nil
}

// Close releases the resources held by the app.
func (a *App) Close() error {
	if a == nil || a.Store == nil {
		return nil
	}
	return a.Store.Close()
}
