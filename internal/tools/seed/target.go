package seed

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	eventsapp "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/app"
	eventsdomain "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/domain"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/storage/sqlite"
)

// Target bundles the sqlite store with a domain service whose clock the
// seeder controls. Scenarios treat the clock's instant at entry as the
// dataset's reference time and restore it before returning.
type Target struct {
	Store  *sqlite.Store
	Events *eventsdomain.Service
	Clock  *Clock
}

// OpenTarget opens the sqlite file at dbPath and wires a clock-driven domain
// service over it. The clock starts at the wall clock.
func OpenTarget(dbPath string) (*Target, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, fmt.Errorf("database path is required")
	}
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create seed storage dir: %w", err)
		}
	}

	store, err := sqlite.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open seed sqlite store: %w", err)
	}

	clock := NewClock(time.Now())
	events := eventsdomain.NewService(eventsapp.NewDomainStore(store, store, store), clock.Now, nil)
	return &Target{Store: store, Events: events, Clock: clock}, nil
}

// Close releases the underlying store.
func (t *Target) Close() error {
	if t == nil || t.Store == nil {
		return nil
	}
	return t.Store.Close()
}
