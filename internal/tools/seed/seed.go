// Package seed writes demo data into the local development database by
// exercising the event domain service, so seeded rows pass the same
// validation and follow the same status transitions as live traffic.
package seed

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ScenarioDashboardDemo seeds organizer 42 with the dataset behind the
// dashboard demo numbers.
const ScenarioDashboardDemo = "dashboard-demo"

// Config holds seeding configuration.
type Config struct {
	DBPath   string
	Scenario string
	Verbose  bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{DBPath: "data/events.db"}
}

// scenarioFunc writes one named fixture through the target's domain service.
type scenarioFunc func(ctx context.Context, target *Target, progress io.Writer) error

var scenarios = map[string]scenarioFunc{
	ScenarioDashboardDemo: runDashboardDemo,
}

// ListScenarios returns the available scenario names in sorted order.
func ListScenarios() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run seeds the configured scenario, or every scenario when none is named.
func Run(ctx context.Context, cfg Config) error {
	progress := io.Discard
	if cfg.Verbose {
		progress = os.Stderr
	}

	target, err := OpenTarget(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = target.Close()
	}()

	if name := strings.TrimSpace(cfg.Scenario); name != "" {
		return RunScenario(ctx, target, name, progress)
	}
	for _, name := range ListScenarios() {
		if err := RunScenario(ctx, target, name, progress); err != nil {
			return err
		}
	}
	return nil
}

// RunScenario seeds one named scenario through an already open target.
func RunScenario(ctx context.Context, target *Target, name string, progress io.Writer) error {
	if target == nil {
		return fmt.Errorf("seed target is required")
	}
	if progress == nil {
		progress = io.Discard
	}
	name = strings.TrimSpace(name)
	scenario, ok := scenarios[name]
	if !ok {
		return fmt.Errorf("unknown scenario %q (available: %s)", name, strings.Join(ListScenarios(), ", "))
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	fmt.Fprintf(progress, "Seeding scenario %q\n", name)
	if err := scenario(ctx, target, progress); err != nil {
		return fmt.Errorf("seed scenario %s: %w", name, err)
	}
	return nil
}
