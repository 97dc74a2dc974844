package modules

import (
	"testing"

	module "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/web/module"
)

func TestDefaultModulesIncludeStableAreas(t *testing.T) {
	t.Parallel()

	features := DefaultModules()
	if len(features) != 3 {
		t.Fatalf("module count = %d, want %d", len(features), 3)
	}
	if got := features[0].ID(); got != "dashboard" {
		t.Fatalf("module[0] id = %q, want %q", got, "dashboard")
	}
	if got := features[1].ID(); got != "events" {
		t.Fatalf("module[1] id = %q, want %q", got, "events")
	}
	if got := features[2].ID(); got != "communications" {
		t.Fatalf("module[2] id = %q, want %q", got, "communications")
	}
}

func TestDefaultModulesHaveUniquePrefixes(t *testing.T) {
	t.Parallel()

	seen := make(map[string]string)
	for _, feature := range DefaultModules() {
		mount, err := feature.Mount(module.Dependencies{})
		if err != nil {
			t.Fatalf("mount %q: %v", feature.ID(), err)
		}
		if owner, ok := seen[mount.Prefix]; ok {
			t.Fatalf("module %q duplicates prefix %q owned by %q", feature.ID(), mount.Prefix, owner)
		}
		seen[mount.Prefix] = feature.ID()
	}
}
