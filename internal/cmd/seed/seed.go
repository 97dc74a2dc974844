// Package seed parses seed command flags and runs the demo-data seeder.
package seed

import (
	"context"
	"flag"
	"fmt"
	"io"

	platformcmd "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/platform/cmd"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/tools/seed"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/tools/seed/generator"
)

// Config holds seed command configuration.
type Config struct {
	DBPath     string `env:"EVENT_CONNECT_DB_PATH" envDefault:"data/events.db"`
	Scenario   string
	List       bool
	Generate   bool
	Preset     string
	Seed       int64
	Organizers int
	Verbose    bool
}

// ParseConfig parses environment defaults and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "sqlite database path")
	fs.StringVar(&cfg.Scenario, "scenario", "", "run specific scenario (default: all)")
	fs.BoolVar(&cfg.List, "list", false, "list available scenarios and presets")
	fs.BoolVar(&cfg.Generate, "generate", false, "use dynamic generation instead of fixtures")
	fs.StringVar(&cfg.Preset, "preset", string(generator.PresetDemo), "generation preset (demo, variety, stress)")
	fs.Int64Var(&cfg.Seed, "seed", 0, "random seed for reproducibility (0 = random)")
	fs.IntVar(&cfg.Organizers, "organizers", 0, "number of organizers to generate (0 = use preset default)")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose output")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the seed command.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	if cfg.List {
		fmt.Fprintln(out, "Available scenarios:")
		for _, name := range seed.ListScenarios() {
			fmt.Fprintf(out, "  %s\n", name)
		}
		fmt.Fprintln(out, "\nAvailable presets (for -generate):")
		fmt.Fprintln(out, "  demo    - one organizer with a handful of published events")
		fmt.Fprintln(out, "  variety - several organizers across every event status")
		fmt.Fprintln(out, "  stress  - many organizers with large guest lists")
		return nil
	}

	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceSeed, func(ctx context.Context) error {
		if cfg.Generate {
			preset := generator.Preset(cfg.Preset)
			if err := generator.ValidatePreset(preset); err != nil {
				return err
			}
			gen, err := generator.New(generator.Config{
				DBPath:     cfg.DBPath,
				Preset:     preset,
				Seed:       cfg.Seed,
				Organizers: cfg.Organizers,
				Verbose:    cfg.Verbose,
			})
			if err != nil {
				return err
			}
			defer gen.Close()

			return gen.Run(ctx)
		}

		return seed.Run(ctx, seed.Config{
			DBPath:   cfg.DBPath,
			Scenario: cfg.Scenario,
			Verbose:  cfg.Verbose,
		})
	})
}
