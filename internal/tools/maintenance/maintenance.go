// Package maintenance provides operational upkeep commands for the events
// database.
package maintenance

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	platformcmd "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/platform/cmd"
	eventsdomain "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/domain"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/storage/sqlite"
)

// Config holds maintenance command configuration.
type Config struct {
	DBPath     string        `env:"EVENT_CONNECT_DB_PATH"             envDefault:"data/events.db"`
	Timeout    time.Duration `env:"EVENT_CONNECT_MAINTENANCE_TIMEOUT" envDefault:"10m"`
	Integrity  bool
	Audit      bool
	Vacuum     bool
	JSONOutput bool
}

// ParseConfig parses environment defaults and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := platformcmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "sqlite database path")
	fs.BoolVar(&cfg.Integrity, "integrity", false, "run the sqlite integrity check")
	fs.BoolVar(&cfg.Audit, "audit", false, "audit stored status labels against the labels the domain recognizes")
	fs.BoolVar(&cfg.Vacuum, "vacuum", false, "rebuild the database file, reclaiming free pages")
	fs.BoolVar(&cfg.JSONOutput, "json", false, "emit the report as JSON")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// store captures the slice of the sqlite store the maintenance tasks touch.
type store interface {
	TableCounts(ctx context.Context) (sqlite.TableCounts, error)
	IntegrityCheck(ctx context.Context) ([]string, error)
	StatusLabels(ctx context.Context) (sqlite.StatusLabels, error)
	Vacuum(ctx context.Context) error
	Close() error
}

// Report describes the outcome of one maintenance run.
type Report struct {
	DBPath    string             `json:"db_path"`
	Counts    sqlite.TableCounts `json:"counts"`
	Integrity *IntegrityResult   `json:"integrity,omitempty"`
	Audit     *AuditResult       `json:"audit,omitempty"`
	Vacuumed  bool               `json:"vacuumed,omitempty"`
}

// IntegrityResult carries the integrity check outcome.
type IntegrityResult struct {
	Healthy  bool     `json:"healthy"`
	Findings []string `json:"findings,omitempty"`
}

// AuditResult carries the status label audit outcome.
type AuditResult struct {
	Healthy  bool     `json:"healthy"`
	Findings []string `json:"findings,omitempty"`
}

// ErrIntegrityCheckFailed indicates the database reported corruption.
var ErrIntegrityCheckFailed = errors.New("integrity check failed")

// ErrAuditFailed indicates stored status labels the domain does not accept.
var ErrAuditFailed = errors.New("status label audit failed")

// Run opens the events database and executes the configured tasks. Without
// task flags it reports row counts only.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if strings.TrimSpace(cfg.DBPath) == "" {
		return errors.New("database path is required")
	}
	db, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open events database: %w", err)
	}
	defer func() { _ = db.Close() }()

	return run(ctx, cfg, db, out, errOut)
}

func run(ctx context.Context, cfg Config, db store, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}

	report := Report{DBPath: cfg.DBPath}

	counts, err := db.TableCounts(ctx)
	if err != nil {
		return err
	}
	report.Counts = counts

	if cfg.Integrity {
		findings, err := db.IntegrityCheck(ctx)
		if err != nil {
			return err
		}
		report.Integrity = &IntegrityResult{Healthy: len(findings) == 0, Findings: findings}
	}

	if cfg.Audit {
		labels, err := db.StatusLabels(ctx)
		if err != nil {
			return err
		}
		findings := auditStatusLabels(labels)
		report.Audit = &AuditResult{Healthy: len(findings) == 0, Findings: findings}
	}

	if cfg.Vacuum {
		if err := db.Vacuum(ctx); err != nil {
			return err
		}
		report.Vacuumed = true
	}

	if err := writeReport(out, cfg, report); err != nil {
		return err
	}

	if report.Integrity != nil && !report.Integrity.Healthy {
		for _, finding := range report.Integrity.Findings {
			fmt.Fprintf(errOut, "integrity: %s\n", finding)
		}
	}
	if report.Audit != nil && !report.Audit.Healthy {
		for _, finding := range report.Audit.Findings {
			fmt.Fprintf(errOut, "audit: %s\n", finding)
		}
	}
	switch {
	case report.Integrity != nil && !report.Integrity.Healthy:
		return ErrIntegrityCheckFailed
	case report.Audit != nil && !report.Audit.Healthy:
		return ErrAuditFailed
	}
	return nil
}

// auditStatusLabels flags labels the domain does not recognize, plus
// recognized labels stored in a non-canonical form. The sqlite integrity
// check sees neither; it only inspects the file structure.
func auditStatusLabels(labels sqlite.StatusLabels) []string {
	var findings []string
	for _, label := range sortedLabels(labels.Events) {
		canonical, ok := eventsdomain.ParseEventStatus(label)
		switch {
		case !ok:
			findings = append(findings, fmt.Sprintf("events: %d row(s) with unknown status %q", labels.Events[label], label))
		case string(canonical) != label:
			findings = append(findings, fmt.Sprintf("events: %d row(s) with status %q stored as %q", labels.Events[label], canonical, label))
		}
	}
	for _, label := range sortedLabels(labels.RSVPs) {
		canonical, ok := eventsdomain.ParseRSVPStatus(label)
		switch {
		case !ok:
			findings = append(findings, fmt.Sprintf("rsvps: %d row(s) with unknown status %q", labels.RSVPs[label], label))
		case string(canonical) != label:
			findings = append(findings, fmt.Sprintf("rsvps: %d row(s) with status %q stored as %q", labels.RSVPs[label], canonical, label))
		}
	}
	return findings
}

func sortedLabels(counts map[string]int) []string {
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

func writeReport(out io.Writer, cfg Config, report Report) error {
	if cfg.JSONOutput {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal report: %w", err)
		}
		_, err = fmt.Fprintf(out, "%s\n", data)
		return err
	}

	fmt.Fprintf(out, "Database: %s\n", report.DBPath)
	fmt.Fprintf(out, "  events:   %d\n", report.Counts.Events)
	fmt.Fprintf(out, "  rsvps:    %d\n", report.Counts.RSVPs)
	fmt.Fprintf(out, "  messages: %d\n", report.Counts.Messages)
	if report.Integrity != nil {
		if report.Integrity.Healthy {
			fmt.Fprintln(out, "Integrity: ok")
		} else {
			fmt.Fprintf(out, "Integrity: %d finding(s)\n", len(report.Integrity.Findings))
		}
	}
	if report.Audit != nil {
		if report.Audit.Healthy {
			fmt.Fprintln(out, "Status audit: ok")
		} else {
			fmt.Fprintf(out, "Status audit: %d finding(s)\n", len(report.Audit.Findings))
		}
	}
	if report.Vacuumed {
		fmt.Fprintln(out, "Vacuum: done")
	}
	return nil
}
