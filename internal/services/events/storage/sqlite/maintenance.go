package sqlite

import (
	"context"
	"fmt"
	"strings"
)

// TableCounts reports the stored row totals per table.
type TableCounts struct {
	Events   int `json:"events"`
	RSVPs    int `json:"rsvps"`
	Messages int `json:"messages"`
}

// TableCounts returns the row totals for every table.
func (s *Store) TableCounts(ctx context.Context) (TableCounts, error) {
	var counts TableCounts
	var err error
	if counts.Events, err = s.countRow(ctx, `SELECT COUNT(*) FROM events`); err != nil {
		return TableCounts{}, fmt.Errorf("count events: %w", err)
	}
	if counts.RSVPs, err = s.countRow(ctx, `SELECT COUNT(*) FROM rsvps`); err != nil {
		return TableCounts{}, fmt.Errorf("count rsvps: %w", err)
	}
	if counts.Messages, err = s.countRow(ctx, `SELECT COUNT(*) FROM messages`); err != nil {
		return TableCounts{}, fmt.Errorf("count messages: %w", err)
	}
	return counts, nil
}

// StatusLabels reports the distinct status labels stored per table along
// with how many rows carry each. The status columns have no CHECK
// constraint, so callers audit the labels against the set the domain
// recognizes.
type StatusLabels struct {
	Events map[string]int `json:"events"`
	RSVPs  map[string]int `json:"rsvps"`
}

// StatusLabels returns the stored status labels for events and RSVPs.
func (s *Store) StatusLabels(ctx context.Context) (StatusLabels, error) {
	labels := StatusLabels{
		Events: make(map[string]int),
		RSVPs:  make(map[string]int),
	}
	if err := s.labelCounts(ctx, `SELECT status, COUNT(*) FROM events GROUP BY status`, labels.Events); err != nil {
		return StatusLabels{}, fmt.Errorf("count event statuses: %w", err)
	}
	if err := s.labelCounts(ctx, `SELECT status, COUNT(*) FROM rsvps GROUP BY status`, labels.RSVPs); err != nil {
		return StatusLabels{}, fmt.Errorf("count rsvp statuses: %w", err)
	}
	return labels, nil
}

func (s *Store) labelCounts(ctx context.Context, query string, dest map[string]int) error {
	rows, err := s.sqlDB.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var label string
		var count int
		if err := rows.Scan(&label, &count); err != nil {
			return err
		}
		dest[label] = count
	}
	return rows.Err()
}

// IntegrityCheck runs the SQLite integrity check and returns its findings.
// A healthy database returns an empty slice.
func (s *Store) IntegrityCheck(ctx context.Context) ([]string, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `PRAGMA integrity_check`)
	if err != nil {
		return nil, fmt.Errorf("run integrity check: %w", err)
	}
	defer rows.Close()

	var findings []string
	for rows.Next() {
		var finding string
		if err := rows.Scan(&finding); err != nil {
			return nil, fmt.Errorf("scan integrity finding: %w", err)
		}
		if strings.EqualFold(strings.TrimSpace(finding), "ok") {
			continue
		}
		findings = append(findings, finding)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read integrity findings: %w", err)
	}
	return findings, nil
}

// Vacuum rebuilds the database file, reclaiming free pages.
func (s *Store) Vacuum(ctx context.Context) error {
	if _, err := s.sqlDB.ExecContext(ctx, `VACUUM`); err != nil {
		return fmt.Errorf("vacuum database: %w", err)
	}
	return nil
}
