// Package sqlite provides SQLite-backed persistence for event management state.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/platform/storage/sqlitemigrate"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/storage"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

const (
	statusPublished = "published"
	statusAttending = "attending"
)

// Store provides SQLite-backed persistence for events, RSVPs, and messages.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// toMillisOrZero preserves the zero time as 0 for open-ended events.
func toMillisOrZero(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return toMillis(value)
}

func fromMillisOrZero(value int64) time.Time {
	if value == 0 {
		return time.Time{}
	}
	return fromMillis(value)
}

// Open opens an event SQLite store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL&_pragma=foreign_keys(ON)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := ensureForeignKeysEnabled(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	store := &Store{sqlDB: sqlDB}
	if err := store.runMigrations(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Ping verifies the underlying SQLite database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	return s.sqlDB.PingContext(ctx)
}

func (s *Store) runMigrations() error {
	return sqlitemigrate.ApplyMigrations(s.sqlDB, migrations.FS)
}

func ensureForeignKeysEnabled(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("sqlite db is required")
	}
	var enabled int
	if err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled); err != nil {
		return fmt.Errorf("check sqlite foreign key pragma: %w", err)
	}
	if enabled != 1 {
		return fmt.Errorf("sqlite foreign keys are disabled")
	}
	return nil
}

// PutEvent inserts one event row.
func (s *Store) PutEvent(ctx context.Context, record storage.EventRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	normalized, err := normalizeEventRecord(record)
	if err != nil {
		return err
	}

	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO events (
	id, organizer_id, title, description, location, starts_at, ends_at, status, capacity, created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
		normalized.ID,
		normalized.OrganizerID,
		normalized.Title,
		normalized.Description,
		normalized.Location,
		toMillis(normalized.StartsAt),
		toMillisOrZero(normalized.EndsAt),
		normalized.Status,
		normalized.Capacity,
		toMillis(normalized.CreatedAt),
		toMillis(normalized.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrConflict
		}
		return fmt.Errorf("put event: %w", err)
	}
	return nil
}

// GetEvent loads one event row by ID.
func (s *Store) GetEvent(ctx context.Context, eventID string) (storage.EventRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.EventRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.EventRecord{}, fmt.Errorf("storage is not configured")
	}
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return storage.EventRecord{}, fmt.Errorf("event id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, organizer_id, title, description, location, starts_at, ends_at, status, capacity, created_at, updated_at
FROM events
WHERE id = ?
`, eventID)
	record, err := scanEvent(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.EventRecord{}, storage.ErrNotFound
		}
		return storage.EventRecord{}, fmt.Errorf("get event: %w", err)
	}
	return record, nil
}

// UpdateEvent rewrites one existing event row.
func (s *Store) UpdateEvent(ctx context.Context, record storage.EventRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	normalized, err := normalizeEventRecord(record)
	if err != nil {
		return err
	}

	result, err := s.sqlDB.ExecContext(ctx, `
UPDATE events
SET title = ?, description = ?, location = ?, starts_at = ?, ends_at = ?, status = ?, capacity = ?, updated_at = ?
WHERE id = ?
`,
		normalized.Title,
		normalized.Description,
		normalized.Location,
		toMillis(normalized.StartsAt),
		toMillisOrZero(normalized.EndsAt),
		normalized.Status,
		normalized.Capacity,
		toMillis(normalized.UpdatedAt),
		normalized.ID,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update event rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ListEventsByOrganizer lists one organizer's events newest-first with cursor
// pagination and an optional AIP-160 filter.
func (s *Store) ListEventsByOrganizer(ctx context.Context, organizerID int64, query storage.ListEventsQuery) (storage.EventPage, error) {
	if err := ctx.Err(); err != nil {
		return storage.EventPage{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.EventPage{}, fmt.Errorf("storage is not configured")
	}
	if organizerID <= 0 {
		return storage.EventPage{}, fmt.Errorf("organizer id is required")
	}
	if query.PageSize <= 0 {
		return storage.EventPage{}, fmt.Errorf("page size must be greater than zero")
	}

	condition, err := parseEventFilter(query.Filter)
	if err != nil {
		return storage.EventPage{}, fmt.Errorf("%w: %v", storage.ErrInvalidFilter, err)
	}

	var sb strings.Builder
	sb.WriteString(`
SELECT id, organizer_id, title, description, location, starts_at, ends_at, status, capacity, created_at, updated_at
FROM events
WHERE organizer_id = ?
`)
	params := []any{organizerID}
	if condition.Clause != "" {
		sb.WriteString("  AND (")
		sb.WriteString(condition.Clause)
		sb.WriteString(")\n")
		params = append(params, condition.Params...)
	}

	pageToken := strings.TrimSpace(query.PageToken)
	if pageToken != "" {
		tokenCreatedAt, err := s.eventCreatedAtByID(ctx, organizerID, pageToken)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return storage.EventPage{}, nil
			}
			return storage.EventPage{}, err
		}
		sb.WriteString("  AND (created_at < ? OR (created_at = ? AND id < ?))\n")
		params = append(params, toMillis(tokenCreatedAt), toMillis(tokenCreatedAt), pageToken)
	}

	sb.WriteString("ORDER BY created_at DESC, id DESC\nLIMIT ?")
	params = append(params, query.PageSize+1)

	rows, err := s.sqlDB.QueryContext(ctx, sb.String(), params...)
	if err != nil {
		return storage.EventPage{}, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()
	return collectEventPage(rows, query.PageSize)
}

func (s *Store) eventCreatedAtByID(ctx context.Context, organizerID int64, eventID string) (time.Time, error) {
	var createdAt int64
	err := s.sqlDB.QueryRowContext(ctx, `
SELECT created_at FROM events WHERE organizer_id = ? AND id = ?
`, organizerID, eventID).Scan(&createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, storage.ErrNotFound
		}
		return time.Time{}, fmt.Errorf("resolve event page token: %w", err)
	}
	return fromMillis(createdAt), nil
}

// PutRSVP inserts one guest response row.
func (s *Store) PutRSVP(ctx context.Context, record storage.RSVPRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	normalized, err := normalizeRSVPRecord(record)
	if err != nil {
		return err
	}

	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO rsvps (
	id, event_id, guest_name, guest_email, status, created_at, updated_at
) VALUES (?, ?, ?, ?, ?, ?, ?)
`,
		normalized.ID,
		normalized.EventID,
		normalized.GuestName,
		normalized.GuestEmail,
		normalized.Status,
		toMillis(normalized.CreatedAt),
		toMillis(normalized.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) || isForeignKeyViolation(err) {
			return storage.ErrConflict
		}
		return fmt.Errorf("put rsvp: %w", err)
	}
	return nil
}

// UpdateRSVP rewrites one existing guest response row.
func (s *Store) UpdateRSVP(ctx context.Context, record storage.RSVPRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	normalized, err := normalizeRSVPRecord(record)
	if err != nil {
		return err
	}

	result, err := s.sqlDB.ExecContext(ctx, `
UPDATE rsvps
SET guest_name = ?, status = ?, updated_at = ?
WHERE id = ?
`,
		normalized.GuestName,
		normalized.Status,
		toMillis(normalized.UpdatedAt),
		normalized.ID,
	)
	if err != nil {
		return fmt.Errorf("update rsvp: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update rsvp rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// GetRSVPByEventAndEmail loads one guest response by its event-scoped email.
func (s *Store) GetRSVPByEventAndEmail(ctx context.Context, eventID string, guestEmail string) (storage.RSVPRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.RSVPRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.RSVPRecord{}, fmt.Errorf("storage is not configured")
	}
	eventID = strings.TrimSpace(eventID)
	guestEmail = strings.ToLower(strings.TrimSpace(guestEmail))
	if eventID == "" {
		return storage.RSVPRecord{}, fmt.Errorf("event id is required")
	}
	if guestEmail == "" {
		return storage.RSVPRecord{}, storage.ErrNotFound
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, event_id, guest_name, guest_email, status, created_at, updated_at
FROM rsvps
WHERE event_id = ? AND guest_email = ?
`, eventID, guestEmail)
	record, err := scanRSVP(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.RSVPRecord{}, storage.ErrNotFound
		}
		return storage.RSVPRecord{}, fmt.Errorf("get rsvp by email: %w", err)
	}
	return record, nil
}

// ListRSVPsByEvent lists one event's guest responses newest-first with cursor pagination.
func (s *Store) ListRSVPsByEvent(ctx context.Context, eventID string, pageSize int, pageToken string) (storage.RSVPPage, error) {
	if err := ctx.Err(); err != nil {
		return storage.RSVPPage{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.RSVPPage{}, fmt.Errorf("storage is not configured")
	}
	eventID = strings.TrimSpace(eventID)
	pageToken = strings.TrimSpace(pageToken)
	if eventID == "" {
		return storage.RSVPPage{}, fmt.Errorf("event id is required")
	}
	if pageSize <= 0 {
		return storage.RSVPPage{}, fmt.Errorf("page size must be greater than zero")
	}

	limit := pageSize + 1
	if pageToken == "" {
		rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, event_id, guest_name, guest_email, status, created_at, updated_at
FROM rsvps
WHERE event_id = ?
ORDER BY created_at DESC, id DESC
LIMIT ?
`, eventID, limit)
		if err != nil {
			return storage.RSVPPage{}, fmt.Errorf("list rsvps: %w", err)
		}
		defer rows.Close()
		return collectRSVPPage(rows, pageSize)
	}

	tokenCreatedAt, err := s.rsvpCreatedAtByID(ctx, eventID, pageToken)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.RSVPPage{}, nil
		}
		return storage.RSVPPage{}, err
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, event_id, guest_name, guest_email, status, created_at, updated_at
FROM rsvps
WHERE event_id = ?
  AND (created_at < ? OR (created_at = ? AND id < ?))
ORDER BY created_at DESC, id DESC
LIMIT ?
`, eventID, toMillis(tokenCreatedAt), toMillis(tokenCreatedAt), pageToken, limit)
	if err != nil {
		return storage.RSVPPage{}, fmt.Errorf("list rsvps with token: %w", err)
	}
	defer rows.Close()
	return collectRSVPPage(rows, pageSize)
}

func (s *Store) rsvpCreatedAtByID(ctx context.Context, eventID string, rsvpID string) (time.Time, error) {
	var createdAt int64
	err := s.sqlDB.QueryRowContext(ctx, `
SELECT created_at FROM rsvps WHERE event_id = ? AND id = ?
`, eventID, rsvpID).Scan(&createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, storage.ErrNotFound
		}
		return time.Time{}, fmt.Errorf("resolve rsvp page token: %w", err)
	}
	return fromMillis(createdAt), nil
}

// CountAttendingRSVPs counts attending guests for one event.
func (s *Store) CountAttendingRSVPs(ctx context.Context, eventID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return 0, fmt.Errorf("event id is required")
	}

	var count int
	if err := s.sqlDB.QueryRowContext(ctx, `
SELECT COUNT(1) FROM rsvps WHERE event_id = ? AND status = ?
`, eventID, statusAttending).Scan(&count); err != nil {
		return 0, fmt.Errorf("count attending rsvps: %w", err)
	}
	return count, nil
}

// PutMessage inserts one broadcast row.
func (s *Store) PutMessage(ctx context.Context, record storage.MessageRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	normalized, err := normalizeMessageRecord(record)
	if err != nil {
		return err
	}

	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO messages (
	id, event_id, sender_id, subject, body, recipient_count, created_at
) VALUES (?, ?, ?, ?, ?, ?, ?)
`,
		normalized.ID,
		normalized.EventID,
		normalized.SenderID,
		normalized.Subject,
		normalized.Body,
		normalized.RecipientCount,
		toMillis(normalized.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) || isForeignKeyViolation(err) {
			return storage.ErrConflict
		}
		return fmt.Errorf("put message: %w", err)
	}
	return nil
}

// ListMessagesByEvent lists one event's broadcasts newest-first with cursor pagination.
func (s *Store) ListMessagesByEvent(ctx context.Context, eventID string, pageSize int, pageToken string) (storage.MessagePage, error) {
	if err := ctx.Err(); err != nil {
		return storage.MessagePage{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.MessagePage{}, fmt.Errorf("storage is not configured")
	}
	eventID = strings.TrimSpace(eventID)
	pageToken = strings.TrimSpace(pageToken)
	if eventID == "" {
		return storage.MessagePage{}, fmt.Errorf("event id is required")
	}
	if pageSize <= 0 {
		return storage.MessagePage{}, fmt.Errorf("page size must be greater than zero")
	}

	limit := pageSize + 1
	if pageToken == "" {
		rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, event_id, sender_id, subject, body, recipient_count, created_at
FROM messages
WHERE event_id = ?
ORDER BY created_at DESC, id DESC
LIMIT ?
`, eventID, limit)
		if err != nil {
			return storage.MessagePage{}, fmt.Errorf("list messages: %w", err)
		}
		defer rows.Close()
		return collectMessagePage(rows, pageSize)
	}

	tokenCreatedAt, err := s.messageCreatedAtByID(ctx, eventID, pageToken)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.MessagePage{}, nil
		}
		return storage.MessagePage{}, err
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, event_id, sender_id, subject, body, recipient_count, created_at
FROM messages
WHERE event_id = ?
  AND (created_at < ? OR (created_at = ? AND id < ?))
ORDER BY created_at DESC, id DESC
LIMIT ?
`, eventID, toMillis(tokenCreatedAt), toMillis(tokenCreatedAt), pageToken, limit)
	if err != nil {
		return storage.MessagePage{}, fmt.Errorf("list messages with token: %w", err)
	}
	defer rows.Close()
	return collectMessagePage(rows, pageSize)
}

func (s *Store) messageCreatedAtByID(ctx context.Context, eventID string, messageID string) (time.Time, error) {
	var createdAt int64
	err := s.sqlDB.QueryRowContext(ctx, `
SELECT created_at FROM messages WHERE event_id = ? AND id = ?
`, eventID, messageID).Scan(&createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, storage.ErrNotFound
		}
		return time.Time{}, fmt.Errorf("resolve message page token: %w", err)
	}
	return fromMillis(createdAt), nil
}

// CountEventsByOrganizer counts all events one organizer owns.
func (s *Store) CountEventsByOrganizer(ctx context.Context, organizerID int64) (int, error) {
	return s.countRow(ctx, `
SELECT COUNT(1) FROM events WHERE organizer_id = ?
`, organizerID)
}

// CountActiveEventsByOrganizer counts published events that are not over at
// the given instant. Open-ended events count until they start.
func (s *Store) CountActiveEventsByOrganizer(ctx context.Context, organizerID int64, now time.Time) (int, error) {
	return s.countRow(ctx, `
SELECT COUNT(1) FROM events
WHERE organizer_id = ?
  AND status = ?
  AND ((ends_at != 0 AND ends_at > ?) OR (ends_at = 0 AND starts_at > ?))
`, organizerID, statusPublished, toMillis(now), toMillis(now))
}

// CountUpcomingEventsByOrganizer counts published events starting inside [from, until).
func (s *Store) CountUpcomingEventsByOrganizer(ctx context.Context, organizerID int64, from time.Time, until time.Time) (int, error) {
	return s.countRow(ctx, `
SELECT COUNT(1) FROM events
WHERE organizer_id = ?
  AND status = ?
  AND starts_at >= ?
  AND starts_at < ?
`, organizerID, statusPublished, toMillis(from), toMillis(until))
}

// CountAttendingRSVPsByOrganizer counts attending guests across one organizer's events.
func (s *Store) CountAttendingRSVPsByOrganizer(ctx context.Context, organizerID int64) (int, error) {
	return s.countRow(ctx, `
SELECT COUNT(1)
FROM rsvps r
JOIN events e ON e.id = r.event_id
WHERE e.organizer_id = ?
  AND r.status = ?
`, organizerID, statusAttending)
}

// CountRSVPsByOrganizerSince counts guest responses of any status received
// across one organizer's events since the given instant.
func (s *Store) CountRSVPsByOrganizerSince(ctx context.Context, organizerID int64, since time.Time) (int, error) {
	return s.countRow(ctx, `
SELECT COUNT(1)
FROM rsvps r
JOIN events e ON e.id = r.event_id
WHERE e.organizer_id = ?
  AND r.created_at >= ?
`, organizerID, toMillis(since))
}

// CountMessagesBySenderSince counts broadcasts one sender issued since the given instant.
func (s *Store) CountMessagesBySenderSince(ctx context.Context, senderID int64, since time.Time) (int, error) {
	return s.countRow(ctx, `
SELECT COUNT(1) FROM messages WHERE sender_id = ? AND created_at >= ?
`, senderID, toMillis(since))
}

// CountEventsCreatedByOrganizerSince counts events one organizer created since the given instant.
func (s *Store) CountEventsCreatedByOrganizerSince(ctx context.Context, organizerID int64, since time.Time) (int, error) {
	return s.countRow(ctx, `
SELECT COUNT(1) FROM events WHERE organizer_id = ? AND created_at >= ?
`, organizerID, toMillis(since))
}

func (s *Store) countRow(ctx context.Context, query string, args ...any) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	var count int
	if err := s.sqlDB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count rows: %w", err)
	}
	return count, nil
}

type scanner func(dest ...any) error

func normalizeEventRecord(record storage.EventRecord) (storage.EventRecord, error) {
	record.ID = strings.TrimSpace(record.ID)
	record.Title = strings.TrimSpace(record.Title)
	record.Description = strings.TrimSpace(record.Description)
	record.Location = strings.TrimSpace(record.Location)
	record.Status = strings.TrimSpace(record.Status)
	if record.ID == "" {
		return storage.EventRecord{}, fmt.Errorf("event id is required")
	}
	if record.OrganizerID <= 0 {
		return storage.EventRecord{}, fmt.Errorf("organizer id is required")
	}
	if record.Title == "" {
		return storage.EventRecord{}, fmt.Errorf("event title is required")
	}
	if record.Status == "" {
		return storage.EventRecord{}, fmt.Errorf("event status is required")
	}
	if record.StartsAt.IsZero() {
		return storage.EventRecord{}, fmt.Errorf("starts_at is required")
	}
	if record.Capacity < 0 {
		return storage.EventRecord{}, fmt.Errorf("capacity cannot be negative")
	}
	if record.CreatedAt.IsZero() {
		return storage.EventRecord{}, fmt.Errorf("created_at is required")
	}
	if record.UpdatedAt.IsZero() {
		return storage.EventRecord{}, fmt.Errorf("updated_at is required")
	}
	record.StartsAt = record.StartsAt.UTC()
	if !record.EndsAt.IsZero() {
		record.EndsAt = record.EndsAt.UTC()
	}
	record.CreatedAt = record.CreatedAt.UTC()
	record.UpdatedAt = record.UpdatedAt.UTC()
	return record, nil
}

func normalizeRSVPRecord(record storage.RSVPRecord) (storage.RSVPRecord, error) {
	record.ID = strings.TrimSpace(record.ID)
	record.EventID = strings.TrimSpace(record.EventID)
	record.GuestName = strings.TrimSpace(record.GuestName)
	record.GuestEmail = strings.ToLower(strings.TrimSpace(record.GuestEmail))
	record.Status = strings.TrimSpace(record.Status)
	if record.ID == "" {
		return storage.RSVPRecord{}, fmt.Errorf("rsvp id is required")
	}
	if record.EventID == "" {
		return storage.RSVPRecord{}, fmt.Errorf("event id is required")
	}
	if record.GuestName == "" {
		return storage.RSVPRecord{}, fmt.Errorf("guest name is required")
	}
	if record.GuestEmail == "" {
		return storage.RSVPRecord{}, fmt.Errorf("guest email is required")
	}
	if record.Status == "" {
		return storage.RSVPRecord{}, fmt.Errorf("rsvp status is required")
	}
	if record.CreatedAt.IsZero() {
		return storage.RSVPRecord{}, fmt.Errorf("created_at is required")
	}
	if record.UpdatedAt.IsZero() {
		return storage.RSVPRecord{}, fmt.Errorf("updated_at is required")
	}
	record.CreatedAt = record.CreatedAt.UTC()
	record.UpdatedAt = record.UpdatedAt.UTC()
	return record, nil
}

func normalizeMessageRecord(record storage.MessageRecord) (storage.MessageRecord, error) {
	record.ID = strings.TrimSpace(record.ID)
	record.EventID = strings.TrimSpace(record.EventID)
	record.Subject = strings.TrimSpace(record.Subject)
	record.Body = strings.TrimSpace(record.Body)
	if record.ID == "" {
		return storage.MessageRecord{}, fmt.Errorf("message id is required")
	}
	if record.EventID == "" {
		return storage.MessageRecord{}, fmt.Errorf("event id is required")
	}
	if record.SenderID <= 0 {
		return storage.MessageRecord{}, fmt.Errorf("sender id is required")
	}
	if record.Subject == "" {
		return storage.MessageRecord{}, fmt.Errorf("message subject is required")
	}
	if record.Body == "" {
		return storage.MessageRecord{}, fmt.Errorf("message body is required")
	}
	if record.RecipientCount < 0 {
		return storage.MessageRecord{}, fmt.Errorf("recipient count cannot be negative")
	}
	if record.CreatedAt.IsZero() {
		return storage.MessageRecord{}, fmt.Errorf("created_at is required")
	}
	record.CreatedAt = record.CreatedAt.UTC()
	return record, nil
}

func scanEvent(scan scanner) (storage.EventRecord, error) {
	var record storage.EventRecord
	var startsAt int64
	var endsAt int64
	var createdAt int64
	var updatedAt int64
	if err := scan(
		&record.ID,
		&record.OrganizerID,
		&record.Title,
		&record.Description,
		&record.Location,
		&startsAt,
		&endsAt,
		&record.Status,
		&record.Capacity,
		&createdAt,
		&updatedAt,
	); err != nil {
		return storage.EventRecord{}, err
	}
	record.StartsAt = fromMillis(startsAt)
	record.EndsAt = fromMillisOrZero(endsAt)
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}

func scanRSVP(scan scanner) (storage.RSVPRecord, error) {
	var record storage.RSVPRecord
	var createdAt int64
	var updatedAt int64
	if err := scan(
		&record.ID,
		&record.EventID,
		&record.GuestName,
		&record.GuestEmail,
		&record.Status,
		&createdAt,
		&updatedAt,
	); err != nil {
		return storage.RSVPRecord{}, err
	}
	record.CreatedAt = fromMillis(createdAt)
	record.UpdatedAt = fromMillis(updatedAt)
	return record, nil
}

func scanMessage(scan scanner) (storage.MessageRecord, error) {
	var record storage.MessageRecord
	var createdAt int64
	if err := scan(
		&record.ID,
		&record.EventID,
		&record.SenderID,
		&record.Subject,
		&record.Body,
		&record.RecipientCount,
		&createdAt,
	); err != nil {
		return storage.MessageRecord{}, err
	}
	record.CreatedAt = fromMillis(createdAt)
	return record, nil
}

func collectEventPage(rows *sql.Rows, pageSize int) (storage.EventPage, error) {
	page := storage.EventPage{
		Events: make([]storage.EventRecord, 0, pageSize),
	}
	for rows.Next() {
		record, err := scanEvent(rows.Scan)
		if err != nil {
			return storage.EventPage{}, fmt.Errorf("scan event row: %w", err)
		}
		page.Events = append(page.Events, record)
	}
	if err := rows.Err(); err != nil {
		return storage.EventPage{}, fmt.Errorf("iterate event rows: %w", err)
	}
	if len(page.Events) > pageSize {
		page.NextPageToken = page.Events[pageSize-1].ID
		page.Events = page.Events[:pageSize]
	}
	return page, nil
}

func collectRSVPPage(rows *sql.Rows, pageSize int) (storage.RSVPPage, error) {
	page := storage.RSVPPage{
		RSVPs: make([]storage.RSVPRecord, 0, pageSize),
	}
	for rows.Next() {
		record, err := scanRSVP(rows.Scan)
		if err != nil {
			return storage.RSVPPage{}, fmt.Errorf("scan rsvp row: %w", err)
		}
		page.RSVPs = append(page.RSVPs, record)
	}
	if err := rows.Err(); err != nil {
		return storage.RSVPPage{}, fmt.Errorf("iterate rsvp rows: %w", err)
	}
	if len(page.RSVPs) > pageSize {
		page.NextPageToken = page.RSVPs[pageSize-1].ID
		page.RSVPs = page.RSVPs[:pageSize]
	}
	return page, nil
}

func collectMessagePage(rows *sql.Rows, pageSize int) (storage.MessagePage, error) {
	page := storage.MessagePage{
		Messages: make([]storage.MessageRecord, 0, pageSize),
	}
	for rows.Next() {
		record, err := scanMessage(rows.Scan)
		if err != nil {
			return storage.MessagePage{}, fmt.Errorf("scan message row: %w", err)
		}
		page.Messages = append(page.Messages, record)
	}
	if err := rows.Err(); err != nil {
		return storage.MessagePage{}, fmt.Errorf("iterate message rows: %w", err)
	}
	if len(page.Messages) > pageSize {
		page.NextPageToken = page.Messages[pageSize-1].ID
		page.Messages = page.Messages[:pageSize]
	}
	return page, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

func isForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY {
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "foreign key constraint failed")
}

var _ storage.EventStore = (*Store)(nil)
var _ storage.RSVPStore = (*Store)(nil)
var _ storage.MessageStore = (*Store)(nil)
var _ storage.StatsStore = (*Store)(nil)
