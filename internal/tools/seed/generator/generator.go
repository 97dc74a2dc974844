// Package generator produces randomized demo data for seeding the local
// development database with diverse events, guest responses and broadcasts.
package generator

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	eventsdomain "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/domain"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/tools/seed"
)

// organizerIDBase numbers generated organizers, clear of the fixed demo
// organizer id the dashboard scenario uses.
const organizerIDBase int64 = 100

const day = 24 * time.Hour

// domainWriter covers the event service operations the generator drives.
// The event domain service satisfies it; tests inject fakes.
type domainWriter interface {
	CreateEvent(ctx context.Context, input eventsdomain.CreateEventInput) (eventsdomain.Event, error)
	PublishEvent(ctx context.Context, organizerID int64, eventID string) (eventsdomain.Event, error)
	CompleteEvent(ctx context.Context, organizerID int64, eventID string) (eventsdomain.Event, error)
	CancelEvent(ctx context.Context, organizerID int64, eventID string) (eventsdomain.Event, error)
	SubmitRSVP(ctx context.Context, input eventsdomain.SubmitRSVPInput) (eventsdomain.RSVP, error)
	SendMessage(ctx context.Context, input eventsdomain.SendMessageInput) (eventsdomain.Message, error)
}

// Config holds configuration for the generator.
type Config struct {
	DBPath     string
	Preset     Preset
	Seed       int64
	Organizers int // Override preset's organizer count (0 = use preset default)
	Verbose    bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DBPath: "data/events.db",
		Preset: PresetDemo,
	}
}

// Generator orchestrates randomized data generation.
type Generator struct {
	config Config
	rng    *rand.Rand
	emails *emailRegistry
	writer domainWriter
	clock  *seed.Clock
	target *seed.Target
}

// New opens the sqlite target and builds a generator over its domain service.
func New(cfg Config) (*Generator, error) {
	rng := NewSeededRNG(cfg.Seed, cfg.Verbose)

	target, err := seed.OpenTarget(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	g := newGenerator(cfg, rng, target.Events, target.Clock)
	g.target = target
	return g, nil
}

// newGenerator constructs a Generator from pre-built dependencies. Used by
// tests to inject fakes without touching sqlite.
func newGenerator(cfg Config, rng *rand.Rand, writer domainWriter, clock *seed.Clock) *Generator {
	return &Generator{
		config: cfg,
		rng:    rng,
		emails: newEmailRegistry(),
		writer: writer,
		clock:  clock,
	}
}

// Close releases the sqlite target when the generator owns one.
func (g *Generator) Close() error {
	if g == nil || g.target == nil {
		return nil
	}
	return g.target.Close()
}

// Run executes the generation based on the configured preset.
func (g *Generator) Run(ctx context.Context) error {
	presetCfg := GetPresetConfig(g.config.Preset)

	organizers := presetCfg.Organizers
	if g.config.Organizers > 0 {
		organizers = g.config.Organizers
	}

	if g.config.Verbose {
		fmt.Fprintf(os.Stderr, "Running preset %q: %d organizer(s)\n", g.config.Preset, organizers)
	}

	base := g.clock.Now()
	defer g.clock.Set(base)

	for i := 0; i < organizers; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		organizerID := organizerIDBase + int64(i)
		if err := g.generateOrganizer(ctx, organizerID, base, presetCfg); err != nil {
			return fmt.Errorf("generate organizer %d: %w", organizerID, err)
		}
	}

	if g.config.Verbose {
		fmt.Fprintf(os.Stderr, "Generation complete: %d organizer(s) seeded\n", organizers)
	}
	return nil
}

// generateOrganizer creates one organizer's events with their responses and
// broadcasts.
func (g *Generator) generateOrganizer(ctx context.Context, organizerID int64, base time.Time, cfg PresetConfig) error {
	events := g.randomRange(cfg.EventsMin, cfg.EventsMax)
	if g.config.Verbose {
		fmt.Fprintf(os.Stderr, "  Organizer %d: %d event(s)\n", organizerID, events)
	}

	for i := 0; i < events; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := g.generateEvent(ctx, organizerID, i, base, cfg); err != nil {
			return fmt.Errorf("generate event %d: %w", i+1, err)
		}
	}
	return nil
}

// eventPlan fixes the instants and volumes for one generated event before
// any write happens.
type eventPlan struct {
	createdAt time.Time
	startsAt  time.Time
	endsAt    time.Time // zero keeps the event open-ended
	capacity  int
	guests    int
	messages  int
}

// generateEvent creates a single event and walks it through its lifecycle.
func (g *Generator) generateEvent(ctx context.Context, organizerID int64, index int, base time.Time, cfg PresetConfig) error {
	status := g.pickStatus(cfg, index)
	plan := g.planEvent(status, base, cfg)

	g.clock.Set(plan.createdAt)
	event, err := g.writer.CreateEvent(ctx, eventsdomain.CreateEventInput{
		OrganizerID: organizerID,
		Title:       eventTitle(g.rng),
		Description: eventDescription(g.rng),
		Location:    eventVenue(g.rng),
		StartsAt:    plan.startsAt,
		EndsAt:      plan.endsAt,
		Capacity:    plan.capacity,
	})
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}

	if g.config.Verbose {
		fmt.Fprintf(os.Stderr, "    Created event: %s (%s)\n", event.Title, status)
	}

	if status == eventsdomain.EventStatusDraft {
		return nil
	}

	publishAt := plan.createdAt.Add(time.Hour)
	g.clock.Set(publishAt)
	if _, err := g.writer.PublishEvent(ctx, organizerID, event.ID); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	// Guest responses arrive between publication and whichever comes first
	// of the start and the seeding instant. Canceled events stop collecting
	// responses halfway so the cancellation has room afterwards.
	rsvpUntil := base
	if plan.startsAt.Before(rsvpUntil) {
		rsvpUntil = plan.startsAt
	}
	cancelAt := time.Time{}
	if status == eventsdomain.EventStatusCanceled {
		half := rsvpUntil.Sub(publishAt) / 2
		rsvpUntil = publishAt.Add(half)
		cancelAt = rsvpUntil.Add(time.Hour)
	}

	for j := 0; j < plan.guests; j++ {
		g.clock.Set(g.between(publishAt, rsvpUntil))
		name := guestName(g.rng)
		if _, err := g.writer.SubmitRSVP(ctx, eventsdomain.SubmitRSVPInput{
			EventID:    event.ID,
			GuestName:  name,
			GuestEmail: g.emails.unique(guestEmailLocal(name)),
			Status:     g.pickRSVPStatus(),
		}); err != nil {
			return fmt.Errorf("submit rsvp: %w", err)
		}
	}

	switch status {
	case eventsdomain.EventStatusCompleted:
		g.clock.Set(plan.endsAt.Add(time.Hour))
		if _, err := g.writer.CompleteEvent(ctx, organizerID, event.ID); err != nil {
			return fmt.Errorf("complete event: %w", err)
		}
	case eventsdomain.EventStatusCanceled:
		g.clock.Set(cancelAt)
		if _, err := g.writer.CancelEvent(ctx, organizerID, event.ID); err != nil {
			return fmt.Errorf("cancel event: %w", err)
		}
	}

	for j := 0; j < plan.messages; j++ {
		g.clock.Set(g.between(publishAt, base))
		if _, err := g.writer.SendMessage(ctx, eventsdomain.SendMessageInput{
			EventID:  event.ID,
			SenderID: organizerID,
			Subject:  messageSubject(g.rng),
			Body:     messageBody(g.rng),
		}); err != nil {
			return fmt.Errorf("send message: %w", err)
		}
	}
	return nil
}

// pickStatus cycles through event statuses when the preset varies them.
func (g *Generator) pickStatus(cfg PresetConfig, index int) eventsdomain.EventStatus {
	if !cfg.VaryStatuses {
		return eventsdomain.EventStatusPublished
	}
	statuses := []eventsdomain.EventStatus{
		eventsdomain.EventStatusPublished,
		eventsdomain.EventStatusPublished,
		eventsdomain.EventStatusDraft,
		eventsdomain.EventStatusCompleted,
		eventsdomain.EventStatusCanceled,
	}
	return statuses[index%len(statuses)]
}

// planEvent fixes the timeline and volumes for one event. Completed events
// always sit in the past; published ones occasionally do too when the preset
// includes past events, which leaves them over rather than active.
func (g *Generator) planEvent(status eventsdomain.EventStatus, base time.Time, cfg PresetConfig) eventPlan {
	past := status == eventsdomain.EventStatusCompleted
	if !past && status == eventsdomain.EventStatusPublished && cfg.IncludePastEvents && g.rng.Intn(3) == 0 {
		past = true
	}

	var plan eventPlan
	length := time.Duration(g.randomRange(2, 8)) * time.Hour
	if past {
		plan.startsAt = base.Add(-g.days(5, 60))
		plan.createdAt = plan.startsAt.Add(-g.days(7, 30))
		plan.endsAt = plan.startsAt.Add(length)
	} else {
		plan.startsAt = base.Add(g.days(1, 45))
		plan.createdAt = base.Add(-g.days(1, 20))
		// A quarter of future events stay open-ended.
		if g.rng.Intn(4) > 0 {
			plan.endsAt = plan.startsAt.Add(length)
		}
	}

	plan.guests = g.randomRange(cfg.GuestsMin, cfg.GuestsMax)
	plan.messages = g.randomRange(cfg.MessagesMin, cfg.MessagesMax)
	// A third of events have no capacity limit; the rest always leave
	// headroom above the planned guest list.
	if g.rng.Intn(3) > 0 {
		plan.capacity = plan.guests + g.rng.Intn(50) + 5
	}
	return plan
}

// pickRSVPStatus rolls the response mix: mostly attending, some maybe, a few
// declines.
func (g *Generator) pickRSVPStatus() eventsdomain.RSVPStatus {
	roll := g.rng.Intn(100)
	switch {
	case roll < 70:
		return eventsdomain.RSVPStatusAttending
	case roll < 85:
		return eventsdomain.RSVPStatusMaybe
	default:
		return eventsdomain.RSVPStatusNotAttending
	}
}

// randomRange returns a random number in [min, max].
func (g *Generator) randomRange(min, max int) int {
	if min >= max {
		return min
	}
	return min + g.rng.Intn(max-min+1)
}

// between returns a random instant in [from, until).
func (g *Generator) between(from, until time.Time) time.Time {
	if !until.After(from) {
		return from
	}
	return from.Add(time.Duration(g.rng.Int63n(int64(until.Sub(from)))))
}

// days returns a random whole-day duration in [min, max] days.
func (g *Generator) days(min, max int) time.Duration {
	return time.Duration(g.randomRange(min, max)) * day
}
