// Package app wires event persistence into the domain service for the MCP
// and web surfaces.
package app

import (
	"context"
	"errors"

	apperrors "github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/platform/errors"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/domain"
	"github.com/UPTIQ-V2-Dev/event-connect-805101-sub001/internal/services/events/storage"
)

type domainStoreAdapter struct {
	eventStore   storage.EventStore
	rsvpStore    storage.RSVPStore
	messageStore storage.MessageStore
}

// NewDomainStore adapts storage contracts to the domain persistence boundary.
func NewDomainStore(eventStore storage.EventStore, rsvpStore storage.RSVPStore, messageStore storage.MessageStore) domain.Store {
	return &domainStoreAdapter{
		eventStore:   eventStore,
		rsvpStore:    rsvpStore,
		messageStore: messageStore,
	}
}

func (a *domainStoreAdapter) PutEvent(ctx context.Context, event domain.Event) error {
	if a == nil || a.eventStore == nil {
		return domain.ErrStoreNotConfigured
	}
	return mapStorageError(a.eventStore.PutEvent(ctx, toStorageEvent(event)))
}

func (a *domainStoreAdapter) GetEvent(ctx context.Context, eventID string) (domain.Event, error) {
	if a == nil || a.eventStore == nil {
		return domain.Event{}, domain.ErrStoreNotConfigured
	}
	record, err := a.eventStore.GetEvent(ctx, eventID)
	if err != nil {
		return domain.Event{}, mapStorageError(err)
	}
	return toDomainEvent(record), nil
}

func (a *domainStoreAdapter) UpdateEvent(ctx context.Context, event domain.Event) error {
	if a == nil || a.eventStore == nil {
		return domain.ErrStoreNotConfigured
	}
	return mapStorageError(a.eventStore.UpdateEvent(ctx, toStorageEvent(event)))
}

func (a *domainStoreAdapter) ListEventsByOrganizer(ctx context.Context, organizerID int64, query domain.ListEventsQuery) (domain.EventPage, error) {
	if a == nil || a.eventStore == nil {
		return domain.EventPage{}, domain.ErrStoreNotConfigured
	}
	page, err := a.eventStore.ListEventsByOrganizer(ctx, organizerID, storage.ListEventsQuery{
		Filter:    query.Filter,
		PageSize:  query.PageSize,
		PageToken: query.PageToken,
	})
	if err != nil {
		return domain.EventPage{}, mapStorageError(err)
	}
	result := domain.EventPage{
		Events:        make([]domain.Event, 0, len(page.Events)),
		NextPageToken: page.NextPageToken,
	}
	for _, record := range page.Events {
		result.Events = append(result.Events, toDomainEvent(record))
	}
	return result, nil
}

func (a *domainStoreAdapter) GetRSVPByEventAndEmail(ctx context.Context, eventID string, guestEmail string) (domain.RSVP, error) {
	if a == nil || a.rsvpStore == nil {
		return domain.RSVP{}, domain.ErrStoreNotConfigured
	}
	record, err := a.rsvpStore.GetRSVPByEventAndEmail(ctx, eventID, guestEmail)
	if err != nil {
		return domain.RSVP{}, mapStorageError(err)
	}
	return toDomainRSVP(record), nil
}

func (a *domainStoreAdapter) PutRSVP(ctx context.Context, rsvp domain.RSVP) error {
	if a == nil || a.rsvpStore == nil {
		return domain.ErrStoreNotConfigured
	}
	return mapStorageError(a.rsvpStore.PutRSVP(ctx, toStorageRSVP(rsvp)))
}

func (a *domainStoreAdapter) UpdateRSVP(ctx context.Context, rsvp domain.RSVP) error {
	if a == nil || a.rsvpStore == nil {
		return domain.ErrStoreNotConfigured
	}
	return mapStorageError(a.rsvpStore.UpdateRSVP(ctx, toStorageRSVP(rsvp)))
}

func (a *domainStoreAdapter) ListRSVPsByEvent(ctx context.Context, eventID string, pageSize int, pageToken string) (domain.RSVPPage, error) {
	if a == nil || a.rsvpStore == nil {
		return domain.RSVPPage{}, domain.ErrStoreNotConfigured
	}
	page, err := a.rsvpStore.ListRSVPsByEvent(ctx, eventID, pageSize, pageToken)
	if err != nil {
		return domain.RSVPPage{}, mapStorageError(err)
	}
	result := domain.RSVPPage{
		RSVPs:         make([]domain.RSVP, 0, len(page.RSVPs)),
		NextPageToken: page.NextPageToken,
	}
	for _, record := range page.RSVPs {
		result.RSVPs = append(result.RSVPs, toDomainRSVP(record))
	}
	return result, nil
}

func (a *domainStoreAdapter) CountAttendingRSVPs(ctx context.Context, eventID string) (int, error) {
	if a == nil || a.rsvpStore == nil {
		return 0, domain.ErrStoreNotConfigured
	}
	count, err := a.rsvpStore.CountAttendingRSVPs(ctx, eventID)
	if err != nil {
		return 0, mapStorageError(err)
	}
	return count, nil
}

func (a *domainStoreAdapter) PutMessage(ctx context.Context, message domain.Message) error {
	if a == nil || a.messageStore == nil {
		return domain.ErrStoreNotConfigured
	}
	return mapStorageError(a.messageStore.PutMessage(ctx, toStorageMessage(message)))
}

func (a *domainStoreAdapter) ListMessagesByEvent(ctx context.Context, eventID string, pageSize int, pageToken string) (domain.MessagePage, error) {
	if a == nil || a.messageStore == nil {
		return domain.MessagePage{}, domain.ErrStoreNotConfigured
	}
	page, err := a.messageStore.ListMessagesByEvent(ctx, eventID, pageSize, pageToken)
	if err != nil {
		return domain.MessagePage{}, mapStorageError(err)
	}
	result := domain.MessagePage{
		Messages:      make([]domain.Message, 0, len(page.Messages)),
		NextPageToken: page.NextPageToken,
	}
	for _, record := range page.Messages {
		result.Messages = append(result.Messages, toDomainMessage(record))
	}
	return result, nil
}

func toStorageEvent(event domain.Event) storage.EventRecord {
	return storage.EventRecord{
		ID:          event.ID,
		OrganizerID: event.OrganizerID,
		Title:       event.Title,
		Description: event.Description,
		Location:    event.Location,
		StartsAt:    event.StartsAt,
		EndsAt:      event.EndsAt,
		Status:      string(event.Status),
		Capacity:    event.Capacity,
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}
}

func toDomainEvent(record storage.EventRecord) domain.Event {
	return domain.Event{
		ID:          record.ID,
		OrganizerID: record.OrganizerID,
		Title:       record.Title,
		Description: record.Description,
		Location:    record.Location,
		StartsAt:    record.StartsAt,
		EndsAt:      record.EndsAt,
		Status:      domain.EventStatus(record.Status),
		Capacity:    record.Capacity,
		CreatedAt:   record.CreatedAt,
		UpdatedAt:   record.UpdatedAt,
	}
}

func toStorageRSVP(rsvp domain.RSVP) storage.RSVPRecord {
	return storage.RSVPRecord{
		ID:         rsvp.ID,
		EventID:    rsvp.EventID,
		GuestName:  rsvp.GuestName,
		GuestEmail: rsvp.GuestEmail,
		Status:     string(rsvp.Status),
		CreatedAt:  rsvp.CreatedAt,
		UpdatedAt:  rsvp.UpdatedAt,
	}
}

func toDomainRSVP(record storage.RSVPRecord) domain.RSVP {
	return domain.RSVP{
		ID:         record.ID,
		EventID:    record.EventID,
		GuestName:  record.GuestName,
		GuestEmail: record.GuestEmail,
		Status:     domain.RSVPStatus(record.Status),
		CreatedAt:  record.CreatedAt,
		UpdatedAt:  record.UpdatedAt,
	}
}

func toStorageMessage(message domain.Message) storage.MessageRecord {
	return storage.MessageRecord{
		ID:             message.ID,
		EventID:        message.EventID,
		SenderID:       message.SenderID,
		Subject:        message.Subject,
		Body:           message.Body,
		RecipientCount: message.RecipientCount,
		CreatedAt:      message.CreatedAt,
	}
}

func toDomainMessage(record storage.MessageRecord) domain.Message {
	return domain.Message{
		ID:             record.ID,
		EventID:        record.EventID,
		SenderID:       record.SenderID,
		Subject:        record.Subject,
		Body:           record.Body,
		RecipientCount: record.RecipientCount,
		CreatedAt:      record.CreatedAt,
	}
}

func mapStorageError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrNotFound):
		return domain.ErrNotFound
	case errors.Is(err, storage.ErrConflict):
		return domain.ErrConflict
	case errors.Is(err, storage.ErrInvalidFilter):
		return apperrors.Wrap(apperrors.CodeFilterInvalid, "list filter is invalid", err)
	default:
		return err
	}
}
