package services

import (
	"context"
	"fmt"
	"time"

	"events-marketplace/internal/models"
)

const publishedListingTTL = 2 * time.Minute

// EventListing is one cached page of published events together with the full
// published count, so pagination metadata stays identical on cache hits and
// misses
type EventListing struct {
	Events []*models.Event `json:"events"`
	Total  int             `json:"total"`
}

// EventService handles event browsing and organizer-side event management
type EventService struct {
	eventRepo EventRepository
	zoneRepo  ZoneRepository
	cache     EventCache
}

// NewEventService creates a new event service. The cache may be nil when no
// redis instance is configured.
func NewEventService(eventRepo EventRepository, zoneRepo ZoneRepository, cache EventCache) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		zoneRepo:  zoneRepo,
		cache:     cache,
	}
}

// ListPublished retrieves published events for public browsing, served from
// the cache when a fresh listing is available
func (s *EventService) ListPublished(ctx context.Context, limit, offset int) ([]*models.Event, int, error) {
	key := fmt.Sprintf("events:published:%d:%d", limit, offset)
	if s.cache != nil {
		if listing, ok := s.cache.GetListing(ctx, key); ok {
			return listing.Events, listing.Total, nil
		}
	}

	events, total, err := s.eventRepo.ListPublished(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	if s.cache != nil {
		s.cache.SetListing(ctx, key, &EventListing{Events: events, Total: total}, publishedListingTTL)
	}

	return events, total, nil
}

// GetPublishedEvent retrieves one published event with its zones and current
// availability for the purchase page
func (s *EventService) GetPublishedEvent(ctx context.Context, eventID int) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if !event.IsPublished() {
		return nil, models.ErrEventNotFound
	}

	zones, err := s.zoneRepo.GetByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	event.Zones = zones

	return event, nil
}

// CreateEvent creates a draft event owned by the organizer
func (s *EventService) CreateEvent(ctx context.Context, organizer *models.User, req *models.EventCreateRequest) (*models.Event, error) {
	if !organizer.IsOrganizer() {
		return nil, models.ErrForbidden
	}

	return s.eventRepo.Create(ctx, organizer.ID, req)
}

// UpdateEvent updates an organizer's own draft event
func (s *EventService) UpdateEvent(ctx context.Context, organizer *models.User, eventID int, req *models.EventUpdateRequest) (*models.Event, error) {
	if _, err := s.ownedEvent(ctx, organizer, eventID); err != nil {
		return nil, err
	}

	return s.eventRepo.Update(ctx, eventID, req)
}

// AddZone adds a zone to an organizer's own draft event. Zones cannot be
// added once the event leaves draft, so capacity stays immutable from the
// moment tickets can sell.
func (s *EventService) AddZone(ctx context.Context, organizer *models.User, eventID int, req *models.ZoneCreateRequest) (*models.Zone, error) {
	event, err := s.ownedEvent(ctx, organizer, eventID)
	if err != nil {
		return nil, err
	}

	if !event.CanBeEdited() {
		return nil, models.ErrInvalidTransition
	}

	return s.zoneRepo.Create(ctx, eventID, req)
}

// SubmitForReview submits an organizer's draft event for admin approval. An
// event needs at least one zone before it can be reviewed.
func (s *EventService) SubmitForReview(ctx context.Context, organizer *models.User, eventID int) error {
	if _, err := s.ownedEvent(ctx, organizer, eventID); err != nil {
		return err
	}

	zones, err := s.zoneRepo.GetByEvent(ctx, eventID)
	if err != nil {
		return err
	}
	if len(zones) == 0 {
		return fmt.Errorf("%w: event has no zones", models.ErrInvalidInput)
	}

	return s.eventRepo.SubmitForReview(ctx, eventID, organizer.ID)
}

// ListOwn retrieves the organizer's events with their zones
func (s *EventService) ListOwn(ctx context.Context, organizer *models.User) ([]*models.Event, error) {
	events, err := s.eventRepo.ListByOrganizer(ctx, organizer.ID)
	if err != nil {
		return nil, err
	}

	for _, event := range events {
		zones, err := s.zoneRepo.GetByEvent(ctx, event.ID)
		if err != nil {
			return nil, err
		}
		event.Zones = zones
	}

	return events, nil
}

func (s *EventService) ownedEvent(ctx context.Context, organizer *models.User, eventID int) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if event.OrganizerID != organizer.ID {
		return nil, models.ErrForbidden
	}

	return event, nil
}
