package models

import (
	"errors"
	"strings"
	"time"
)

// EventStatus represents the status of an event
type EventStatus string

const (
	StatusDraft           EventStatus = "draft"
	StatusPendingApproval EventStatus = "pending_approval"
	StatusPublished       EventStatus = "published"
	StatusCancelled       EventStatus = "cancelled"
)

// Event represents an event in the system
type Event struct {
	ID              int         `json:"id" db:"id"`
	Title           string      `json:"title" db:"title"`
	Description     string      `json:"description" db:"description"`
	StartsAt        time.Time   `json:"starts_at" db:"starts_at"`
	Venue           string      `json:"venue" db:"venue"`
	City            string      `json:"city" db:"city"`
	OrganizerID     int         `json:"organizer_id" db:"organizer_id"`
	Status          EventStatus `json:"status" db:"status"`
	ReviewedBy      *int        `json:"reviewed_by,omitempty" db:"reviewed_by"`
	ReviewedAt      *time.Time  `json:"reviewed_at,omitempty" db:"reviewed_at"`
	RejectionReason string      `json:"rejection_reason,omitempty" db:"rejection_reason"`
	CreatedAt       time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at" db:"updated_at"`

	// Related data
	Zones []*Zone `json:"zones,omitempty"`
}

// EventCreateRequest represents the data needed to create a new event
type EventCreateRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"starts_at"`
	Venue       string    `json:"venue"`
	City        string    `json:"city"`
}

// EventUpdateRequest represents the data an organizer can change on a draft event
type EventUpdateRequest struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartsAt    time.Time `json:"starts_at"`
	Venue       string    `json:"venue"`
	City        string    `json:"city"`
}

// Validate validates event creation data
func (req *EventCreateRequest) Validate() error {
	return validateEventFields(req.Title, req.Description, req.StartsAt, req.Venue, req.City)
}

// Validate validates event update data
func (req *EventUpdateRequest) Validate() error {
	return validateEventFields(req.Title, req.Description, req.StartsAt, req.Venue, req.City)
}

func validateEventFields(title, description string, startsAt time.Time, venue, city string) error {
	if strings.TrimSpace(title) == "" {
		return errors.New("event title is required")
	}

	if len(title) > 200 {
		return errors.New("event title must be less than 200 characters")
	}

	if len(description) > 5000 {
		return errors.New("event description must be less than 5000 characters")
	}

	if startsAt.IsZero() {
		return errors.New("event start date is required")
	}

	if startsAt.Before(time.Now()) {
		return errors.New("event start date must be in the future")
	}

	if strings.TrimSpace(venue) == "" {
		return errors.New("event venue is required")
	}

	if strings.TrimSpace(city) == "" {
		return errors.New("event city is required")
	}

	return nil
}

// ValidateEventStatus validates an event status value
func ValidateEventStatus(status EventStatus) error {
	switch status {
	case StatusDraft, StatusPendingApproval, StatusPublished, StatusCancelled:
		return nil
	default:
		return errors.New("invalid event status")
	}
}

// IsPublished returns true if the event is published
func (e *Event) IsPublished() bool {
	return e.Status == StatusPublished
}

// IsDraft returns true if the event is a draft
func (e *Event) IsDraft() bool {
	return e.Status == StatusDraft
}

// IsPendingApproval returns true if the event awaits admin review
func (e *Event) IsPendingApproval() bool {
	return e.Status == StatusPendingApproval
}

// IsCancelled returns true if the event is cancelled
func (e *Event) IsCancelled() bool {
	return e.Status == StatusCancelled
}

// CanAcceptOrders returns true if tickets for the event can be purchased.
// Only published events accept orders.
func (e *Event) CanAcceptOrders() bool {
	return e.Status == StatusPublished
}

// CanBeSubmitted returns true if the organizer may submit the event for review
func (e *Event) CanBeSubmitted() bool {
	return e.Status == StatusDraft
}

// CanBeReviewed returns true if an admin may approve or reject the event
func (e *Event) CanBeReviewed() bool {
	return e.Status == StatusPendingApproval
}

// CanBeCancelled returns true if the event may be cancelled
func (e *Event) CanBeCancelled() bool {
	return e.Status == StatusPublished || e.Status == StatusPendingApproval
}

// CanBeEdited returns true if the organizer may still modify the event
func (e *Event) CanBeEdited() bool {
	return e.Status == StatusDraft
}
