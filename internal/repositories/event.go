package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"events-marketplace/internal/models"
)

// EventRepository handles event data operations
type EventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = `id, title, description, starts_at, venue, city, organizer_id, status,
		reviewed_by, reviewed_at, rejection_reason, created_at, updated_at`

// Create creates a new draft event owned by the organizer
func (r *EventRepository) Create(ctx context.Context, organizerID int, req *models.EventCreateRequest) (*models.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO events (title, description, starts_at, venue, city, organizer_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING ` + eventColumns

	return r.scanEvent(r.db.QueryRowContext(
		ctx,
		query,
		req.Title,
		req.Description,
		req.StartsAt,
		req.Venue,
		req.City,
		organizerID,
		models.StatusDraft,
		time.Now(),
	))
}

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id int) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	return r.scanEvent(r.db.QueryRowContext(ctx, query, id))
}

// Update updates a draft event's editable fields
func (r *EventRepository) Update(ctx context.Context, id int, req *models.EventUpdateRequest) (*models.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		UPDATE events
		SET title = $2, description = $3, starts_at = $4, venue = $5, city = $6, updated_at = $7
		WHERE id = $1 AND status = $8
		RETURNING ` + eventColumns

	event, err := r.scanEvent(r.db.QueryRowContext(
		ctx, query, id, req.Title, req.Description, req.StartsAt, req.Venue, req.City,
		time.Now(), models.StatusDraft,
	))
	if err != nil {
		if errors.Is(err, models.ErrEventNotFound) {
			// Either missing or no longer a draft
			if _, getErr := r.GetByID(ctx, id); getErr == nil {
				return nil, models.ErrInvalidTransition
			}
		}
		return nil, err
	}

	return event, nil
}

// ListPublished retrieves published events ordered by start date
func (r *EventRepository) ListPublished(ctx context.Context, limit, offset int) ([]*models.Event, int, error) {
	var total int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM events WHERE status = $1`, models.StatusPublished).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count published events: %w", err)
	}

	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE status = $1
		ORDER BY starts_at ASC
		LIMIT $2 OFFSET $3`

	events, err := r.queryEvents(ctx, query, models.StatusPublished, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	return events, total, nil
}

// ListByOrganizer retrieves all events owned by an organizer
func (r *EventRepository) ListByOrganizer(ctx context.Context, organizerID int) ([]*models.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE organizer_id = $1
		ORDER BY created_at DESC`

	return r.queryEvents(ctx, query, organizerID)
}

// ListPending retrieves events awaiting admin review, oldest first
func (r *EventRepository) ListPending(ctx context.Context, limit, offset int) ([]*models.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE status = $1
		ORDER BY updated_at ASC
		LIMIT $2 OFFSET $3`

	return r.queryEvents(ctx, query, models.StatusPendingApproval, limit, offset)
}

// SubmitForReview moves an organizer's draft event to pending approval. The
// status check rides on the conditional update so a stale caller cannot
// resubmit an already reviewed event.
func (r *EventRepository) SubmitForReview(ctx context.Context, eventID, organizerID int) error {
	query := `
		UPDATE events
		SET status = $3, updated_at = $4
		WHERE id = $1 AND organizer_id = $2 AND status = $5`

	return r.transition(ctx, query, eventID, organizerID, models.StatusPendingApproval, time.Now(), models.StatusDraft)
}

// Approve publishes a pending event and records the reviewer
func (r *EventRepository) Approve(ctx context.Context, eventID, reviewerID int) error {
	query := `
		UPDATE events
		SET status = $2, reviewed_by = $3, reviewed_at = $4, rejection_reason = '', updated_at = $4
		WHERE id = $1 AND status = $5`

	return r.transition(ctx, query, eventID, models.StatusPublished, reviewerID, time.Now(), models.StatusPendingApproval)
}

// Reject returns a pending event to draft with the reviewer's reason
func (r *EventRepository) Reject(ctx context.Context, eventID, reviewerID int, reason string) error {
	query := `
		UPDATE events
		SET status = $2, reviewed_by = $3, reviewed_at = $4, rejection_reason = $5, updated_at = $4
		WHERE id = $1 AND status = $6`

	return r.transition(ctx, query, eventID, models.StatusDraft, reviewerID, time.Now(), reason, models.StatusPendingApproval)
}

// Cancel cancels a published or pending event
func (r *EventRepository) Cancel(ctx context.Context, eventID int) error {
	query := `
		UPDATE events
		SET status = $2, updated_at = $3
		WHERE id = $1 AND status IN ($4, $5)`

	return r.transition(ctx, query, eventID, models.StatusCancelled, time.Now(),
		models.StatusPublished, models.StatusPendingApproval)
}

// transition runs a conditional status update and distinguishes a missing
// event from an update rejected by the status guard.
func (r *EventRepository) transition(ctx context.Context, query string, eventID int, args ...interface{}) error {
	allArgs := append([]interface{}{eventID}, args...)
	result, err := r.db.ExecContext(ctx, query, allArgs...)
	if err != nil {
		return fmt.Errorf("failed to update event status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		if _, getErr := r.GetByID(ctx, eventID); getErr != nil {
			return getErr
		}
		return models.ErrInvalidTransition
	}

	return nil
}

func (r *EventRepository) queryEvents(ctx context.Context, query string, args ...interface{}) ([]*models.Event, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event := &models.Event{}
		err := rows.Scan(
			&event.ID,
			&event.Title,
			&event.Description,
			&event.StartsAt,
			&event.Venue,
			&event.City,
			&event.OrganizerID,
			&event.Status,
			&event.ReviewedBy,
			&event.ReviewedAt,
			&event.RejectionReason,
			&event.CreatedAt,
			&event.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

func (r *EventRepository) scanEvent(row *sql.Row) (*models.Event, error) {
	event := &models.Event{}
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.StartsAt,
		&event.Venue,
		&event.City,
		&event.OrganizerID,
		&event.Status,
		&event.ReviewedBy,
		&event.ReviewedAt,
		&event.RejectionReason,
		&event.CreatedAt,
		&event.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}
