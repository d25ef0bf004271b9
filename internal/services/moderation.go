package services

import (
	"context"
	"fmt"
	"strings"

	"events-marketplace/internal/models"

	"github.com/sirupsen/logrus"
)

// ModerationService handles the admin approval workflow for events. Every
// decision is recorded in the audit log and invalidates the public listing
// cache.
type ModerationService struct {
	eventRepo EventRepository
	auditRepo AuditLogRepository
	cache     EventCache
	log       *logrus.Logger
}

// NewModerationService creates a new moderation service
func NewModerationService(eventRepo EventRepository, auditRepo AuditLogRepository, cache EventCache, log *logrus.Logger) *ModerationService {
	return &ModerationService{
		eventRepo: eventRepo,
		auditRepo: auditRepo,
		cache:     cache,
		log:       log,
	}
}

// ListPending retrieves events awaiting review
func (s *ModerationService) ListPending(ctx context.Context, limit, offset int) ([]*models.Event, error) {
	return s.eventRepo.ListPending(ctx, limit, offset)
}

// Approve publishes a pending event
func (s *ModerationService) Approve(ctx context.Context, admin *models.User, eventID int) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}

	if err := s.eventRepo.Approve(ctx, eventID, admin.ID); err != nil {
		return err
	}

	s.recordAction(ctx, admin.ID, models.AuditActionEventApprove, event, "")
	s.invalidateListings(ctx)
	return nil
}

// Reject returns a pending event to draft with a reason for the organizer
func (s *ModerationService) Reject(ctx context.Context, admin *models.User, eventID int, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("%w: rejection reason is required", models.ErrInvalidInput)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}

	if err := s.eventRepo.Reject(ctx, eventID, admin.ID, reason); err != nil {
		return err
	}

	s.recordAction(ctx, admin.ID, models.AuditActionEventReject, event, reason)
	s.invalidateListings(ctx)
	return nil
}

// Cancel cancels a published or pending event
func (s *ModerationService) Cancel(ctx context.Context, admin *models.User, eventID int) error {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return err
	}

	if err := s.eventRepo.Cancel(ctx, eventID); err != nil {
		return err
	}

	s.recordAction(ctx, admin.ID, models.AuditActionEventCancel, event, "")
	s.invalidateListings(ctx)
	return nil
}

// recordAction writes the audit trail. A logging failure never rolls back the
// moderation decision itself.
func (s *ModerationService) recordAction(ctx context.Context, adminID int, action models.AuditAction, event *models.Event, reason string) {
	details := fmt.Sprintf("event %q (organizer %d)", event.Title, event.OrganizerID)
	if reason != "" {
		details = fmt.Sprintf("%s, reason: %s", details, reason)
	}

	_, err := s.auditRepo.Create(ctx, &models.AuditLogCreateRequest{
		AdminUserID: adminID,
		Action:      action,
		EventID:     event.ID,
		Details:     details,
	})
	if err != nil {
		s.log.WithError(err).WithFields(logrus.Fields{
			"event_id": event.ID,
			"action":   action,
		}).Warn("failed to record audit log entry")
	}
}

func (s *ModerationService) invalidateListings(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
