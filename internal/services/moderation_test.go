package services

import (
	"context"
	"errors"
	"io"
	"testing"

	"events-marketplace/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memAuditRepo records audit entries in memory
type memAuditRepo struct {
	entries []*models.AuditLog
	fail    error
}

func (r *memAuditRepo) Create(ctx context.Context, req *models.AuditLogCreateRequest) (*models.AuditLog, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	entry := &models.AuditLog{
		ID:          len(r.entries) + 1,
		AdminUserID: req.AdminUserID,
		Action:      req.Action,
		EventID:     req.EventID,
		Details:     req.Details,
	}
	r.entries = append(r.entries, entry)
	return entry, nil
}

func (r *memAuditRepo) List(ctx context.Context, limit, offset int) ([]*models.AuditLog, int, error) {
	return r.entries, len(r.entries), nil
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestModerationService_Approve(t *testing.T) {
	ctx := context.Background()
	admin := &models.User{ID: 9, Role: models.RoleAdmin}

	t.Run("pending event is published and audited", func(t *testing.T) {
		event := &models.Event{ID: 1, Title: "Rock Fest", OrganizerID: 3, Status: models.StatusPendingApproval}
		repo := newMemEventRepo(event)
		audit := &memAuditRepo{}
		cache := newCountingCache()
		service := NewModerationService(repo, audit, cache, quietLogger())

		require.NoError(t, service.Approve(ctx, admin, event.ID))

		assert.Equal(t, models.StatusPublished, event.Status)
		require.NotNil(t, event.ReviewedBy)
		assert.Equal(t, admin.ID, *event.ReviewedBy)

		require.Len(t, audit.entries, 1)
		assert.Equal(t, models.AuditActionEventApprove, audit.entries[0].Action)
		assert.Equal(t, event.ID, audit.entries[0].EventID)

		assert.Equal(t, 1, cache.invalidated, "public listings must be invalidated")
	})

	t.Run("draft event cannot be approved", func(t *testing.T) {
		event := &models.Event{ID: 1, Status: models.StatusDraft}
		audit := &memAuditRepo{}
		service := NewModerationService(newMemEventRepo(event), audit, nil, quietLogger())

		err := service.Approve(ctx, admin, event.ID)
		assert.ErrorIs(t, err, models.ErrInvalidTransition)
		assert.Empty(t, audit.entries, "a failed transition must not be audited")
	})

	t.Run("audit failure does not undo the decision", func(t *testing.T) {
		event := &models.Event{ID: 1, Status: models.StatusPendingApproval}
		audit := &memAuditRepo{fail: errors.New("audit table unavailable")}
		service := NewModerationService(newMemEventRepo(event), audit, nil, quietLogger())

		require.NoError(t, service.Approve(ctx, admin, event.ID))
		assert.Equal(t, models.StatusPublished, event.Status)
	})
}

func TestModerationService_Reject(t *testing.T) {
	ctx := context.Background()
	admin := &models.User{ID: 9, Role: models.RoleAdmin}

	t.Run("rejection needs a reason", func(t *testing.T) {
		service := NewModerationService(newMemEventRepo(), &memAuditRepo{}, nil, quietLogger())
		err := service.Reject(ctx, admin, 1, "   ")
		assert.ErrorIs(t, err, models.ErrInvalidInput)
	})

	t.Run("rejected event returns to draft with the reason", func(t *testing.T) {
		event := &models.Event{ID: 1, Title: "Rock Fest", Status: models.StatusPendingApproval}
		audit := &memAuditRepo{}
		cache := newCountingCache()
		service := NewModerationService(newMemEventRepo(event), audit, cache, quietLogger())

		require.NoError(t, service.Reject(ctx, admin, event.ID, "venue not confirmed"))

		assert.Equal(t, models.StatusDraft, event.Status)
		assert.Equal(t, "venue not confirmed", event.RejectionReason)

		require.Len(t, audit.entries, 1)
		assert.Equal(t, models.AuditActionEventReject, audit.entries[0].Action)
		assert.Contains(t, audit.entries[0].Details, "venue not confirmed")
		assert.Equal(t, 1, cache.invalidated)
	})
}

func TestModerationService_Cancel(t *testing.T) {
	ctx := context.Background()
	admin := &models.User{ID: 9, Role: models.RoleAdmin}

	t.Run("published event is cancelled and audited", func(t *testing.T) {
		event := &models.Event{ID: 1, Title: "Rock Fest", Status: models.StatusPublished}
		audit := &memAuditRepo{}
		cache := newCountingCache()
		service := NewModerationService(newMemEventRepo(event), audit, cache, quietLogger())

		require.NoError(t, service.Cancel(ctx, admin, event.ID))

		assert.Equal(t, models.StatusCancelled, event.Status)
		require.Len(t, audit.entries, 1)
		assert.Equal(t, models.AuditActionEventCancel, audit.entries[0].Action)
		assert.Equal(t, 1, cache.invalidated)
	})

	t.Run("draft event cannot be cancelled", func(t *testing.T) {
		event := &models.Event{ID: 1, Status: models.StatusDraft}
		service := NewModerationService(newMemEventRepo(event), &memAuditRepo{}, nil, quietLogger())

		err := service.Cancel(ctx, admin, event.ID)
		assert.ErrorIs(t, err, models.ErrInvalidTransition)
	})
}
