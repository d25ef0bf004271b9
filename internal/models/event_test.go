package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvent_StatusHelpers(t *testing.T) {
	tests := []struct {
		status       EventStatus
		acceptOrders bool
		submittable  bool
		reviewable   bool
		cancellable  bool
		editable     bool
	}{
		{StatusDraft, false, true, false, false, true},
		{StatusPendingApproval, false, false, true, true, false},
		{StatusPublished, true, false, false, true, false},
		{StatusCancelled, false, false, false, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			event := &Event{Status: tt.status}
			assert.Equal(t, tt.acceptOrders, event.CanAcceptOrders())
			assert.Equal(t, tt.submittable, event.CanBeSubmitted())
			assert.Equal(t, tt.reviewable, event.CanBeReviewed())
			assert.Equal(t, tt.cancellable, event.CanBeCancelled())
			assert.Equal(t, tt.editable, event.CanBeEdited())
		})
	}
}

func TestEventCreateRequest_Validate(t *testing.T) {
	valid := EventCreateRequest{
		Title:    "Rock Fest",
		StartsAt: time.Now().Add(30 * 24 * time.Hour),
		Venue:    "Estadio Nacional",
		City:     "Lima",
	}

	t.Run("valid request", func(t *testing.T) {
		req := valid
		assert.NoError(t, req.Validate())
	})

	t.Run("empty title", func(t *testing.T) {
		req := valid
		req.Title = ""
		assert.Error(t, req.Validate())
	})

	t.Run("start date in the past", func(t *testing.T) {
		req := valid
		req.StartsAt = time.Now().Add(-time.Hour)
		assert.Error(t, req.Validate())
	})

	t.Run("missing venue", func(t *testing.T) {
		req := valid
		req.Venue = " "
		assert.Error(t, req.Validate())
	})

	t.Run("missing city", func(t *testing.T) {
		req := valid
		req.City = ""
		assert.Error(t, req.Validate())
	})
}
