package services

import (
	"context"
	"time"

	"events-marketplace/internal/models"
	"events-marketplace/internal/repositories"
)

// UserRepository interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, req *models.UserCreateRequest, passwordHash string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateProfile(ctx context.Context, id int, req *models.UserUpdateRequest) (*models.User, error)
}

// EventRepository interface for event data operations
type EventRepository interface {
	Create(ctx context.Context, organizerID int, req *models.EventCreateRequest) (*models.Event, error)
	GetByID(ctx context.Context, id int) (*models.Event, error)
	Update(ctx context.Context, id int, req *models.EventUpdateRequest) (*models.Event, error)
	ListPublished(ctx context.Context, limit, offset int) ([]*models.Event, int, error)
	ListByOrganizer(ctx context.Context, organizerID int) ([]*models.Event, error)
	ListPending(ctx context.Context, limit, offset int) ([]*models.Event, error)
	SubmitForReview(ctx context.Context, eventID, organizerID int) error
	Approve(ctx context.Context, eventID, reviewerID int) error
	Reject(ctx context.Context, eventID, reviewerID int, reason string) error
	Cancel(ctx context.Context, eventID int) error
}

// ZoneRepository interface for zone data operations
type ZoneRepository interface {
	Create(ctx context.Context, eventID int, req *models.ZoneCreateRequest) (*models.Zone, error)
	GetByEvent(ctx context.Context, eventID int) ([]*models.Zone, error)
	GetByIDsForEvent(ctx context.Context, eventID int, zoneIDs []int) (map[int]*models.Zone, error)
}

// OrderRepository interface for order data operations. CreateWithItems is the
// transactional persistence gateway: order, line items and zone counters
// commit together or not at all.
type OrderRepository interface {
	CreateWithItems(ctx context.Context, order *models.Order, items []*models.OrderLineItem) (*models.Order, error)
	GetByID(ctx context.Context, id int) (*models.Order, error)
	ListByUser(ctx context.Context, userID, limit, offset int) ([]*models.Order, int, error)
	MarkPaid(ctx context.Context, orderID int, paymentRef string) error
}

// AuditLogRepository interface for audit log operations
type AuditLogRepository interface {
	Create(ctx context.Context, req *models.AuditLogCreateRequest) (*models.AuditLog, error)
	List(ctx context.Context, limit, offset int) ([]*models.AuditLog, int, error)
}

// ReportRepository interface for report aggregation queries
type ReportRepository interface {
	EventSales(ctx context.Context) ([]*repositories.EventSalesRow, error)
	ZoneSales(ctx context.Context, eventID int) ([]*repositories.ZoneSalesRow, error)
}

// EventCache caches pages of the published event listing
type EventCache interface {
	GetListing(ctx context.Context, key string) (*EventListing, bool)
	SetListing(ctx context.Context, key string, listing *EventListing, ttl time.Duration)
	Invalidate(ctx context.Context)
}
