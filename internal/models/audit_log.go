package models

import "time"

// AuditAction identifies an administrative action recorded in the audit log
type AuditAction string

const (
	AuditActionEventApprove AuditAction = "event_approve"
	AuditActionEventReject  AuditAction = "event_reject"
	AuditActionEventCancel  AuditAction = "event_cancel"
)

// AuditLog represents a single administrative action, the raw material of the
// admin action report
type AuditLog struct {
	ID          int         `json:"id" db:"id"`
	AdminUserID int         `json:"admin_user_id" db:"admin_user_id"`
	Action      AuditAction `json:"action" db:"action"`
	EventID     int         `json:"event_id" db:"event_id"`
	Details     string      `json:"details" db:"details"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
}

// AuditLogCreateRequest represents the data needed to record an admin action
type AuditLogCreateRequest struct {
	AdminUserID int
	Action      AuditAction
	EventID     int
	Details     string
}
