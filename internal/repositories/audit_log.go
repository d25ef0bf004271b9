package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"events-marketplace/internal/models"
)

// AuditLogRepository handles audit log data operations
type AuditLogRepository struct {
	db *sql.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *sql.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Create records an admin action
func (r *AuditLogRepository) Create(ctx context.Context, req *models.AuditLogCreateRequest) (*models.AuditLog, error) {
	query := `
		INSERT INTO admin_audit_log (admin_user_id, action, event_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, admin_user_id, action, event_id, details, created_at`

	entry := &models.AuditLog{}
	err := r.db.QueryRowContext(
		ctx,
		query,
		req.AdminUserID,
		req.Action,
		req.EventID,
		req.Details,
		time.Now(),
	).Scan(
		&entry.ID,
		&entry.AdminUserID,
		&entry.Action,
		&entry.EventID,
		&entry.Details,
		&entry.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create audit log entry: %w", err)
	}

	return entry, nil
}

// List retrieves audit log entries, newest first
func (r *AuditLogRepository) List(ctx context.Context, limit, offset int) ([]*models.AuditLog, int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM admin_audit_log`).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count audit log entries: %w", err)
	}

	query := `
		SELECT id, admin_user_id, action, event_id, details, created_at
		FROM admin_audit_log
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query audit log: %w", err)
	}
	defer rows.Close()

	var entries []*models.AuditLog
	for rows.Next() {
		entry := &models.AuditLog{}
		err := rows.Scan(
			&entry.ID,
			&entry.AdminUserID,
			&entry.Action,
			&entry.EventID,
			&entry.Details,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan audit log entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating audit log: %w", err)
	}

	return entries, total, nil
}
