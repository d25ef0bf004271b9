package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"events-marketplace/internal/models"

	"github.com/lib/pq"
)

// ZoneRepository handles zone data operations. The purchased counter is never
// written here; durable increments happen only inside the order transaction.
type ZoneRepository struct {
	db *sql.DB
}

// NewZoneRepository creates a new zone repository
func NewZoneRepository(db *sql.DB) *ZoneRepository {
	return &ZoneRepository{db: db}
}

const zoneColumns = `id, event_id, name, capacity, purchased_count, normal_price, preventa_price, preventa_ends_at, created_at`

// Create adds a zone to an event with an empty purchased counter
func (r *ZoneRepository) Create(ctx context.Context, eventID int, req *models.ZoneCreateRequest) (*models.Zone, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO zones (event_id, name, capacity, purchased_count, normal_price, preventa_price, preventa_ends_at, created_at)
		VALUES ($1, $2, $3, 0, $4, $5, $6, $7)
		RETURNING ` + zoneColumns

	return scanZone(r.db.QueryRowContext(
		ctx,
		query,
		eventID,
		req.Name,
		req.Capacity,
		req.NormalPrice,
		req.PreventaPrice,
		req.PreventaEndsAt,
		time.Now(),
	))
}

// GetByID retrieves a zone by ID
func (r *ZoneRepository) GetByID(ctx context.Context, id int) (*models.Zone, error) {
	query := `SELECT ` + zoneColumns + ` FROM zones WHERE id = $1`
	return scanZone(r.db.QueryRowContext(ctx, query, id))
}

// GetByEvent retrieves all zones of an event
func (r *ZoneRepository) GetByEvent(ctx context.Context, eventID int) ([]*models.Zone, error) {
	query := `
		SELECT ` + zoneColumns + `
		FROM zones
		WHERE event_id = $1
		ORDER BY normal_price ASC, created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query zones: %w", err)
	}
	defer rows.Close()

	return collectZones(rows)
}

// GetByIDsForEvent retrieves the requested zones of one event as fully
// resolved snapshots, keyed by zone id. Zone ids that do not exist or belong
// to a different event are simply absent from the result; the caller decides
// how to treat the gap.
func (r *ZoneRepository) GetByIDsForEvent(ctx context.Context, eventID int, zoneIDs []int) (map[int]*models.Zone, error) {
	if len(zoneIDs) == 0 {
		return map[int]*models.Zone{}, nil
	}

	query := `
		SELECT ` + zoneColumns + `
		FROM zones
		WHERE event_id = $1 AND id = ANY($2)`

	rows, err := r.db.QueryContext(ctx, query, eventID, pq.Array(zoneIDs))
	if err != nil {
		return nil, fmt.Errorf("failed to query zones: %w", err)
	}
	defer rows.Close()

	zones, err := collectZones(rows)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]*models.Zone, len(zones))
	for _, zone := range zones {
		byID[zone.ID] = zone
	}

	return byID, nil
}

func collectZones(rows *sql.Rows) ([]*models.Zone, error) {
	var zones []*models.Zone
	for rows.Next() {
		zone := &models.Zone{}
		err := rows.Scan(
			&zone.ID,
			&zone.EventID,
			&zone.Name,
			&zone.Capacity,
			&zone.PurchasedCount,
			&zone.NormalPrice,
			&zone.PreventaPrice,
			&zone.PreventaEndsAt,
			&zone.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan zone: %w", err)
		}
		zones = append(zones, zone)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating zones: %w", err)
	}

	return zones, nil
}

func scanZone(row *sql.Row) (*models.Zone, error) {
	zone := &models.Zone{}
	err := row.Scan(
		&zone.ID,
		&zone.EventID,
		&zone.Name,
		&zone.Capacity,
		&zone.PurchasedCount,
		&zone.NormalPrice,
		&zone.PreventaPrice,
		&zone.PreventaEndsAt,
		&zone.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrZoneNotFound
		}
		return nil, fmt.Errorf("failed to get zone: %w", err)
	}

	return zone, nil
}
