package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
)

// ReportRepository runs the aggregate queries behind the admin reports
type ReportRepository struct {
	db *sql.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// EventSalesRow is one event's sales summary. Cancelled orders are excluded;
// pending orders count as reserved but unpaid revenue.
type EventSalesRow struct {
	EventID     int             `json:"event_id"`
	EventTitle  string          `json:"event_title"`
	OrderCount  int             `json:"order_count"`
	TicketsSold int             `json:"tickets_sold"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// ZoneSalesRow is one zone's sales summary within an event
type ZoneSalesRow struct {
	ZoneID    int             `json:"zone_id"`
	ZoneName  string          `json:"zone_name"`
	Capacity  int             `json:"capacity"`
	Purchased int             `json:"purchased"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// EventSales aggregates orders per event
func (r *ReportRepository) EventSales(ctx context.Context) ([]*EventSalesRow, error) {
	query := `
		SELECT e.id, e.title,
			COUNT(o.id),
			COALESCE(SUM(o.ticket_count), 0),
			COALESCE(SUM(o.total_amount), 0)
		FROM events e
		LEFT JOIN orders o ON o.event_id = e.id AND o.status <> 'cancelled'
		WHERE e.status IN ('published', 'cancelled')
		GROUP BY e.id, e.title
		ORDER BY e.id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query event sales: %w", err)
	}
	defer rows.Close()

	var report []*EventSalesRow
	for rows.Next() {
		row := &EventSalesRow{}
		err := rows.Scan(&row.EventID, &row.EventTitle, &row.OrderCount, &row.TicketsSold, &row.Revenue)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event sales row: %w", err)
		}
		report = append(report, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event sales: %w", err)
	}

	return report, nil
}

// ZoneSales aggregates line items per zone for one event
func (r *ReportRepository) ZoneSales(ctx context.Context, eventID int) ([]*ZoneSalesRow, error) {
	query := `
		SELECT z.id, z.name, z.capacity, z.purchased_count,
			COALESCE(SUM(CASE WHEN o.id IS NOT NULL THEN li.subtotal ELSE 0 END), 0)
		FROM zones z
		LEFT JOIN order_line_items li ON li.zone_id = z.id
		LEFT JOIN orders o ON o.id = li.order_id AND o.status <> 'cancelled'
		WHERE z.event_id = $1
		GROUP BY z.id, z.name, z.capacity, z.purchased_count
		ORDER BY z.id ASC`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query zone sales: %w", err)
	}
	defer rows.Close()

	var report []*ZoneSalesRow
	for rows.Next() {
		row := &ZoneSalesRow{}
		err := rows.Scan(&row.ZoneID, &row.ZoneName, &row.Capacity, &row.Purchased, &row.Revenue)
		if err != nil {
			return nil, fmt.Errorf("failed to scan zone sales row: %w", err)
		}
		report = append(report, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating zone sales: %w", err)
	}

	return report, nil
}
