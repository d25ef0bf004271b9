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

// OrderRepository handles order data operations. It is the single place where
// orders, line items and zone counters are written, always inside one
// transaction.
type OrderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateWithItems commits an order, its line items and the zone counter
// increments as one atomic unit. Capacity is re-validated here under the
// row's conditional update, so two racing orders can never oversell a zone:
// the update only lands when purchased_count + quantity still fits the
// capacity, and a zero row count means this request lost the race.
func (r *OrderRepository) CreateWithItems(ctx context.Context, order *models.Order, items []*models.OrderLineItem) (*models.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, &models.PersistenceError{Op: "begin order transaction", Err: err}
	}
	defer tx.Rollback()

	for _, item := range items {
		result, err := tx.ExecContext(ctx, `
			UPDATE zones
			SET purchased_count = purchased_count + $2
			WHERE id = $1 AND purchased_count + $2 <= capacity`,
			item.ZoneID, item.Quantity)
		if err != nil {
			return nil, &models.PersistenceError{Op: "reserve zone stock", Err: err}
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return nil, &models.PersistenceError{Op: "reserve zone stock", Err: err}
		}

		if rows == 0 {
			// Lost the race between the optimistic check and the commit.
			// Report the fresh availability; the deferred rollback discards
			// every increment already applied in this transaction.
			var name string
			var available int
			err := tx.QueryRowContext(ctx, `
				SELECT name, capacity - purchased_count
				FROM zones
				WHERE id = $1`, item.ZoneID).Scan(&name, &available)
			if err != nil {
				return nil, &models.PersistenceError{Op: "reserve zone stock", Err: err}
			}

			return nil, &models.InsufficientStockError{
				ZoneName:  name,
				Requested: item.Quantity,
				Available: available,
			}
		}
	}

	now := time.Now()
	persisted := &models.Order{}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (user_id, event_id, order_number, status, total_amount, ticket_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id, user_id, event_id, order_number, status, total_amount, ticket_count, created_at, updated_at`,
		order.UserID,
		order.EventID,
		order.OrderNumber,
		order.Status,
		order.TotalAmount,
		order.TicketCount,
		now,
	).Scan(
		&persisted.ID,
		&persisted.UserID,
		&persisted.EventID,
		&persisted.OrderNumber,
		&persisted.Status,
		&persisted.TotalAmount,
		&persisted.TicketCount,
		&persisted.CreatedAt,
		&persisted.UpdatedAt,
	)
	if err != nil {
		return nil, &models.PersistenceError{Op: "insert order", Err: err}
	}

	for _, item := range items {
		lineItem := &models.OrderLineItem{}
		err = tx.QueryRowContext(ctx, `
			INSERT INTO order_line_items (order_id, zone_id, quantity, unit_price, subtotal, identity_documents)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, order_id, zone_id, quantity, unit_price, subtotal, identity_documents`,
			persisted.ID,
			item.ZoneID,
			item.Quantity,
			item.UnitPrice,
			item.Subtotal,
			pq.Array(item.IdentityDocuments),
		).Scan(
			&lineItem.ID,
			&lineItem.OrderID,
			&lineItem.ZoneID,
			&lineItem.Quantity,
			&lineItem.UnitPrice,
			&lineItem.Subtotal,
			pq.Array(&lineItem.IdentityDocuments),
		)
		if err != nil {
			return nil, &models.PersistenceError{Op: "insert order line item", Err: err}
		}

		lineItem.ZoneName = item.ZoneName
		persisted.Items = append(persisted.Items, lineItem)
	}

	if err = tx.Commit(); err != nil {
		return nil, &models.PersistenceError{Op: "commit order", Err: err}
	}

	return persisted, nil
}

// GetByID retrieves an order with its line items
func (r *OrderRepository) GetByID(ctx context.Context, id int) (*models.Order, error) {
	query := `
		SELECT id, user_id, event_id, order_number, status, total_amount, ticket_count, created_at, updated_at
		FROM orders
		WHERE id = $1`

	order := &models.Order{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID,
		&order.UserID,
		&order.EventID,
		&order.OrderNumber,
		&order.Status,
		&order.TotalAmount,
		&order.TicketCount,
		&order.CreatedAt,
		&order.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	items, err := r.getLineItems(ctx, id)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

// ListByUser retrieves a client's orders, newest first
func (r *OrderRepository) ListByUser(ctx context.Context, userID, limit, offset int) ([]*models.Order, int, error) {
	var total int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	query := `
		SELECT id, user_id, event_id, order_number, status, total_amount, ticket_count, created_at, updated_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order := &models.Order{}
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.EventID,
			&order.OrderNumber,
			&order.Status,
			&order.TotalAmount,
			&order.TicketCount,
			&order.CreatedAt,
			&order.UpdatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, total, nil
}

// MarkPaid transitions a pending order to paid. The status guard rides on the
// update, so a double payment confirmation cannot apply twice.
func (r *OrderRepository) MarkPaid(ctx context.Context, orderID int, paymentRef string) error {
	query := `
		UPDATE orders
		SET status = $2, payment_reference = $3, updated_at = $4
		WHERE id = $1 AND status = $5`

	result, err := r.db.ExecContext(ctx, query, orderID, models.OrderPaid, paymentRef, time.Now(), models.OrderPending)
	if err != nil {
		return fmt.Errorf("failed to mark order paid: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		if _, getErr := r.GetByID(ctx, orderID); getErr != nil {
			return getErr
		}
		return models.ErrInvalidTransition
	}

	return nil
}

func (r *OrderRepository) getLineItems(ctx context.Context, orderID int) ([]*models.OrderLineItem, error) {
	query := `
		SELECT li.id, li.order_id, li.zone_id, z.name, li.quantity, li.unit_price, li.subtotal, li.identity_documents
		FROM order_line_items li
		JOIN zones z ON z.id = li.zone_id
		WHERE li.order_id = $1
		ORDER BY li.id ASC`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order line items: %w", err)
	}
	defer rows.Close()

	var items []*models.OrderLineItem
	for rows.Next() {
		item := &models.OrderLineItem{}
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ZoneID,
			&item.ZoneName,
			&item.Quantity,
			&item.UnitPrice,
			&item.Subtotal,
			pq.Array(&item.IdentityDocuments),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order line item: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order line items: %w", err)
	}

	return items, nil
}
