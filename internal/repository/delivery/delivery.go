package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"afyalinks/internal/entities"
	"afyalinks/internal/repository"
	"afyalinks/internal/service/assignment"
	"afyalinks/internal/service/confirmation"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create claims the order for the driver. The unique index on order_id makes
// a duplicate assignment surface as ErrOrderAlreadyAssigned instead of a
// second delivery row.
func (r *Repository) Create(ctx context.Context, orderID, driverID string) (*entities.Delivery, error) {
	query := `INSERT INTO deliveries (order_id, driver_id)
		VALUES ($1, $2)
		RETURNING id, order_id, driver_id, pickup_time, dropoff_time, created_at`

	var deliveryDB DeliveryDB
	err := r.querier.QueryRow(ctx, query, orderID, driverID).Scan(
		&deliveryDB.ID,
		&deliveryDB.OrderID,
		&deliveryDB.DriverID,
		&deliveryDB.PickupTime,
		&deliveryDB.DropoffTime,
		&deliveryDB.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, assignment.ErrOrderAlreadyAssigned
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID string) (*entities.Delivery, error) {
	query := `SELECT id, order_id, driver_id, pickup_time, dropoff_time, created_at
		FROM deliveries
		WHERE order_id = $1`

	var deliveryDB DeliveryDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(
		&deliveryDB.ID,
		&deliveryDB.OrderID,
		&deliveryDB.DriverID,
		&deliveryDB.PickupTime,
		&deliveryDB.DropoffTime,
		&deliveryDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, confirmation.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get error: %w", err)
	}

	return ToDomain(&deliveryDB), nil
}

func (r *Repository) SetPickupTime(ctx context.Context, orderID string, at time.Time) error {
	return r.setTimestamp(ctx, "pickup_time", orderID, at)
}

func (r *Repository) SetDropoffTime(ctx context.Context, orderID string, at time.Time) error {
	return r.setTimestamp(ctx, "dropoff_time", orderID, at)
}

func (r *Repository) setTimestamp(ctx context.Context, column, orderID string, at time.Time) error {
	query := fmt.Sprintf(`UPDATE deliveries SET %s = $2 WHERE order_id = $1`, column)

	result, err := r.querier.Exec(ctx, query, orderID, at)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository set %s error: %w", column, err)
	}
	if result.RowsAffected() == 0 {
		return confirmation.ErrOrderNotFound
	}

	return nil
}

// ListPendingByDriver returns the driver's assignments without a drop-off
// yet, joined with the order details the USSD menu shows.
func (r *Repository) ListPendingByDriver(ctx context.Context, driverID string) ([]entities.PendingDelivery, error) {
	query := `SELECT d.order_id, COALESCE(o.order_code, ''), o.delivery_address
		FROM deliveries d
		JOIN orders o ON o.id = d.order_id
		WHERE d.driver_id = $1
		AND d.dropoff_time IS NULL
		ORDER BY d.created_at`

	rows, err := r.querier.Query(ctx, query, driverID)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list pending error: %w", err)
	}
	defer rows.Close()

	var pendingDB []PendingDeliveryDB
	for rows.Next() {
		var p PendingDeliveryDB
		if err = rows.Scan(&p.OrderID, &p.OrderCode, &p.DeliveryAddress); err != nil {
			return nil, fmt.Errorf("unexpected delivery repository list pending scan error: %w", err)
		}
		pendingDB = append(pendingDB, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list pending rows error: %w", err)
	}

	return ToDomainPendingList(pendingDB), nil
}
