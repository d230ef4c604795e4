package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"afyalinks/internal/entities"
	"afyalinks/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, clinic_id, pharmacy_id, status, subtotal, platform_commission,
		delivery_fee, delivery_commission, delivery_address, order_code, rejected_reason,
		created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create inserts the order together with its items. The caller is expected
// to run it inside a transaction so a partial item write never survives.
func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	query := `INSERT INTO orders (id, clinic_id, pharmacy_id, status, subtotal, platform_commission,
			delivery_fee, delivery_commission, delivery_address)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + orderColumns

	var orderDB OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		uuid.NewString(),
		orderEntity.ClinicID,
		orderEntity.PharmacyID,
		orderEntity.Status.String(),
		orderEntity.Subtotal,
		orderEntity.PlatformCommission,
		orderEntity.DeliveryFee,
		orderEntity.DeliveryCommission,
		orderEntity.DeliveryAddress,
	).Scan(
		&orderDB.ID,
		&orderDB.ClinicID,
		&orderDB.PharmacyID,
		&orderDB.Status,
		&orderDB.Subtotal,
		&orderDB.PlatformCommission,
		&orderDB.DeliveryFee,
		&orderDB.DeliveryCommission,
		&orderDB.DeliveryAddress,
		&orderDB.OrderCode,
		&orderDB.RejectedReason,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	created := ToDomain(&orderDB)
	created.Items = make([]entities.OrderItem, 0, len(orderEntity.Items))

	itemQuery := `INSERT INTO order_items (order_id, drug_name, quantity, price_agreed)
		VALUES ($1, $2, $3, $4)
		RETURNING id, order_id, drug_name, quantity, price_agreed`

	for _, item := range orderEntity.Items {
		var itemDB OrderItemDB
		err = r.querier.QueryRow(
			ctx,
			itemQuery,
			created.ID,
			item.DrugName,
			item.Quantity,
			item.PriceAgreed,
		).Scan(
			&itemDB.ID,
			&itemDB.OrderID,
			&itemDB.DrugName,
			&itemDB.Quantity,
			&itemDB.PriceAgreed,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository create item error: %w", err)
		}
		created.Items = append(created.Items, ToDomainItem(&itemDB))
	}

	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

func (r *Repository) GetByCode(ctx context.Context, code string) (*entities.Order, error) {
	return r.getOne(ctx, sq.Eq{"order_code": code})
}

func (r *Repository) GetForPharmacy(ctx context.Context, orderID, pharmacyID string) (*entities.Order, error) {
	return r.getOne(ctx, sq.Eq{"id": orderID, "pharmacy_id": pharmacyID})
}

func (r *Repository) GetForClinic(ctx context.Context, orderID, clinicID string) (*entities.Order, error) {
	return r.getOne(ctx, sq.Eq{"id": orderID, "clinic_id": clinicID})
}

func (r *Repository) getOne(ctx context.Context, where sq.Eq) (*entities.Order, error) {
	query, args, err := qb.
		Select(orderColumns).
		From("orders").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	var orderDB OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&orderDB.ID,
		&orderDB.ClinicID,
		&orderDB.PharmacyID,
		&orderDB.Status,
		&orderDB.Subtotal,
		&orderDB.PlatformCommission,
		&orderDB.DeliveryFee,
		&orderDB.DeliveryCommission,
		&orderDB.DeliveryAddress,
		&orderDB.OrderCode,
		&orderDB.RejectedReason,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	orderEntity := ToDomain(&orderDB)
	items, err := r.fetchItems(ctx, []string{orderEntity.ID})
	if err != nil {
		return nil, err
	}
	orderEntity.Items = items[orderEntity.ID]

	return orderEntity, nil
}

func (r *Repository) List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	builder := qb.
		Select(orderColumns).
		From("orders").
		OrderBy("created_at DESC")

	if filter.ClinicID != nil {
		builder = builder.Where(sq.Eq{"clinic_id": *filter.ClinicID})
	}
	if filter.PharmacyID != nil {
		builder = builder.Where(sq.Eq{"pharmacy_id": *filter.PharmacyID})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": filter.Status.String()})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	var ordersDB []OrderDB
	for rows.Next() {
		var orderDB OrderDB
		err = rows.Scan(
			&orderDB.ID,
			&orderDB.ClinicID,
			&orderDB.PharmacyID,
			&orderDB.Status,
			&orderDB.Subtotal,
			&orderDB.PlatformCommission,
			&orderDB.DeliveryFee,
			&orderDB.DeliveryCommission,
			&orderDB.DeliveryAddress,
			&orderDB.OrderCode,
			&orderDB.RejectedReason,
			&orderDB.CreatedAt,
			&orderDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list scan error: %w", err)
		}
		ordersDB = append(ordersDB, orderDB)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list rows error: %w", err)
	}

	orders := ToDomainList(ordersDB)
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]string, len(orders))
	for i := range orders {
		ids[i] = orders[i].ID
	}
	items, err := r.fetchItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
	}

	return orders, nil
}

// UpdateResponse applies the pharmacy decision only while the order is
// still PENDING; a zero rows-affected result means another response won.
func (r *Repository) UpdateResponse(ctx context.Context, orderModify entities.OrderModify) (int64, error) {
	builder := qb.
		Update("orders")

	if orderModify.Status != nil {
		builder = builder.Set("status", orderModify.Status.String())
	}
	if orderModify.OrderCode != nil {
		builder = builder.Set("order_code", orderModify.OrderCode)
	}
	if orderModify.RejectedReason != nil {
		builder = builder.Set("rejected_reason", orderModify.RejectedReason)
	}

	builder = builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": orderModify.ID, "status": entities.OrderPending.String()})

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository update response error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository update response error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id string, status entities.OrderStatusType) (int64, error) {
	query := `UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id, status.String())
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) fetchItems(ctx context.Context, orderIDs []string) (map[string][]entities.OrderItem, error) {
	query := `SELECT id, order_id, drug_name, quantity, price_agreed
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository fetch items error: %w", err)
	}
	defer rows.Close()

	items := make(map[string][]entities.OrderItem, len(orderIDs))
	for rows.Next() {
		var itemDB OrderItemDB
		err = rows.Scan(
			&itemDB.ID,
			&itemDB.OrderID,
			&itemDB.DrugName,
			&itemDB.Quantity,
			&itemDB.PriceAgreed,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository fetch items scan error: %w", err)
		}
		items[itemDB.OrderID] = append(items[itemDB.OrderID], ToDomainItem(&itemDB))
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository fetch items rows error: %w", err)
	}

	return items, nil
}
