package invoice

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"afyalinks/internal/entities"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const invoiceColumns = `id, pharmacy_id, total_amount, period_start, period_end, status, payment_proof_url, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// CommissionTotals sums the platform and delivery commission of DELIVERED
// orders that reached that status inside [from, to), per pharmacy.
func (r *Repository) CommissionTotals(ctx context.Context, from, to time.Time) ([]entities.CommissionTotal, error) {
	query := `SELECT pharmacy_id, SUM(platform_commission + delivery_commission)
		FROM orders
		WHERE status = $1
		AND updated_at >= $2
		AND updated_at < $3
		GROUP BY pharmacy_id
		ORDER BY pharmacy_id`

	rows, err := r.querier.Query(ctx, query, entities.OrderDelivered.String(), from, to)
	if err != nil {
		return nil, fmt.Errorf("unexpected invoice repository commission totals error: %w", err)
	}
	defer rows.Close()

	var totals []entities.CommissionTotal
	for rows.Next() {
		var total entities.CommissionTotal
		if err = rows.Scan(&total.PharmacyID, &total.Total); err != nil {
			return nil, fmt.Errorf("unexpected invoice repository commission totals scan error: %w", err)
		}
		totals = append(totals, total)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected invoice repository commission totals rows error: %w", err)
	}

	return totals, nil
}

// CreateBatch inserts the invoices, leaving existing pharmacy/period rows
// untouched so a rerun of the same billing window stays idempotent.
func (r *Repository) CreateBatch(ctx context.Context, invoices []entities.Invoice) (int64, error) {
	query := `INSERT INTO invoices (id, pharmacy_id, total_amount, period_start, period_end, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (pharmacy_id, period_start) DO NOTHING`

	var created int64
	for _, invoiceEntity := range invoices {
		result, err := r.querier.Exec(
			ctx,
			query,
			uuid.NewString(),
			invoiceEntity.PharmacyID,
			invoiceEntity.TotalAmount,
			invoiceEntity.PeriodStart,
			invoiceEntity.PeriodEnd,
			invoiceEntity.Status.String(),
		)
		if err != nil {
			return created, fmt.Errorf("unexpected invoice repository create error: %w", err)
		}
		created += result.RowsAffected()
	}

	return created, nil
}

func (r *Repository) List(ctx context.Context, pharmacyID *string) ([]entities.Invoice, error) {
	builder := qb.
		Select(invoiceColumns).
		From("invoices").
		OrderBy("period_start DESC, pharmacy_id")

	if pharmacyID != nil {
		builder = builder.Where(sq.Eq{"pharmacy_id": *pharmacyID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected invoice repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected invoice repository list error: %w", err)
	}
	defer rows.Close()

	var invoicesDB []InvoiceDB
	for rows.Next() {
		var invoiceDB InvoiceDB
		err = rows.Scan(
			&invoiceDB.ID,
			&invoiceDB.PharmacyID,
			&invoiceDB.TotalAmount,
			&invoiceDB.PeriodStart,
			&invoiceDB.PeriodEnd,
			&invoiceDB.Status,
			&invoiceDB.PaymentProofURL,
			&invoiceDB.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected invoice repository list scan error: %w", err)
		}
		invoicesDB = append(invoicesDB, invoiceDB)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected invoice repository list rows error: %w", err)
	}

	return ToDomainList(invoicesDB), nil
}

// SubmitProof only touches invoices still awaiting payment, so a settled
// invoice cannot be pulled back to PENDING_VERIFICATION.
func (r *Repository) SubmitProof(ctx context.Context, invoiceID, pharmacyID, proofURL string) (int64, error) {
	query := `UPDATE invoices
		SET payment_proof_url = $3, status = $4
		WHERE id = $1 AND pharmacy_id = $2
		AND status IN ($5, $6)`

	result, err := r.querier.Exec(
		ctx,
		query,
		invoiceID,
		pharmacyID,
		proofURL,
		entities.InvoicePendingVerification.String(),
		entities.InvoiceUnpaid.String(),
		entities.InvoiceOverdue.String(),
	)
	if err != nil {
		return 0, fmt.Errorf("unexpected invoice repository submit proof error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) MarkPaid(ctx context.Context, invoiceID string) (int64, error) {
	query := `UPDATE invoices
		SET status = $2
		WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, invoiceID, entities.InvoicePaid.String())
	if err != nil {
		return 0, fmt.Errorf("unexpected invoice repository mark paid error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) MarkOverdue(ctx context.Context, periodEndBefore time.Time) (int64, error) {
	query := `UPDATE invoices
		SET status = $2
		WHERE status = $3
		AND period_end < $1`

	result, err := r.querier.Exec(
		ctx,
		query,
		periodEndBefore,
		entities.InvoiceOverdue.String(),
		entities.InvoiceUnpaid.String(),
	)
	if err != nil {
		return 0, fmt.Errorf("unexpected invoice repository mark overdue error: %w", err)
	}

	return result.RowsAffected(), nil
}
