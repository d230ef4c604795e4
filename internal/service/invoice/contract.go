//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=invoice_test
package invoice

import (
	"context"
	"time"

	"afyalinks/internal/entities"
	"afyalinks/pkg/logger"
)

type Repository interface {
	// CommissionTotals aggregates platform plus delivery commission over
	// DELIVERED orders whose update timestamp falls in [from, to), grouped
	// by pharmacy.
	CommissionTotals(ctx context.Context, from, to time.Time) ([]entities.CommissionTotal, error)

	// CreateBatch inserts invoices, silently skipping any pharmacy/period
	// pair that already has one. It reports how many rows were written.
	CreateBatch(ctx context.Context, invoices []entities.Invoice) (int64, error)

	List(ctx context.Context, pharmacyID *string) ([]entities.Invoice, error)
	SubmitProof(ctx context.Context, invoiceID, pharmacyID, proofURL string) (int64, error)
	MarkPaid(ctx context.Context, invoiceID string) (int64, error)
	MarkOverdue(ctx context.Context, periodEndBefore time.Time) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
