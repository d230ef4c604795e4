package invoice_overdue

import (
	"context"
	"time"

	"afyalinks/pkg/logger"
)

type Service interface {
	MarkOverdue(ctx context.Context, now time.Time) (int64, error)
}

// InvoiceOverdue periodically flags UNPAID invoices whose payment window
// has lapsed.
type InvoiceOverdue struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewInvoiceOverdue(log logger.Logger, service Service, interval time.Duration) *InvoiceOverdue {
	return &InvoiceOverdue{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (t *InvoiceOverdue) TTL() time.Duration {
	return t.interval
}

func (t *InvoiceOverdue) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, t.interval)
	defer cancel()

	rowsAffected, err := t.service.MarkOverdue(ctxWithTimeout, time.Now().UTC())

	if rowsAffected > 0 {
		t.log.With(
			logger.NewField("overdue_invoices", rowsAffected),
		).Info("invoice overdue check")
	}

	return err
}

func (t *InvoiceOverdue) Info() string {
	return "invoice overdue check"
}
