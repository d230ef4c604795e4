package invoice

import (
	"context"
	"fmt"
	"time"

	"afyalinks/internal/entities"
	"afyalinks/pkg/logger"
)

const (
	// billingWindow is the trailing period one generation run covers.
	billingWindow = 7 * 24 * time.Hour

	// overdueAfter is how long past period end an UNPAID invoice may sit
	// before it is flagged OVERDUE.
	overdueAfter = 14 * 24 * time.Hour
)

type Invoice struct {
	log        serviceLogger
	repository Repository
	txManager  TxManager
}

func New(log serviceLogger, repository Repository, txManager TxManager) *Invoice {
	return &Invoice{
		log:        log.With(),
		repository: repository,
		txManager:  txManager,
	}
}

// GenerateWeekly writes one UNPAID invoice per pharmacy with a nonzero
// commission total over the trailing billing window, in a single
// transaction. The unique pharmacy/period pair makes a re-run of the same
// window a no-op instead of a double bill.
func (s *Invoice) GenerateWeekly(ctx context.Context, now time.Time) (int64, error) {
	periodEnd := now.UTC()
	periodStart := periodEnd.Add(-billingWindow)

	var created int64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		totals, err := s.repository.CommissionTotals(ctx, periodStart, periodEnd)
		if err != nil {
			return fmt.Errorf("aggregate commissions: %w", err)
		}

		invoices := make([]entities.Invoice, 0, len(totals))
		for _, total := range totals {
			if total.Total.IsZero() {
				continue
			}
			invoices = append(invoices, entities.Invoice{
				PharmacyID:  total.PharmacyID,
				TotalAmount: total.Total,
				PeriodStart: periodStart,
				PeriodEnd:   periodEnd,
				Status:      entities.InvoiceUnpaid,
			})
		}

		if len(invoices) == 0 {
			return nil
		}

		created, err = s.repository.CreateBatch(ctx, invoices)
		if err != nil {
			return fmt.Errorf("insert invoices: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("generate invoices: %w", err)
	}

	s.log.With(
		logger.NewField("period_start", periodStart),
		logger.NewField("period_end", periodEnd),
		logger.NewField("created", created),
	).Info("invoice generation run finished")

	return created, nil
}

// SubmitPaymentProof attaches the pharmacy's proof and moves the invoice to
// PENDING_VERIFICATION. Only unpaid or overdue invoices owned by the caller
// qualify.
func (s *Invoice) SubmitPaymentProof(ctx context.Context, invoiceID, pharmacyID, proofURL string) error {
	if invoiceID == "" || pharmacyID == "" || proofURL == "" {
		return ErrMissingRequiredFields
	}

	rowsAffected, err := s.repository.SubmitProof(ctx, invoiceID, pharmacyID, proofURL)
	if err != nil {
		return fmt.Errorf("submit proof for invoice %s: %w", invoiceID, err)
	}
	if rowsAffected == 0 {
		return ErrInvoiceNotFound
	}
	return nil
}

// VerifyPayment is the admin accepting a submitted proof.
func (s *Invoice) VerifyPayment(ctx context.Context, invoiceID string) error {
	if invoiceID == "" {
		return ErrMissingRequiredFields
	}

	rowsAffected, err := s.repository.MarkPaid(ctx, invoiceID)
	if err != nil {
		return fmt.Errorf("verify payment for invoice %s: %w", invoiceID, err)
	}
	if rowsAffected == 0 {
		return ErrInvoiceNotFound
	}
	return nil
}

func (s *Invoice) ListInvoices(ctx context.Context, pharmacyID *string) ([]entities.Invoice, error) {
	invoices, err := s.repository.List(ctx, pharmacyID)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return invoices, nil
}

// MarkOverdue flags UNPAID invoices whose period ended long enough ago.
// Runs as a background task.
func (s *Invoice) MarkOverdue(ctx context.Context, now time.Time) (int64, error) {
	rowsAffected, err := s.repository.MarkOverdue(ctx, now.UTC().Add(-overdueAfter))
	if err != nil {
		return 0, fmt.Errorf("mark overdue invoices: %w", err)
	}
	return rowsAffected, nil
}
