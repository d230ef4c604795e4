package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Invoice struct {
	ID              string
	PharmacyID      string
	TotalAmount     decimal.Decimal
	PeriodStart     time.Time
	PeriodEnd       time.Time
	Status          InvoiceStatusType
	PaymentProofURL *string
	CreatedAt       time.Time
}

type InvoiceStatusType string

const (
	InvoiceUnpaid              InvoiceStatusType = "UNPAID"
	InvoicePendingVerification InvoiceStatusType = "PENDING_VERIFICATION"
	InvoicePaid                InvoiceStatusType = "PAID"
	InvoiceOverdue             InvoiceStatusType = "OVERDUE"
)

func (s InvoiceStatusType) String() string {
	return string(s)
}

// CommissionTotal is one pharmacy's aggregate over a billing window,
// the input row for invoice generation.
type CommissionTotal struct {
	PharmacyID string
	Total      decimal.Decimal
}
