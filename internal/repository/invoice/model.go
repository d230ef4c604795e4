package invoice

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceDB struct {
	ID              string
	PharmacyID      string
	TotalAmount     decimal.Decimal
	PeriodStart     time.Time
	PeriodEnd       time.Time
	Status          string
	PaymentProofURL *string
	CreatedAt       time.Time
}
