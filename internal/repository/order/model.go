package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderDB struct {
	ID                 string
	ClinicID           string
	PharmacyID         string
	Status             string
	Subtotal           decimal.Decimal
	PlatformCommission decimal.Decimal
	DeliveryFee        decimal.Decimal
	DeliveryCommission decimal.Decimal
	DeliveryAddress    string
	OrderCode          *string
	RejectedReason     *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type OrderItemDB struct {
	ID          int64
	OrderID     string
	DrugName    string
	Quantity    int64
	PriceAgreed decimal.Decimal
}
