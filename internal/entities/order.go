package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID                 string
	ClinicID           string
	PharmacyID         string
	Status             OrderStatusType
	Subtotal           decimal.Decimal
	PlatformCommission decimal.Decimal
	DeliveryFee        decimal.Decimal
	DeliveryCommission decimal.Decimal
	DeliveryAddress    string
	OrderCode          *string
	RejectedReason     *string
	Items              []OrderItem
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type OrderItem struct {
	ID          int64
	OrderID     string
	DrugName    string
	Quantity    int64
	PriceAgreed decimal.Decimal
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "PENDING"
	OrderAccepted  OrderStatusType = "ACCEPTED"
	OrderPartial   OrderStatusType = "PARTIAL"
	OrderRejected  OrderStatusType = "REJECTED"
	OrderAssigned  OrderStatusType = "ASSIGNED"
	OrderInTransit OrderStatusType = "IN_TRANSIT"
	OrderDelivered OrderStatusType = "DELIVERED"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// Terminal reports whether no further transition is allowed from s.
func (s OrderStatusType) Terminal() bool {
	return s == OrderRejected || s == OrderDelivered
}

type OrderModify struct {
	ID             *string
	Status         *OrderStatusType
	OrderCode      *string
	RejectedReason *string
}

type OrderDraft struct {
	ClinicID        string
	PharmacyID      string
	DeliveryAddress string
	Items           []OrderItemDraft
}

type OrderItemDraft struct {
	DrugName    string
	Quantity    int64
	PriceAgreed decimal.Decimal
}

// OrderFilter narrows ListOrders. Nil fields are not applied.
type OrderFilter struct {
	ClinicID   *string
	PharmacyID *string
	Status     *OrderStatusType
	Limit      uint64
}

type OrderDecision string

const (
	DecisionAccepted OrderDecision = "ACCEPTED"
	DecisionPartial  OrderDecision = "PARTIAL"
	DecisionRejected OrderDecision = "REJECTED"
)

func (d OrderDecision) String() string {
	return string(d)
}

// OrderEvent is published to the order events topic whenever a pharmacy
// responds to an order. The assignment worker consumes it.
type OrderEvent struct {
	OrderID   string          `json:"order_id"`
	Status    OrderStatusType `json:"status"`
	OrderCode string          `json:"order_code,omitempty"`
}
