package entities

import "time"

type Delivery struct {
	ID          int64
	OrderID     string
	DriverID    string
	PickupTime  *time.Time
	DropoffTime *time.Time
	CreatedAt   time.Time
}

type DeliveryModify struct {
	OrderID     *string
	DriverID    *string
	PickupTime  *time.Time
	DropoffTime *time.Time
}

// PendingDelivery is the driver-facing view used by the USSD menu:
// deliveries assigned to the driver that have not been dropped off yet.
type PendingDelivery struct {
	OrderID         string
	OrderCode       string
	DeliveryAddress string
}
