package delivery

import "time"

type DeliveryDB struct {
	ID          int64
	OrderID     string
	DriverID    string
	PickupTime  *time.Time
	DropoffTime *time.Time
	CreatedAt   time.Time
}

type PendingDeliveryDB struct {
	OrderID         string
	OrderCode       string
	DeliveryAddress string
}
