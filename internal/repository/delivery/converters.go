package delivery

import (
	"afyalinks/internal/entities"
)

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}

	return &entities.Delivery{
		ID:          d.ID,
		OrderID:     d.OrderID,
		DriverID:    d.DriverID,
		PickupTime:  d.PickupTime,
		DropoffTime: d.DropoffTime,
		CreatedAt:   d.CreatedAt,
	}
}

func ToDomainPendingList(pendingDB []PendingDeliveryDB) []entities.PendingDelivery {
	if len(pendingDB) == 0 {
		return []entities.PendingDelivery{}
	}

	result := make([]entities.PendingDelivery, len(pendingDB))
	for i, p := range pendingDB {
		result[i] = entities.PendingDelivery{
			OrderID:         p.OrderID,
			OrderCode:       p.OrderCode,
			DeliveryAddress: p.DeliveryAddress,
		}
	}
	return result
}
