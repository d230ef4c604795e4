package order

import (
	"afyalinks/internal/entities"
)

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}

	return &entities.Order{
		ID:                 o.ID,
		ClinicID:           o.ClinicID,
		PharmacyID:         o.PharmacyID,
		Status:             entities.OrderStatusType(o.Status),
		Subtotal:           o.Subtotal,
		PlatformCommission: o.PlatformCommission,
		DeliveryFee:        o.DeliveryFee,
		DeliveryCommission: o.DeliveryCommission,
		DeliveryAddress:    o.DeliveryAddress,
		OrderCode:          o.OrderCode,
		RejectedReason:     o.RejectedReason,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

func ToDomainItem(i *OrderItemDB) entities.OrderItem {
	return entities.OrderItem{
		ID:          i.ID,
		OrderID:     i.OrderID,
		DrugName:    i.DrugName,
		Quantity:    i.Quantity,
		PriceAgreed: i.PriceAgreed,
	}
}

func ToDomainList(ordersDB []OrderDB) []entities.Order {
	if len(ordersDB) == 0 {
		return []entities.Order{}
	}

	result := make([]entities.Order, len(ordersDB))
	for i, orderDB := range ordersDB {
		result[i] = *ToDomain(&orderDB)
	}
	return result
}
