package dto

import (
	"afyalinks/internal/entities"
)

func FromOrder(orderEntity *entities.Order) Order {
	items := make([]OrderItem, 0, len(orderEntity.Items))
	for _, item := range orderEntity.Items {
		items = append(items, OrderItem{
			ID:          item.ID,
			DrugName:    item.DrugName,
			Quantity:    item.Quantity,
			PriceAgreed: item.PriceAgreed,
		})
	}

	return Order{
		ID:                 orderEntity.ID,
		ClinicID:           orderEntity.ClinicID,
		PharmacyID:         orderEntity.PharmacyID,
		Status:             orderEntity.Status.String(),
		Subtotal:           orderEntity.Subtotal,
		PlatformCommission: orderEntity.PlatformCommission,
		DeliveryFee:        orderEntity.DeliveryFee,
		DeliveryCommission: orderEntity.DeliveryCommission,
		DeliveryAddress:    orderEntity.DeliveryAddress,
		OrderCode:          orderEntity.OrderCode,
		RejectedReason:     orderEntity.RejectedReason,
		Items:              items,
		CreatedAt:          orderEntity.CreatedAt,
		UpdatedAt:          orderEntity.UpdatedAt,
	}
}

func FromOrderList(orders []entities.Order) []Order {
	result := make([]Order, 0, len(orders))
	for i := range orders {
		result = append(result, FromOrder(&orders[i]))
	}
	return result
}

func FromUser(userEntity *entities.User) User {
	return User{
		ID:        userEntity.ID,
		Name:      userEntity.Name,
		Email:     userEntity.Email,
		Phone:     userEntity.Phone,
		Role:      userEntity.Role.String(),
		Verified:  userEntity.Verified,
		CreatedAt: userEntity.CreatedAt,
	}
}

func FromUserList(users []entities.User) []User {
	result := make([]User, 0, len(users))
	for i := range users {
		result = append(result, FromUser(&users[i]))
	}
	return result
}

func FromInvoice(invoiceEntity *entities.Invoice) Invoice {
	return Invoice{
		ID:              invoiceEntity.ID,
		PharmacyID:      invoiceEntity.PharmacyID,
		TotalAmount:     invoiceEntity.TotalAmount,
		PeriodStart:     invoiceEntity.PeriodStart,
		PeriodEnd:       invoiceEntity.PeriodEnd,
		Status:          invoiceEntity.Status.String(),
		PaymentProofURL: invoiceEntity.PaymentProofURL,
		CreatedAt:       invoiceEntity.CreatedAt,
	}
}

func FromInvoiceList(invoices []entities.Invoice) []Invoice {
	result := make([]Invoice, 0, len(invoices))
	for i := range invoices {
		result = append(result, FromInvoice(&invoices[i]))
	}
	return result
}
