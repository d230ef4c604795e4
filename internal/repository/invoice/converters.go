package invoice

import (
	"afyalinks/internal/entities"
)

func ToDomain(i *InvoiceDB) *entities.Invoice {
	if i == nil {
		return nil
	}

	return &entities.Invoice{
		ID:              i.ID,
		PharmacyID:      i.PharmacyID,
		TotalAmount:     i.TotalAmount,
		PeriodStart:     i.PeriodStart,
		PeriodEnd:       i.PeriodEnd,
		Status:          entities.InvoiceStatusType(i.Status),
		PaymentProofURL: i.PaymentProofURL,
		CreatedAt:       i.CreatedAt,
	}
}

func ToDomainList(invoicesDB []InvoiceDB) []entities.Invoice {
	if len(invoicesDB) == 0 {
		return []entities.Invoice{}
	}

	result := make([]entities.Invoice, len(invoicesDB))
	for i, invoiceDB := range invoicesDB {
		result[i] = *ToDomain(&invoiceDB)
	}
	return result
}
