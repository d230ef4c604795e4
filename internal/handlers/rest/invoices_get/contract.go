//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=invoices_get_test
package invoices_get

import (
	"context"

	"afyalinks/internal/entities"
	"afyalinks/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListInvoices(ctx context.Context, pharmacyID *string) ([]entities.Invoice, error)
}
