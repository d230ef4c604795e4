//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ussd_test
package ussd

import (
	"context"

	"afyalinks/internal/entities"
	"afyalinks/pkg/logger"
)

type UserRepository interface {
	GetVerifiedDriverByPhone(ctx context.Context, phone string) (*entities.User, error)
}

type ConfirmationService interface {
	ConfirmPickup(ctx context.Context, driverID, orderCode string) (*entities.Order, error)
	ConfirmDeliveryByCode(ctx context.Context, driverID, orderCode string) (*entities.Order, error)
	PendingDeliveries(ctx context.Context, driverID string) ([]entities.PendingDelivery, error)
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
