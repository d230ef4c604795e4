//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=confirmation_test
package confirmation

import (
	"context"
	"time"

	"afyalinks/internal/entities"
	"afyalinks/pkg/logger"
)

type OrderRepository interface {
	GetByCode(ctx context.Context, code string) (*entities.Order, error)
	GetForClinic(ctx context.Context, orderID, clinicID string) (*entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatusType) (int64, error)
}

type DeliveryRepository interface {
	GetByOrderID(ctx context.Context, orderID string) (*entities.Delivery, error)
	SetPickupTime(ctx context.Context, orderID string, at time.Time) error
	SetDropoffTime(ctx context.Context, orderID string, at time.Time) error
	ListPendingByDriver(ctx context.Context, driverID string) ([]entities.PendingDelivery, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entities.User, error)
}

type Rewarder interface {
	Send(ctx context.Context, phone string, amount int64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
