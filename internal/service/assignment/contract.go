//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"
	"time"

	"afyalinks/internal/entities"
	"afyalinks/pkg/logger"
)

type DeliveryRepository interface {
	Create(ctx context.Context, orderID, driverID string) (*entities.Delivery, error)
}

type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatusType) (int64, error)
}

type UserRepository interface {
	ListVerifiedByRole(ctx context.Context, role entities.RoleType) ([]entities.User, error)
	GetDriverProfile(ctx context.Context, userID string) (*entities.DriverProfile, error)
	GetClinicProfile(ctx context.Context, userID string) (*entities.ClinicProfile, error)
	GetPharmacyProfile(ctx context.Context, userID string) (*entities.PharmacyProfile, error)
}

type Notifier interface {
	Send(ctx context.Context, recipients []string, message string) error
}

type AvailabilityPolicy interface {
	Eligible(profile *entities.DriverProfile, at time.Time) bool
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
