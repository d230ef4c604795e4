//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"afyalinks/internal/entities"
	"afyalinks/pkg/logger"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entities.User, error)
	List(ctx context.Context, filter entities.UserFilter) ([]entities.User, error)
}

type Notifier interface {
	Send(ctx context.Context, recipients []string, message string) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
