//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"
	"time"

	"afyalinks/internal/entities"
	"afyalinks/pkg/logger"
)

type UserRepository interface {
	GetByPhone(ctx context.Context, phone string) (*entities.User, error)
	Create(ctx context.Context, userModify entities.UserModify) (*entities.User, error)
}

// OTPStore keeps one pending code per phone number with a TTL.
type OTPStore interface {
	Set(ctx context.Context, phone, code string, ttl time.Duration) error
	Get(ctx context.Context, phone string) (string, error)
	Delete(ctx context.Context, phone string) error
}

type Notifier interface {
	Send(ctx context.Context, recipients []string, message string) error
}

type TokenIssuer interface {
	Issue(userID string, role entities.RoleType) (string, error)
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
