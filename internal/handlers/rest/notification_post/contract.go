//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_post_test
package notification_post

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
	Broadcast(ctx context.Context, targetUserID string, role entities.RoleType, message string) (int, error)
}
