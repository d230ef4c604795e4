//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_approve_post_test
package user_approve_post

import (
	"context"

	"afyalinks/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ApproveUser(ctx context.Context, id string) error
}
