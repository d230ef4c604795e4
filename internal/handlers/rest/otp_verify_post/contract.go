//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=otp_verify_post_test
package otp_verify_post

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
	VerifyOTP(ctx context.Context, phone, code string, role entities.RoleType) (string, *entities.User, error)
}
