//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=otp_request_post_test
package otp_request_post

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
	RequestOTP(ctx context.Context, phone string) error
}
