//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=driver_profile_put_test
package driver_profile_put

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
	UpsertDriverProfile(ctx context.Context, userID, region, availableHours string) error
}
