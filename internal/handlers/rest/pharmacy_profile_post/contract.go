//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pharmacy_profile_post_test
package pharmacy_profile_post

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
	SetupPharmacyProfile(ctx context.Context, profile entities.PharmacyProfile) error
}
