//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"

	"afyalinks/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, userModify entities.UserModify) (*entities.User, error)
	GetByID(ctx context.Context, id string) (*entities.User, error)
	GetByPhone(ctx context.Context, phone string) (*entities.User, error)
	List(ctx context.Context, filter entities.UserFilter) ([]entities.User, error)
	SetVerified(ctx context.Context, id string, verified bool) (int64, error)

	UpsertDriverProfile(ctx context.Context, profile entities.DriverProfile) error
	UpsertClinicProfile(ctx context.Context, profile entities.ClinicProfile) error
	UpsertPharmacyProfile(ctx context.Context, profile entities.PharmacyProfile) error
	GetDriverProfile(ctx context.Context, userID string) (*entities.DriverProfile, error)
	GetClinicProfile(ctx context.Context, userID string) (*entities.ClinicProfile, error)
	GetPharmacyProfile(ctx context.Context, userID string) (*entities.PharmacyProfile, error)
}
