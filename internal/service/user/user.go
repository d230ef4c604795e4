package user

import (
	"context"
	"fmt"

	"github.com/AlekSi/pointer"

	"afyalinks/internal/entities"
	"afyalinks/internal/pkg/factory/driver_availability"
)

type User struct {
	repository Repository
}

func New(repository Repository) *User {
	return &User{
		repository: repository,
	}
}

// CreateUser is the admin override path: the account is created already
// verified.
func (s *User) CreateUser(ctx context.Context, phone, name, email string, role entities.RoleType) (*entities.User, error) {
	if phone == "" || role == "" {
		return nil, ErrMissingRequiredFields
	}
	if !isValidPhone(phone) {
		return nil, ErrInvalidPhone
	}
	if !isValidRole(role) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRole, role)
	}

	userModify := entities.UserModify{
		Phone:    &phone,
		Name:     &name,
		Email:    &email,
		Role:     &role,
		Verified: pointer.To(true),
	}

	created, err := s.repository.Create(ctx, userModify)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

func (s *User) GetUser(ctx context.Context, id string) (*entities.User, error) {
	if id == "" {
		return nil, ErrMissingRequiredFields
	}

	userEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return userEntity, nil
}

func (s *User) ListUsers(ctx context.Context, filter entities.UserFilter) ([]entities.User, error) {
	users, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (s *User) ListVerifiedByRole(ctx context.Context, role entities.RoleType) ([]entities.User, error) {
	if !isValidRole(role) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRole, role)
	}

	users, err := s.repository.List(ctx, entities.UserFilter{
		Role:     &role,
		Verified: pointer.To(true),
	})
	if err != nil {
		return nil, fmt.Errorf("list verified %s users: %w", role, err)
	}
	return users, nil
}

func (s *User) ApproveUser(ctx context.Context, id string) error {
	if id == "" {
		return ErrMissingRequiredFields
	}

	rowsAffected, err := s.repository.SetVerified(ctx, id, true)
	if err != nil {
		return fmt.Errorf("approve user %s: %w", id, err)
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// UpsertDriverProfile stores the assignment constraints for a driver.
// The availability window must parse; a malformed window stored here would
// silently widen the driver's hours because the assignment filter is
// fail-open.
func (s *User) UpsertDriverProfile(ctx context.Context, userID, region, availableHours string) error {
	if userID == "" {
		return ErrMissingRequiredFields
	}

	userEntity, err := s.repository.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("get user %s: %w", userID, err)
	}
	if userEntity.Role != entities.RoleDriver {
		return ErrNotDriver
	}

	if availableHours != "" {
		if _, _, err := driver_availability.ParseWindow(availableHours); err != nil {
			return err
		}
	}

	profile := entities.DriverProfile{
		UserID:         userID,
		Region:         region,
		AvailableHours: availableHours,
	}
	if err := s.repository.UpsertDriverProfile(ctx, profile); err != nil {
		return fmt.Errorf("upsert driver profile %s: %w", userID, err)
	}
	return nil
}

// SetupClinicProfile stores the clinic's business details. Assignment SMS
// texts fall back to placeholders until a profile exists; the registration
// document link is required.
func (s *User) SetupClinicProfile(ctx context.Context, profile entities.ClinicProfile) error {
	if profile.UserID == "" || profile.BusinessName == "" || profile.BusinessRegURL == "" {
		return ErrMissingRequiredFields
	}

	if err := s.repository.UpsertClinicProfile(ctx, profile); err != nil {
		return fmt.Errorf("upsert clinic profile %s: %w", profile.UserID, err)
	}
	return nil
}

// SetupPharmacyProfile additionally requires the pharmacy license link.
func (s *User) SetupPharmacyProfile(ctx context.Context, profile entities.PharmacyProfile) error {
	if profile.UserID == "" || profile.BusinessName == "" ||
		profile.BusinessRegURL == "" || profile.PharmacyLicenseURL == "" {
		return ErrMissingRequiredFields
	}

	if err := s.repository.UpsertPharmacyProfile(ctx, profile); err != nil {
		return fmt.Errorf("upsert pharmacy profile %s: %w", profile.UserID, err)
	}
	return nil
}

func (s *User) GetDriverByPhone(ctx context.Context, phone string) (*entities.User, error) {
	userEntity, err := s.repository.GetByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("get user by phone: %w", err)
	}
	if userEntity.Role != entities.RoleDriver {
		return nil, ErrNotDriver
	}
	return userEntity, nil
}
