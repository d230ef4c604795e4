package user

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"afyalinks/internal/entities"
	"afyalinks/internal/repository"
	"afyalinks/internal/service/user"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const userColumns = `id, name, email, phone, role, is_verified, created_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, userModify entities.UserModify) (*entities.User, error) {
	query := `INSERT INTO users (id, name, email, phone, role, is_verified)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns

	var userDB UserDB
	err := r.querier.QueryRow(
		ctx,
		query,
		uuid.NewString(),
		userModify.Name,
		userModify.Email,
		userModify.Phone,
		roleOrNil(userModify.Role),
		userModify.Verified,
	).Scan(
		&userDB.ID,
		&userDB.Name,
		&userDB.Email,
		&userDB.Phone,
		&userDB.Role,
		&userDB.Verified,
		&userDB.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, user.ErrPhoneConflict
		}
		return nil, fmt.Errorf("unexpected user repository create error: %w", err)
	}

	return ToDomain(&userDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id})
}

func (r *Repository) GetByPhone(ctx context.Context, phone string) (*entities.User, error) {
	return r.getOne(ctx, sq.Eq{"phone": phone})
}

func (r *Repository) GetVerifiedDriverByPhone(ctx context.Context, phone string) (*entities.User, error) {
	return r.getOne(ctx, sq.Eq{
		"phone":       phone,
		"role":        entities.RoleDriver.String(),
		"is_verified": true,
	})
}

func (r *Repository) getOne(ctx context.Context, where sq.Eq) (*entities.User, error) {
	query, args, err := qb.
		Select(userColumns).
		From("users").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository get error: %w", err)
	}

	var userDB UserDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&userDB.ID,
		&userDB.Name,
		&userDB.Email,
		&userDB.Phone,
		&userDB.Role,
		&userDB.Verified,
		&userDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository get error: %w", err)
	}

	return ToDomain(&userDB), nil
}

func (r *Repository) List(ctx context.Context, filter entities.UserFilter) ([]entities.User, error) {
	builder := qb.
		Select(userColumns).
		From("users").
		OrderBy("created_at DESC")

	if filter.Role != nil {
		builder = builder.Where(sq.Eq{"role": filter.Role.String()})
	}
	if filter.Verified != nil {
		builder = builder.Where(sq.Eq{"is_verified": *filter.Verified})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository list error: %w", err)
	}
	defer rows.Close()

	var usersDB []UserDB
	for rows.Next() {
		var userDB UserDB
		err = rows.Scan(
			&userDB.ID,
			&userDB.Name,
			&userDB.Email,
			&userDB.Phone,
			&userDB.Role,
			&userDB.Verified,
			&userDB.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected user repository list scan error: %w", err)
		}
		usersDB = append(usersDB, userDB)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected user repository list rows error: %w", err)
	}

	return ToDomainList(usersDB), nil
}

func (r *Repository) ListVerifiedByRole(ctx context.Context, role entities.RoleType) ([]entities.User, error) {
	verified := true
	return r.List(ctx, entities.UserFilter{
		Role:     &role,
		Verified: &verified,
	})
}

func (r *Repository) SetVerified(ctx context.Context, id string, verified bool) (int64, error) {
	query := `UPDATE users SET is_verified = $2 WHERE id = $1`

	result, err := r.querier.Exec(ctx, query, id, verified)
	if err != nil {
		return 0, fmt.Errorf("unexpected user repository set verified error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) UpsertDriverProfile(ctx context.Context, profile entities.DriverProfile) error {
	query := `INSERT INTO driver_profiles (user_id, region, available_hours)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET region = EXCLUDED.region, available_hours = EXCLUDED.available_hours`

	_, err := r.querier.Exec(ctx, query, profile.UserID, profile.Region, profile.AvailableHours)
	if err != nil {
		return fmt.Errorf("unexpected user repository upsert driver profile error: %w", err)
	}

	return nil
}

func (r *Repository) GetDriverProfile(ctx context.Context, userID string) (*entities.DriverProfile, error) {
	query := `SELECT user_id, region, available_hours
		FROM driver_profiles
		WHERE user_id = $1`

	var profileDB DriverProfileDB
	err := r.querier.QueryRow(ctx, query, userID).Scan(
		&profileDB.UserID,
		&profileDB.Region,
		&profileDB.AvailableHours,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository get driver profile error: %w", err)
	}

	return ToDomainDriverProfile(&profileDB), nil
}

func (r *Repository) UpsertClinicProfile(ctx context.Context, profile entities.ClinicProfile) error {
	query := `INSERT INTO clinic_profiles (user_id, business_name, address, contact_phone, business_reg_url)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET business_name = EXCLUDED.business_name,
			address = EXCLUDED.address,
			contact_phone = EXCLUDED.contact_phone,
			business_reg_url = EXCLUDED.business_reg_url`

	_, err := r.querier.Exec(ctx, query,
		profile.UserID,
		profile.BusinessName,
		profile.Address,
		profile.ContactPhone,
		profile.BusinessRegURL,
	)
	if err != nil {
		return fmt.Errorf("unexpected user repository upsert clinic profile error: %w", err)
	}

	return nil
}

func (r *Repository) UpsertPharmacyProfile(ctx context.Context, profile entities.PharmacyProfile) error {
	query := `INSERT INTO pharmacy_profiles (user_id, business_name, address, contact_phone, business_reg_url, pharmacy_license_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE
		SET business_name = EXCLUDED.business_name,
			address = EXCLUDED.address,
			contact_phone = EXCLUDED.contact_phone,
			business_reg_url = EXCLUDED.business_reg_url,
			pharmacy_license_url = EXCLUDED.pharmacy_license_url`

	_, err := r.querier.Exec(ctx, query,
		profile.UserID,
		profile.BusinessName,
		profile.Address,
		profile.ContactPhone,
		profile.BusinessRegURL,
		profile.PharmacyLicenseURL,
	)
	if err != nil {
		return fmt.Errorf("unexpected user repository upsert pharmacy profile error: %w", err)
	}

	return nil
}

func (r *Repository) GetClinicProfile(ctx context.Context, userID string) (*entities.ClinicProfile, error) {
	query := `SELECT user_id, business_name, address, contact_phone, business_reg_url
		FROM clinic_profiles
		WHERE user_id = $1`

	var profileDB ClinicProfileDB
	err := r.querier.QueryRow(ctx, query, userID).Scan(
		&profileDB.UserID,
		&profileDB.BusinessName,
		&profileDB.Address,
		&profileDB.ContactPhone,
		&profileDB.BusinessRegURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository get clinic profile error: %w", err)
	}

	return ToDomainClinicProfile(&profileDB), nil
}

func (r *Repository) GetPharmacyProfile(ctx context.Context, userID string) (*entities.PharmacyProfile, error) {
	query := `SELECT user_id, business_name, address, contact_phone, business_reg_url, pharmacy_license_url
		FROM pharmacy_profiles
		WHERE user_id = $1`

	var profileDB PharmacyProfileDB
	err := r.querier.QueryRow(ctx, query, userID).Scan(
		&profileDB.UserID,
		&profileDB.BusinessName,
		&profileDB.Address,
		&profileDB.ContactPhone,
		&profileDB.BusinessRegURL,
		&profileDB.PharmacyLicenseURL,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository get pharmacy profile error: %w", err)
	}

	return ToDomainPharmacyProfile(&profileDB), nil
}

func roleOrNil(role *entities.RoleType) *string {
	if role == nil {
		return nil
	}
	s := role.String()
	return &s
}
