package auth

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/AlekSi/pointer"

	"afyalinks/internal/entities"
	"afyalinks/internal/service/user"
	"afyalinks/pkg/logger"
)

const (
	otpLength = 6
	otpTTL    = 5 * time.Minute
)

type Auth struct {
	users    UserRepository
	otpStore OTPStore
	notifier Notifier
	tokens   TokenIssuer
	logger   serviceLogger
}

func New(
	users UserRepository,
	otpStore OTPStore,
	notifier Notifier,
	tokens TokenIssuer,
	log serviceLogger,
) *Auth {
	return &Auth{
		users:    users,
		otpStore: otpStore,
		notifier: notifier,
		tokens:   tokens,
		logger:   log,
	}
}

// RequestOTP issues a one-time code for the phone number and delivers it by
// SMS. Requesting again before the previous code expires replaces it.
func (s *Auth) RequestOTP(ctx context.Context, phone string) error {
	if phone == "" {
		return ErrMissingRequiredFields
	}
	if !isValidPhone(phone) {
		return ErrInvalidPhone
	}

	code := newOTP()
	if err := s.otpStore.Set(ctx, phone, code, otpTTL); err != nil {
		return fmt.Errorf("store otp: %w", err)
	}

	message := fmt.Sprintf("AfyaLinks verification code: %s. Expires in 5 minutes.", code)
	if err := s.notifier.Send(ctx, []string{phone}, message); err != nil {
		return fmt.Errorf("send otp: %w", err)
	}

	s.logger.Info("otp requested", logger.NewField("phone", phone))
	return nil
}

// VerifyOTP checks the submitted code and returns a signed access token. A
// first-time phone number gets an unverified account with the requested role;
// a returning one keeps its stored role regardless of what was submitted.
func (s *Auth) VerifyOTP(ctx context.Context, phone, code string, role entities.RoleType) (string, *entities.User, error) {
	if phone == "" || code == "" {
		return "", nil, ErrMissingRequiredFields
	}

	stored, err := s.otpStore.Get(ctx, phone)
	if err != nil {
		return "", nil, ErrOTPExpired
	}
	if stored != code {
		return "", nil, ErrInvalidOTP
	}

	if err := s.otpStore.Delete(ctx, phone); err != nil {
		s.logger.Warn("failed to delete used otp",
			logger.NewField("phone", phone),
			logger.NewField("error", err),
		)
	}

	userEntity, err := s.findOrCreateUser(ctx, phone, role)
	if err != nil {
		return "", nil, err
	}

	token, err := s.tokens.Issue(userEntity.ID, userEntity.Role)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, userEntity, nil
}

func (s *Auth) findOrCreateUser(ctx context.Context, phone string, role entities.RoleType) (*entities.User, error) {
	userEntity, err := s.users.GetByPhone(ctx, phone)
	if err == nil {
		return userEntity, nil
	}
	if !errors.Is(err, user.ErrUserNotFound) {
		return nil, fmt.Errorf("get user by phone: %w", err)
	}

	if !isValidRole(role) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRole, role)
	}

	created, err := s.users.Create(ctx, entities.UserModify{
		Phone:    &phone,
		Role:     &role,
		Verified: pointer.To(false),
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("registered new user",
		logger.NewField("user_id", created.ID),
		logger.NewField("role", created.Role),
	)
	return created, nil
}

func newOTP() string {
	digits := make([]byte, otpLength)
	for i := range digits {
		digits[i] = byte('0' + rand.IntN(10))
	}
	return string(digits)
}
