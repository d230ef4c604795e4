package user

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidPhone          = errors.New("invalid phone")
	ErrInvalidRole           = errors.New("invalid role")

	ErrUserNotFound  = errors.New("user not found")
	ErrPhoneConflict = errors.New("phone number already registered")
	ErrNotDriver     = errors.New("user is not a driver")
)
