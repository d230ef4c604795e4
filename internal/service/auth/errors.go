package auth

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidPhone          = errors.New("invalid phone number")
	ErrInvalidRole           = errors.New("invalid role")
	ErrInvalidOTP            = errors.New("invalid otp")
	ErrOTPExpired            = errors.New("otp expired or not requested")
)
