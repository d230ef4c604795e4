package confirmation

import "errors"

var (
	ErrMissingOrderCode = errors.New("order code is required")
	ErrInvalidOrderCode = errors.New("invalid order code")
	ErrOrderNotFound    = errors.New("order not found")
	ErrAlreadyDelivered = errors.New("order is already delivered")
)
