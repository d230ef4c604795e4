package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDecision       = errors.New("invalid decision")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrEmptyItems            = errors.New("order must contain at least one item")
	ErrInvalidItem           = errors.New("invalid order item")

	ErrOrderNotFound   = errors.New("order not found")
	ErrOrderNotPending = errors.New("order is no longer pending")
)
