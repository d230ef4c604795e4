package invoice

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvoiceNotFound       = errors.New("invoice not found")
)
