package notification

import "errors"

var (
	ErrMissingMessage = errors.New("message content is required")
	ErrInvalidRole    = errors.New("invalid role")
	ErrNoRecipients   = errors.New("no recipients found")
)
