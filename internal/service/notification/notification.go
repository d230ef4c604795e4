package notification

import (
	"context"
	"fmt"

	"github.com/AlekSi/pointer"

	"afyalinks/internal/entities"
	"afyalinks/pkg/logger"
)

type Notification struct {
	log      serviceLogger
	users    UserRepository
	notifier Notifier
}

func New(log serviceLogger, users UserRepository, notifier Notifier) *Notification {
	return &Notification{
		log:      log.With(),
		users:    users,
		notifier: notifier,
	}
}

// Broadcast sends an SMS to one user, to every verified user of a role, or
// to every verified user when neither target is given. Returns the number
// of recipients the message went out to.
func (s *Notification) Broadcast(ctx context.Context, targetUserID string, role entities.RoleType, message string) (int, error) {
	if message == "" {
		return 0, ErrMissingMessage
	}

	recipients, err := s.resolveRecipients(ctx, targetUserID, role)
	if err != nil {
		return 0, err
	}

	phones := make([]string, 0, len(recipients))
	for _, recipient := range recipients {
		if recipient.Phone != "" {
			phones = append(phones, recipient.Phone)
		}
	}
	if len(phones) == 0 {
		return 0, ErrNoRecipients
	}

	if err := s.notifier.Send(ctx, phones, message); err != nil {
		return 0, fmt.Errorf("send broadcast: %w", err)
	}

	s.log.With(
		logger.NewField("recipients", len(phones)),
	).Info("broadcast notification sent")

	return len(phones), nil
}

func (s *Notification) resolveRecipients(ctx context.Context, targetUserID string, role entities.RoleType) ([]entities.User, error) {
	if targetUserID != "" {
		target, err := s.users.GetByID(ctx, targetUserID)
		if err != nil {
			return nil, fmt.Errorf("get target user %s: %w", targetUserID, err)
		}
		return []entities.User{*target}, nil
	}

	filter := entities.UserFilter{Verified: pointer.To(true)}
	if role != "" {
		if !isValidRole(role) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidRole, role)
		}
		filter.Role = &role
	}

	recipients, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list recipients: %w", err)
	}
	return recipients, nil
}

func isValidRole(role entities.RoleType) bool {
	switch role {
	case entities.RoleClinic, entities.RolePharmacy, entities.RoleDriver,
		entities.RoleHealthWorker, entities.RoleAdmin:
		return true
	default:
		return false
	}
}
