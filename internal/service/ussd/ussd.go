package ussd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"afyalinks/internal/service/user"
	"afyalinks/pkg/logger"
)

// Africa's Talking framing: a "CON " response keeps the session open for
// more input, an "END " response closes it.
const (
	prefixContinue = "CON "
	prefixEnd      = "END "
)

const mainMenu = prefixContinue + `Afya Links Driver Menu
1. View Pending Deliveries
2. Confirm Pickup
3. Confirm Delivery
4. My Balance`

type USSD struct {
	log           serviceLogger
	users         UserRepository
	confirmations ConfirmationService
}

func New(log serviceLogger, users UserRepository, confirmations ConfirmationService) *USSD {
	return &USSD{
		log:           log.With(),
		users:         users,
		confirmations: confirmations,
	}
}

// Handle processes one USSD request. The gateway accumulates the session's
// inputs into text, joined by '*'; an empty text is the session opening.
// Business failures become END responses, only infrastructure errors
// propagate to the caller.
func (s *USSD) Handle(ctx context.Context, phone, text string) (string, error) {
	driver, err := s.users.GetVerifiedDriverByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) || errors.Is(err, user.ErrNotDriver) {
			s.log.With(logger.NewField("phone", phone)).Info("ussd session from unregistered phone")
			return prefixEnd + fmt.Sprintf("Welcome to Afya Links. \nYour phone number %s is not registered as a verified driver.", phone), nil
		}
		return "", fmt.Errorf("look up driver by phone: %w", err)
	}

	if text == "" {
		return mainMenu, nil
	}
	input := strings.Split(text, "*")

	switch input[0] {
	case "1":
		return s.pendingDeliveries(ctx, driver.ID)
	case "2":
		if len(input) == 1 {
			return prefixContinue + "Enter Order Code to confirm pickup:", nil
		}
		return s.confirmPickup(ctx, driver.ID, input[1])
	case "3":
		if len(input) == 1 {
			return prefixContinue + "Enter Order Code to confirm delivery:", nil
		}
		return s.confirmDelivery(ctx, driver.ID, input[1])
	case "4":
		return prefixEnd + "Your current balance is UGX 0. Payouts are processed weekly.", nil
	default:
		return prefixEnd + "Invalid option.", nil
	}
}

func (s *USSD) pendingDeliveries(ctx context.Context, driverID string) (string, error) {
	pending, err := s.confirmations.PendingDeliveries(ctx, driverID)
	if err != nil {
		return "", fmt.Errorf("list pending deliveries: %w", err)
	}

	if len(pending) == 0 {
		return prefixEnd + "You have no pending deliveries.", nil
	}

	lines := make([]string, 0, len(pending))
	for i, delivery := range pending {
		lines = append(lines, fmt.Sprintf("%d. %s - %s", i+1, delivery.OrderCode, delivery.DeliveryAddress))
	}
	return prefixEnd + "Your Pending Deliveries:\n" + strings.Join(lines, "\n"), nil
}

func (s *USSD) confirmPickup(ctx context.Context, driverID, orderCode string) (string, error) {
	if _, err := s.confirmations.ConfirmPickup(ctx, driverID, orderCode); err != nil {
		s.log.With(
			logger.NewField("driver", driverID),
			logger.NewField("error", err),
		).Warn("ussd pickup confirmation rejected")
		return prefixEnd + "Invalid Order Code.", nil
	}
	return prefixEnd + fmt.Sprintf("Pickup confirmed for %s. Stay safe!", strings.ToUpper(strings.TrimSpace(orderCode))), nil
}

func (s *USSD) confirmDelivery(ctx context.Context, driverID, orderCode string) (string, error) {
	if _, err := s.confirmations.ConfirmDeliveryByCode(ctx, driverID, orderCode); err != nil {
		s.log.With(
			logger.NewField("driver", driverID),
			logger.NewField("error", err),
		).Warn("ussd delivery confirmation rejected")
		return prefixEnd + "Invalid Order Code.", nil
	}
	return prefixEnd + fmt.Sprintf("Delivery confirmed for %s. Good job! Airtime reward coming soon.", strings.ToUpper(strings.TrimSpace(orderCode))), nil
}
