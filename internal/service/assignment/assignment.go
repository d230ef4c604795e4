package assignment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"afyalinks/internal/entities"
	"afyalinks/pkg/logger"
)

const fallbackDriverName = "AfyaLinks Driver"

type Assignment struct {
	log          serviceLogger
	deliveries   DeliveryRepository
	orders       OrderRepository
	users        UserRepository
	notifier     Notifier
	availability AvailabilityPolicy
}

func New(
	log serviceLogger,
	deliveries DeliveryRepository,
	orders OrderRepository,
	users UserRepository,
	notifier Notifier,
	availability AvailabilityPolicy,
) *Assignment {
	return &Assignment{
		log:          log.With(),
		deliveries:   deliveries,
		orders:       orders,
		users:        users,
		notifier:     notifier,
		availability: availability,
	}
}

// AssignDriver picks an eligible driver for an accepted order, records the
// delivery and notifies both driver and pharmacy.
//
// The whole operation runs after the pharmacy has already been told its
// response succeeded, so every returned error ends up in a log line, never
// in a user-facing response. A duplicate delivery insert means another run
// got here first; ErrOrderAlreadyAssigned is returned so a redelivered
// event cannot rewrite the status of an order that has moved past
// assignment. Notification failures are logged here and do not undo the
// assignment.
func (s *Assignment) AssignDriver(ctx context.Context, orderID, orderCode string) error {
	if orderID == "" {
		return ErrInvalidOrderID
	}

	orderEntity, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("get order %s: %w", orderID, err)
	}

	driver, err := s.pickDriver(ctx, orderEntity, time.Now())
	if err != nil {
		return fmt.Errorf("pick driver for order %s: %w", orderID, err)
	}

	if _, err = s.deliveries.Create(ctx, orderID, driver.ID); err != nil {
		if errors.Is(err, ErrOrderAlreadyAssigned) {
			return ErrOrderAlreadyAssigned
		}
		return fmt.Errorf("create delivery for order %s: %w", orderID, err)
	}

	if _, err := s.orders.UpdateStatus(ctx, orderID, entities.OrderAssigned); err != nil {
		return fmt.Errorf("mark order %s assigned: %w", orderID, err)
	}

	s.notifyParties(ctx, orderEntity, driver, orderCode)
	return nil
}

// pickDriver returns the first verified driver whose availability window
// covers the current hour, preferring drivers whose region label appears in
// the delivery address. Region is a preference, not a filter: a pilot fleet
// is too small to strand an order over a label mismatch.
func (s *Assignment) pickDriver(ctx context.Context, orderEntity *entities.Order, now time.Time) (*entities.User, error) {
	drivers, err := s.users.ListVerifiedByRole(ctx, entities.RoleDriver)
	if err != nil {
		return nil, fmt.Errorf("list verified drivers: %w", err)
	}
	if len(drivers) == 0 {
		return nil, ErrNoEligibleDrivers
	}

	var fallback *entities.User
	for i := range drivers {
		driver := &drivers[i]

		profile, err := s.users.GetDriverProfile(ctx, driver.ID)
		if err != nil {
			s.log.With(
				logger.NewField("driver", driver.ID),
				logger.NewField("error", err),
			).Warn("load driver profile, treating driver as unrestricted")
			profile = nil
		}

		if !s.availability.Eligible(profile, now) {
			continue
		}

		if profile != nil && regionMatches(profile.Region, orderEntity.DeliveryAddress) {
			return driver, nil
		}
		if fallback == nil {
			fallback = driver
		}
	}

	if fallback == nil {
		return nil, ErrNoEligibleDrivers
	}
	return fallback, nil
}

func (s *Assignment) notifyParties(ctx context.Context, orderEntity *entities.Order, driver *entities.User, orderCode string) {
	pharmacyName := "Pharmacy"
	pharmacyAddress := "Unknown Address"
	pharmacyPhone := ""
	if profile, err := s.users.GetPharmacyProfile(ctx, orderEntity.PharmacyID); err == nil {
		pharmacyName = profile.BusinessName
		pharmacyAddress = profile.Address
		pharmacyPhone = profile.ContactPhone
	}

	clinicPhone := ""
	if profile, err := s.users.GetClinicProfile(ctx, orderEntity.ClinicID); err == nil {
		clinicPhone = profile.ContactPhone
	}

	deliveryAddress := orderEntity.DeliveryAddress
	if deliveryAddress == "" {
		deliveryAddress = "Clinic Address"
	}

	driverName := driver.Name
	if driverName == "" {
		driverName = fallbackDriverName
	}

	driverSMS := fmt.Sprintf("AfyaLinks: Pickup @ %s, %s. Drop-off: %s / %s. OrderCode: %s.",
		pharmacyName, pharmacyAddress, clinicPhone, deliveryAddress, orderCode)
	s.send(ctx, orderEntity.ID, []string{driver.Phone}, driverSMS)

	if pharmacyPhone != "" {
		pharmacySMS := fmt.Sprintf("Driver %s (%s) assigned. Attach order code to parcel.",
			driverName, driver.Phone)
		s.send(ctx, orderEntity.ID, []string{pharmacyPhone}, pharmacySMS)
	}
}

func (s *Assignment) send(ctx context.Context, orderID string, recipients []string, message string) {
	if err := s.notifier.Send(ctx, recipients, message); err != nil {
		s.log.With(
			logger.NewField("order", orderID),
			logger.NewField("recipients", recipients),
			logger.NewField("error", err),
		).Error("send assignment notification")
	}
}

func regionMatches(region, address string) bool {
	region = strings.TrimSpace(region)
	if region == "" || address == "" {
		return false
	}
	return strings.Contains(strings.ToLower(address), strings.ToLower(region))
}
