package confirmation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"afyalinks/internal/entities"
	"afyalinks/pkg/logger"
)

// rewardAmount is the fixed airtime incentive credited to the driver once a
// delivery is confirmed, in whole currency units.
const rewardAmount int64 = 1000

type Confirmation struct {
	log        serviceLogger
	orders     OrderRepository
	deliveries DeliveryRepository
	users      UserRepository
	rewarder   Rewarder
	txManager  TxManager
}

func New(
	log serviceLogger,
	orders OrderRepository,
	deliveries DeliveryRepository,
	users UserRepository,
	rewarder Rewarder,
	txManager TxManager,
) *Confirmation {
	return &Confirmation{
		log:        log.With(),
		orders:     orders,
		deliveries: deliveries,
		users:      users,
		rewarder:   rewarder,
		txManager:  txManager,
	}
}

// ConfirmPickup moves an order into transit on a matching order code.
// The driver proves possession of the parcel by quoting the code; no other
// authentication is applied on this channel.
func (s *Confirmation) ConfirmPickup(ctx context.Context, driverID, code string) (*entities.Order, error) {
	code = normalizeCode(code)
	if code == "" {
		return nil, ErrMissingOrderCode
	}

	orderEntity, err := s.orders.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOrderCode, code)
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.deliveries.SetPickupTime(ctx, orderEntity.ID, time.Now().UTC()); err != nil {
			return fmt.Errorf("set pickup time: %w", err)
		}
		if _, err := s.orders.UpdateStatus(ctx, orderEntity.ID, entities.OrderInTransit); err != nil {
			return fmt.Errorf("mark order in transit: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("confirm pickup for order %s: %w", orderEntity.ID, err)
	}

	s.log.With(
		logger.NewField("order", orderEntity.ID),
		logger.NewField("driver", driverID),
	).Info("pickup confirmed")

	orderEntity.Status = entities.OrderInTransit
	return orderEntity, nil
}

// ConfirmDeliveryByClinic is the app path: the clinic must own the order
// and quote the code handed over with the parcel.
func (s *Confirmation) ConfirmDeliveryByClinic(ctx context.Context, orderID, clinicID, code string) (*entities.Order, error) {
	code = normalizeCode(code)
	if code == "" {
		return nil, ErrMissingOrderCode
	}

	orderEntity, err := s.orders.GetForClinic(ctx, orderID, clinicID)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", orderID, err)
	}

	if orderEntity.OrderCode == nil || *orderEntity.OrderCode != code {
		return nil, ErrInvalidOrderCode
	}

	return s.finalize(ctx, orderEntity)
}

// ConfirmDeliveryByCode is the USSD path. Anyone quoting a valid code from
// a verified driver session can close the delivery; the feature-phone
// channel has nothing stronger to offer and the pilot accepts that.
func (s *Confirmation) ConfirmDeliveryByCode(ctx context.Context, driverID, code string) (*entities.Order, error) {
	code = normalizeCode(code)
	if code == "" {
		return nil, ErrMissingOrderCode
	}

	orderEntity, err := s.orders.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidOrderCode, code)
	}

	s.log.With(
		logger.NewField("order", orderEntity.ID),
		logger.NewField("driver", driverID),
	).Info("delivery confirmation via order code")

	return s.finalize(ctx, orderEntity)
}

// PendingDeliveries lists the driver's assignments that have not been
// dropped off yet.
func (s *Confirmation) PendingDeliveries(ctx context.Context, driverID string) ([]entities.PendingDelivery, error) {
	pending, err := s.deliveries.ListPendingByDriver(ctx, driverID)
	if err != nil {
		return nil, fmt.Errorf("list pending deliveries: %w", err)
	}
	return pending, nil
}

func (s *Confirmation) finalize(ctx context.Context, orderEntity *entities.Order) (*entities.Order, error) {
	if orderEntity.Status == entities.OrderDelivered {
		return nil, ErrAlreadyDelivered
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.orders.UpdateStatus(ctx, orderEntity.ID, entities.OrderDelivered); err != nil {
			return fmt.Errorf("mark order delivered: %w", err)
		}
		if err := s.deliveries.SetDropoffTime(ctx, orderEntity.ID, time.Now().UTC()); err != nil {
			return fmt.Errorf("set dropoff time: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("finalize order %s: %w", orderEntity.ID, err)
	}

	orderEntity.Status = entities.OrderDelivered
	s.rewardDriver(ctx, orderEntity.ID)
	return orderEntity, nil
}

// rewardDriver is best-effort: the delivery is already confirmed, a failed
// payout only leaves a log line for ops to replay.
func (s *Confirmation) rewardDriver(ctx context.Context, orderID string) {
	rewardLog := s.log.With(logger.NewField("order", orderID))

	delivery, err := s.deliveries.GetByOrderID(ctx, orderID)
	if err != nil {
		rewardLog.With(logger.NewField("error", err)).Error("load delivery for reward payout")
		return
	}

	driver, err := s.users.GetByID(ctx, delivery.DriverID)
	if err != nil {
		rewardLog.With(logger.NewField("error", err)).Error("load driver for reward payout")
		return
	}

	if err := s.rewarder.Send(ctx, driver.Phone, rewardAmount); err != nil {
		rewardLog.With(
			logger.NewField("driver", driver.ID),
			logger.NewField("error", err),
		).Error("send reward payout")
		return
	}

	rewardLog.With(
		logger.NewField("driver", driver.ID),
		logger.NewField("amount", rewardAmount),
	).Info("reward payout sent")
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
