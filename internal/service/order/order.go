package order

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"afyalinks/internal/entities"
	"afyalinks/pkg/logger"
)

// Commission amounts are fixed at order creation and never recomputed.
var (
	platformCommissionRate = decimal.RequireFromString("0.05")
	deliveryCommissionRate = decimal.RequireFromString("0.1")
	deliveryFee            = decimal.NewFromInt(5000)
)

const defaultRejectionReason = "No reason provided"

type Order struct {
	log        serviceLogger
	repository Repository
	publisher  EventPublisher
	txManager  TxManager
}

func New(log serviceLogger, repository Repository, publisher EventPublisher, txManager TxManager) *Order {
	return &Order{
		log:        log.With(),
		repository: repository,
		publisher:  publisher,
		txManager:  txManager,
	}
}

// PlaceOrder creates a PENDING order with its items in one transaction.
func (s *Order) PlaceOrder(ctx context.Context, draft entities.OrderDraft) (*entities.Order, error) {
	if draft.ClinicID == "" || draft.PharmacyID == "" {
		return nil, ErrMissingRequiredFields
	}
	if len(draft.Items) == 0 {
		return nil, ErrEmptyItems
	}

	subtotal := decimal.Zero
	items := make([]entities.OrderItem, 0, len(draft.Items))
	for _, item := range draft.Items {
		if item.DrugName == "" || item.Quantity <= 0 || item.PriceAgreed.IsNegative() {
			return nil, fmt.Errorf("%w: %q", ErrInvalidItem, item.DrugName)
		}
		subtotal = subtotal.Add(item.PriceAgreed.Mul(decimal.NewFromInt(item.Quantity)))
		items = append(items, entities.OrderItem{
			DrugName:    item.DrugName,
			Quantity:    item.Quantity,
			PriceAgreed: item.PriceAgreed,
		})
	}

	orderEntity := entities.Order{
		ClinicID:           draft.ClinicID,
		PharmacyID:         draft.PharmacyID,
		Status:             entities.OrderPending,
		Subtotal:           subtotal,
		PlatformCommission: subtotal.Mul(platformCommissionRate),
		DeliveryFee:        deliveryFee,
		DeliveryCommission: deliveryFee.Mul(deliveryCommissionRate),
		DeliveryAddress:    draft.DeliveryAddress,
		Items:              items,
	}

	var created *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repository.Create(ctx, orderEntity)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// RespondToOrder applies the pharmacy decision to a PENDING order.
//
// Rejection records the reason and ends the order's life. Acceptance
// (full or partial) stamps a fresh order code and hands the order to the
// assignment worker through the events topic; a publish failure is logged
// and swallowed because the pharmacy response has already been persisted.
func (s *Order) RespondToOrder(
	ctx context.Context,
	orderID, pharmacyID string,
	decision entities.OrderDecision,
	reason string,
) (*entities.Order, error) {
	if orderID == "" || pharmacyID == "" {
		return nil, ErrMissingRequiredFields
	}

	switch decision {
	case entities.DecisionAccepted, entities.DecisionPartial, entities.DecisionRejected:
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidDecision, decision)
	}

	var responded *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		orderEntity, err := s.repository.GetForPharmacy(ctx, orderID, pharmacyID)
		if err != nil {
			return fmt.Errorf("get order %s: %w", orderID, err)
		}

		if orderEntity.Status != entities.OrderPending {
			return fmt.Errorf("%w: order is already %s", ErrOrderNotPending, orderEntity.Status)
		}

		status := entities.OrderStatusType(decision)
		orderModify := entities.OrderModify{
			ID:     &orderEntity.ID,
			Status: &status,
		}

		if decision == entities.DecisionRejected {
			rejectedReason := reason
			if rejectedReason == "" {
				rejectedReason = defaultRejectionReason
			}
			orderModify.RejectedReason = &rejectedReason
		} else {
			code := newOrderCode()
			orderModify.OrderCode = &code
		}

		rowsAffected, err := s.repository.UpdateResponse(ctx, orderModify)
		if err != nil {
			return fmt.Errorf("update order %s: %w", orderID, err)
		}
		if rowsAffected == 0 {
			// Another response won the conditional update.
			return fmt.Errorf("%w: order is already %s", ErrOrderNotPending, orderEntity.Status)
		}

		orderEntity.Status = status
		orderEntity.OrderCode = orderModify.OrderCode
		orderEntity.RejectedReason = orderModify.RejectedReason
		responded = orderEntity
		return nil
	})
	if err != nil {
		return nil, err
	}

	if decision != entities.DecisionRejected {
		s.publishAccepted(ctx, responded)
	}

	return responded, nil
}

func (s *Order) GetOrder(ctx context.Context, id string) (*entities.Order, error) {
	if id == "" {
		return nil, ErrInvalidOrderID
	}

	orderEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return orderEntity, nil
}

func (s *Order) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	orders, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *Order) publishAccepted(ctx context.Context, orderEntity *entities.Order) {
	event := entities.OrderEvent{
		OrderID: orderEntity.ID,
		Status:  orderEntity.Status,
	}
	if orderEntity.OrderCode != nil {
		event.OrderCode = *orderEntity.OrderCode
	}

	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		s.log.With(
			logger.NewField("order", orderEntity.ID),
			logger.NewField("error", err),
		).Error("publish order event, driver assignment will not be triggered")
	}
}
