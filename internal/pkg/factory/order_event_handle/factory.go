package order_event_handle

import (
	"context"
	"errors"
	"fmt"

	"afyalinks/internal/entities"
)

var ErrUnhandledStatus = errors.New("no handler for order status")

type AssignmentService interface {
	AssignDriver(ctx context.Context, orderID, orderCode string) error
}

type ExecuteFn func(ctx context.Context, orderID, orderCode string) error

// StatusHandlerFactory routes order lifecycle events to the action they
// trigger. Only pharmacy acceptances start an assignment; everything else
// on the topic is informational.
type StatusHandlerFactory struct {
	assignmentService AssignmentService
}

func NewStatusHandlerFactory(assignmentService AssignmentService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		assignmentService: assignmentService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (ExecuteFn, error) {
	switch status {
	case entities.OrderAccepted, entities.OrderPartial:
		return f.acceptedHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnhandledStatus, status)
	}
}

func (f *StatusHandlerFactory) acceptedHandler(ctx context.Context, orderID, orderCode string) error {
	err := f.assignmentService.AssignDriver(ctx, orderID, orderCode)
	if err != nil {
		return fmt.Errorf("assign driver for accepted order %s: %w", orderID, err)
	}
	return nil
}
