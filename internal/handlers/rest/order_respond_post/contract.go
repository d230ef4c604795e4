//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_respond_post_test
package order_respond_post

import (
	"context"

	"afyalinks/internal/entities"
	"afyalinks/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	RespondToOrder(ctx context.Context, orderID, pharmacyID string, decision entities.OrderDecision, reason string) (*entities.Order, error)
}
