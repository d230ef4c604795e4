package order_events

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"afyalinks/internal/entities"
	"afyalinks/internal/pkg/factory/order_event_handle"
	"afyalinks/internal/service/assignment"
	"afyalinks/pkg/logger"
)

type Handler struct {
	factory                  HandlerFactory
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, factory HandlerFactory, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		factory:                  factory,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.events: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Session closed (rebalance or consumer group shutdown).
			h.log.Info("order.events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles one Kafka message. Returns true when
// ConsumeClaim should stop (context cancelled); false to continue with the
// next message.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event entities.OrderEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.events handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.events processing")

	handle, err := h.factory.GetHandler(event.Status)
	if err != nil {
		// Not every lifecycle status triggers work; skip quietly.
		if errors.Is(err, order_event_handle.ErrUnhandledStatus) {
			sess.MarkMessage(message, "")
			return false
		}
		msgLog.With(
			logger.NewField("error", err),
		).Warn("order.events handler resolution failed")
		sess.MarkMessage(message, "")
		return false
	}

	err = handle(ctx, event.OrderID, event.OrderCode)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.events handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, assignment.ErrOrderAlreadyAssigned):
			// A redelivered event after a crash between insert and commit.
			msgLog.Warn("order.events order already assigned, skipping")

		case errors.Is(err, assignment.ErrNoEligibleDrivers):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.events no eligible drivers, order stays unassigned")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.events handler failed to process order")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("order.events: processed")

	sess.MarkMessage(message, "")
	return false
}
