package payment_confirmed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"backoffice/internal/entities"
	"backoffice/internal/service/dispatch"
	"backoffice/pkg/logger"
)

type confirmedEvent struct {
	OrderID        int64     `json:"order_id"`
	Amount         int64     `json:"amount"`
	Method         string    `json:"method"`
	Payer          string    `json:"payer"`
	PaidAt         time.Time `json:"paid_at"`
	ProofReference *string   `json:"proof_reference"`
}

type Handler struct {
	dispatchService          Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, dispatchService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		dispatchService:          dispatchService,
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
				h.log.Info("payment.confirmed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("payment.confirmed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event confirmedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("payment.confirmed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("amount", event.Amount),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("payment.confirmed processing")

	details := entities.PaymentDetails{
		Amount:         event.Amount,
		Method:         event.Method,
		Payer:          event.Payer,
		PaidAt:         event.PaidAt,
		ProofReference: event.ProofReference,
	}

	order, err := h.dispatchService.MarkPaid(ctx, entities.SystemActor, event.OrderID, details)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.confirmed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, dispatch.ErrAlreadyPaid):
			// повторная доставка события, подтверждение уже записано
			msgLog.Warn("payment.confirmed handler order already paid")

		case errors.Is(err, dispatch.ErrOrderNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.confirmed handler order not found")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.confirmed handler failed to process order")
		}
		sess.MarkMessage(message, "")
		return false
	}

	h.log.With(
		logger.NewField("order", order.ID),
		logger.NewField("pay_status", order.PayStatus.String()),
		logger.NewField("offset", message.Offset),
	).Info("payment.confirmed: processed")

	sess.MarkMessage(message, "")
	return false
}
