//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_pay_post_test
package order_pay_post

import (
	"context"

	"backoffice/internal/entities"
	"backoffice/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	MarkPaid(ctx context.Context, actor entities.Actor, orderID int64, details entities.PaymentDetails) (*entities.Order, error)
}
