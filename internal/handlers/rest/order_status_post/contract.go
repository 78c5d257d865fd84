//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_status_post_test
package order_status_post

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
	Complete(ctx context.Context, actor entities.Actor, orderID int64) (*entities.Order, error)
	ReturnComplete(ctx context.Context, actor entities.Actor, orderID int64) (*entities.Order, error)
	ReturnHandover(ctx context.Context, actor entities.Actor, orderID int64) (*entities.Order, error)
}
