//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_audit_get_test
package order_audit_get

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
	GetOrder(ctx context.Context, orderID int64) (*entities.Order, error)
}

type AuditReader interface {
	ListByOrder(ctx context.Context, orderID int64) ([]entities.AuditEntry, error)
}
