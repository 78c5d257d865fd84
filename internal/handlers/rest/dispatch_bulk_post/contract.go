//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_bulk_post_test
package dispatch_bulk_post

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
	DispatchBatch(ctx context.Context, actor entities.Actor, orderIDs []int64, courierID int64, dispatchType, notes string) (*entities.BatchDispatchResult, error)
}
