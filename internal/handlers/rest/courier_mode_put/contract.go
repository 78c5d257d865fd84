//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_mode_put_test
package courier_mode_put

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
	SetCapabilityMode(ctx context.Context, actor entities.Actor, id int64, mode entities.CourierMode) (*entities.Courier, error)
}
