//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_preview_get_test
package tracking_preview_get

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

type CourierProvider interface {
	GetCourier(ctx context.Context, id int64) (*entities.Courier, error)
}

type Service interface {
	PreviewNext(ctx context.Context, courier *entities.Courier, count int) ([]string, error)
	CountAvailable(ctx context.Context, courierID int64) (int64, error)
}
