//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_import_post_test
package courier_import_post

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
	ImportExistingParcels(ctx context.Context, actor entities.Actor, id int64, count int) (int64, error)
}
