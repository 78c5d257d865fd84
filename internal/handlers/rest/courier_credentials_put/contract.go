//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_credentials_put_test
package courier_credentials_put

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
	SetCredentials(ctx context.Context, actor entities.Actor, id int64, clientID, apiKey string) (*entities.Courier, error)
}
