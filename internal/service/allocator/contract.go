//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=allocator_test
package allocator

import (
	"context"

	"backoffice/internal/entities"
)

type TrackingRepository interface {
	CountUnused(ctx context.Context, courierID int64) (int64, error)
	ReserveOne(ctx context.Context, courierID int64) (*entities.TrackingNumber, error)
	ReserveMany(ctx context.Context, courierID int64, count int) ([]entities.TrackingNumber, error)
	InsertUsed(ctx context.Context, courierID int64, values []string) ([]entities.TrackingNumber, error)
	InsertUnused(ctx context.Context, courierID int64, values []string) (int64, error)
	PeekUnused(ctx context.Context, courierID int64, count int) ([]string, error)
}

type ParcelAPI interface {
	CreateNewParcels(ctx context.Context, creds entities.CourierCredentials, count int) ([]string, error)
	FetchExistingParcelNumbers(ctx context.Context, creds entities.CourierCredentials, count int) ([]string, error)
}
