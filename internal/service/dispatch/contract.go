//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatch_test
package dispatch

import (
	"context"

	"backoffice/internal/entities"
	"backoffice/internal/service/allocator"
)

type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	GetByIDs(ctx context.Context, ids []int64) ([]entities.Order, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Order, error)
	GetByIDsForUpdate(ctx context.Context, ids []int64) ([]entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, orderID int64, details entities.PaymentDetails) (*entities.Payment, error)
}

type AuditLog interface {
	Append(ctx context.Context, entry entities.AuditEntry) error
}

type CourierRegistry interface {
	GetCourier(ctx context.Context, id int64) (*entities.Courier, error)
	GetDispatchCandidate(ctx context.Context) (*entities.Courier, error)
}

type Allocator interface {
	Prepare(ctx context.Context, courier *entities.Courier, count int) (*allocator.Plan, error)
	Commit(ctx context.Context, courier *entities.Courier, plan *allocator.Plan, count int) ([]entities.TrackingNumber, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
