package allocator

import (
	"context"
	"fmt"

	"backoffice/internal/entities"
)

// Allocator hands out tracking numbers for dispatch, hiding the three
// courier integration modes behind a two-phase reserve/confirm flow:
//
//	Prepare: performs the remote parcel API call for api_new couriers,
//	before any database transaction is opened. Pool-backed modes do
//	nothing here.
//	Commit: runs inside the caller's transaction and flips local state,
//	either a pool reservation (all-or-nothing) or persisting the minted
//	values as used rows.
//
// A failed Prepare mutates nothing locally; a failed Commit rolls back
// with the caller's transaction. Reserved numbers are never released.
type Allocator struct {
	tracking TrackingRepository
	api      ParcelAPI
}

func New(tracking TrackingRepository, api ParcelAPI) *Allocator {
	return &Allocator{
		tracking: tracking,
		api:      api,
	}
}

// Plan is the output of Prepare and the input of Commit.
type Plan struct {
	Mode   entities.CourierMode
	Minted []string
}

func (a *Allocator) Prepare(ctx context.Context, courier *entities.Courier, count int) (*Plan, error) {
	if count <= 0 {
		return nil, fmt.Errorf("allocation count must be positive, got %d", count)
	}

	switch courier.Mode {
	case entities.ModeInternalPool, entities.ModeAPIExisting:
		return &Plan{Mode: courier.Mode}, nil

	case entities.ModeAPINew:
		creds, err := credentials(courier)
		if err != nil {
			return nil, err
		}

		minted, err := a.api.CreateNewParcels(ctx, creds, count)
		if err != nil {
			return nil, fmt.Errorf("create parcels for courier %d: %w", courier.ID, err)
		}
		if len(minted) == 0 {
			return nil, fmt.Errorf("courier %d minted zero parcels: %w", courier.ID, ErrNoTrackingAvailable)
		}
		// Ответ может быть короче запрошенного, частичное выполнение
		// обрабатывает вызывающая сторона.
		if len(minted) > count {
			minted = minted[:count]
		}
		return &Plan{Mode: courier.Mode, Minted: minted}, nil

	default:
		return nil, ErrUnsupportedMode
	}
}

// Commit must run inside the dispatch transaction so that reservation
// and the order status write land or roll back together. The returned
// slice is positional: the caller assigns numbers to orders in
// submission order.
func (a *Allocator) Commit(ctx context.Context, courier *entities.Courier, plan *Plan, count int) ([]entities.TrackingNumber, error) {
	if plan == nil {
		return nil, fmt.Errorf("nil allocation plan")
	}
	if count <= 0 {
		return nil, fmt.Errorf("allocation count must be positive, got %d", count)
	}

	switch plan.Mode {
	case entities.ModeInternalPool, entities.ModeAPIExisting:
		if count == 1 {
			number, err := a.tracking.ReserveOne(ctx, courier.ID)
			if err != nil {
				return nil, fmt.Errorf("reserve tracking number: %w", err)
			}
			return []entities.TrackingNumber{*number}, nil
		}

		numbers, err := a.tracking.ReserveMany(ctx, courier.ID, count)
		if err != nil {
			return nil, fmt.Errorf("reserve %d tracking numbers: %w", count, err)
		}
		return numbers, nil

	case entities.ModeAPINew:
		minted := plan.Minted
		if len(minted) > count {
			minted = minted[:count]
		}
		numbers, err := a.tracking.InsertUsed(ctx, courier.ID, minted)
		if err != nil {
			return nil, fmt.Errorf("record minted tracking numbers: %w", err)
		}
		return numbers, nil

	default:
		return nil, ErrUnsupportedMode
	}
}

// PreviewNext returns the next count numbers the pool would hand out,
// oldest first, without reserving anything. Repeated calls are stable
// until a reservation happens.
func (a *Allocator) PreviewNext(ctx context.Context, courier *entities.Courier, count int) ([]string, error) {
	if count <= 0 {
		return nil, fmt.Errorf("preview count must be positive, got %d", count)
	}
	if !courier.Mode.PoolBacked() {
		return nil, ErrPreviewUnavailable
	}

	values, err := a.tracking.PeekUnused(ctx, courier.ID, count)
	if err != nil {
		return nil, fmt.Errorf("peek unused tracking numbers: %w", err)
	}
	return values, nil
}

func (a *Allocator) CountAvailable(ctx context.Context, courierID int64) (int64, error) {
	available, err := a.tracking.CountUnused(ctx, courierID)
	if err != nil {
		return 0, fmt.Errorf("count unused tracking numbers: %w", err)
	}
	return available, nil
}

// ImportExisting pulls count pre-existing parcel numbers from the
// courier's own inventory and seeds them into the local pool as unused.
func (a *Allocator) ImportExisting(ctx context.Context, courier *entities.Courier, count int) (int64, error) {
	if count <= 0 {
		return 0, fmt.Errorf("import count must be positive, got %d", count)
	}
	if courier.Mode != entities.ModeAPIExisting {
		return 0, ErrUnsupportedMode
	}

	creds, err := credentials(courier)
	if err != nil {
		return 0, err
	}

	values, err := a.api.FetchExistingParcelNumbers(ctx, creds, count)
	if err != nil {
		return 0, fmt.Errorf("fetch existing parcels for courier %d: %w", courier.ID, err)
	}
	if len(values) == 0 {
		return 0, nil
	}

	inserted, err := a.tracking.InsertUnused(ctx, courier.ID, values)
	if err != nil {
		return 0, fmt.Errorf("import parcels for courier %d: %w", courier.ID, err)
	}
	return inserted, nil
}

func credentials(courier *entities.Courier) (entities.CourierCredentials, error) {
	if courier.APIClientID == nil || courier.APIKey == nil {
		return entities.CourierCredentials{}, ErrMissingCredentials
	}
	return entities.CourierCredentials{
		ClientID: *courier.APIClientID,
		APIKey:   *courier.APIKey,
	}, nil
}
