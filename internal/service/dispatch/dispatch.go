package dispatch

import (
	"context"
	"errors"
	"fmt"

	"backoffice/internal/entities"
	courierservice "backoffice/internal/service/courier"
)

// Engine is the single gate for order status changes tied to dispatch.
// Every mutating operation runs as one transaction: tracking reservation,
// the order row write and the audit entry land or roll back together.
// Remote parcel minting happens before the transaction opens (reserve /
// confirm), so courier API latency never sits on row locks.
type Engine struct {
	orders    OrderRepository
	payments  PaymentRepository
	audit     AuditLog
	registry  CourierRegistry
	allocator Allocator
	txManager TxManager
}

func New(
	orders OrderRepository,
	payments PaymentRepository,
	audit AuditLog,
	registry CourierRegistry,
	allocator Allocator,
	txManager TxManager,
) *Engine {
	return &Engine{
		orders:    orders,
		payments:  payments,
		audit:     audit,
		registry:  registry,
		allocator: allocator,
		txManager: txManager,
	}
}

// DispatchSingle moves one order to "dispatch" with exactly one tracking
// number. courierID == 0 selects the configured dispatch candidate.
// On allocation failure the order row is left untouched and the error is
// returned verbatim: an empty pool keeps the order pending.
func (e *Engine) DispatchSingle(ctx context.Context, actor entities.Actor, orderID, courierID int64, notes string) (*entities.DispatchResult, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	// Предварительная проверка до удалённого вызова, окончательная
	// проверка статуса выполняется под блокировкой внутри транзакции.
	order, err := e.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", orderID, err)
	}
	if !order.Status.Dispatchable() {
		return nil, ErrInvalidStatus
	}

	courier, err := e.resolveCourier(ctx, courierID)
	if err != nil {
		return nil, err
	}

	plan, err := e.allocator.Prepare(ctx, courier, 1)
	if err != nil {
		return nil, fmt.Errorf("prepare allocation: %w", err)
	}

	result := entities.DispatchResult{}
	err = e.txManager.Do(ctx, func(ctx context.Context) error {
		locked, err := e.orders.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("lock order %d: %w", orderID, err)
		}
		if !locked.Status.Dispatchable() {
			return ErrInvalidStatus
		}

		numbers, err := e.allocator.Commit(ctx, courier, plan, 1)
		if err != nil {
			return err
		}
		trackingValue := numbers[0].Value

		newStatus := entities.OrderDispatch
		modify := entities.OrderModify{
			ID:             &orderID,
			Status:         &newStatus,
			TrackingNumber: &trackingValue,
			CourierID:      &courier.ID,
		}
		if notes != "" {
			modify.DispatchNotes = &notes
		}

		updated, err := e.orders.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("update order %d: %w", orderID, err)
		}

		if err := e.audit.Append(ctx, entities.AuditEntry{
			ActorID: actor.UserID,
			Action:  dispatchAction(courier.Mode),
			OrderID: &orderID,
			Details: map[string]interface{}{
				"tracking_number": trackingValue,
				"courier_id":      courier.ID,
				"mode":            courier.Mode.String(),
				"notes":           notes,
			},
		}); err != nil {
			return fmt.Errorf("append audit entry: %w", err)
		}

		result = entities.DispatchResult{
			Order:          updated,
			TrackingNumber: trackingValue,
			CourierID:      courier.ID,
			Mode:           courier.Mode,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// DispatchBatch dispatches many orders against one courier in a single
// reservation step. Ineligible orders are excluded and reported, not
// fatal. Pool-backed modes are all-or-nothing for the eligible subset;
// api_new dispatches whatever subset the remote API actually minted.
// Tracking numbers are assigned positionally in submission order.
func (e *Engine) DispatchBatch(ctx context.Context, actor entities.Actor, orderIDs []int64, courierID int64, dispatchType, notes string) (*entities.BatchDispatchResult, error) {
	if len(orderIDs) == 0 {
		return nil, ErrEmptyBatch
	}
	orderIDs = dedupe(orderIDs)

	courier, err := e.resolveCourier(ctx, courierID)
	if err != nil {
		return nil, err
	}

	// Предварительное чтение определяет сколько номеров запрашивать у
	// внешнего API до открытия транзакции.
	eligibleIDs, prereadFailed, err := e.partition(ctx, orderIDs, false)
	if err != nil {
		return nil, err
	}

	result := entities.BatchDispatchResult{
		Assignments: map[int64]string{},
		CourierID:   courier.ID,
		Mode:        courier.Mode,
	}

	if len(eligibleIDs) == 0 {
		result.Failed = prereadFailed
		return &result, nil
	}

	plan, err := e.allocator.Prepare(ctx, courier, len(eligibleIDs))
	if err != nil {
		return nil, fmt.Errorf("prepare allocation: %w", err)
	}

	err = e.txManager.Do(ctx, func(ctx context.Context) error {
		eligible, failed, err := e.partition(ctx, orderIDs, true)
		if err != nil {
			return err
		}
		result.Failed = failed

		if len(eligible) == 0 {
			return nil
		}

		numbers, err := e.allocator.Commit(ctx, courier, plan, len(eligible))
		if err != nil {
			return err
		}

		newStatus := entities.OrderDispatch
		for i, orderID := range eligible {
			if i >= len(numbers) {
				// api_new выдал меньше чем запрошено: остаток не
				// диспатчим, статус не трогаем.
				result.Failed = append(result.Failed, entities.FailedOrder{
					OrderID: orderID,
					Reason:  entities.FailRemoteShortfall,
				})
				continue
			}

			orderID := orderID
			trackingValue := numbers[i].Value
			modify := entities.OrderModify{
				ID:             &orderID,
				Status:         &newStatus,
				TrackingNumber: &trackingValue,
				CourierID:      &courier.ID,
			}
			if notes != "" {
				modify.DispatchNotes = &notes
			}

			if _, err := e.orders.Update(ctx, modify); err != nil {
				return fmt.Errorf("update order %d: %w", orderID, err)
			}

			if err := e.audit.Append(ctx, entities.AuditEntry{
				ActorID: actor.UserID,
				Action:  dispatchAction(courier.Mode),
				OrderID: &orderID,
				Details: map[string]interface{}{
					"tracking_number": trackingValue,
					"courier_id":      courier.ID,
					"mode":            courier.Mode.String(),
					"dispatch_type":   dispatchType,
				},
			}); err != nil {
				return fmt.Errorf("append audit entry: %w", err)
			}

			result.DispatchedOrderIDs = append(result.DispatchedOrderIDs, orderID)
			result.Assignments[orderID] = trackingValue
		}

		// Итоговая запись по всей пачке.
		if err := e.audit.Append(ctx, entities.AuditEntry{
			ActorID: actor.UserID,
			Action:  entities.ActionBulkDispatch,
			Details: map[string]interface{}{
				"courier_id":    courier.ID,
				"mode":          courier.Mode.String(),
				"dispatch_type": dispatchType,
				"requested":     len(orderIDs),
				"dispatched":    len(result.DispatchedOrderIDs),
				"failed":        len(result.Failed),
			},
		}); err != nil {
			return fmt.Errorf("append audit summary: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Cancel rejects reasons shorter than 10 characters and terminal orders.
// The tracking number, if any, stays with the order: numbers are never
// recycled.
func (e *Engine) Cancel(ctx context.Context, actor entities.Actor, orderID int64, reason string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidCancelReason(reason) {
		return nil, ErrReasonTooShort
	}

	var cancelled *entities.Order
	err := e.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := e.orders.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("lock order %d: %w", orderID, err)
		}
		if order.Status.IsTerminal() {
			return ErrInvalidStatus
		}

		newStatus := entities.OrderCancel
		cancelled, err = e.orders.Update(ctx, entities.OrderModify{
			ID:           &orderID,
			Status:       &newStatus,
			CancelReason: &reason,
		})
		if err != nil {
			return fmt.Errorf("update order %d: %w", orderID, err)
		}

		return e.audit.Append(ctx, entities.AuditEntry{
			ActorID: actor.UserID,
			Action:  entities.ActionCancel,
			OrderID: &orderID,
			Details: map[string]interface{}{
				"reason":          reason,
				"previous_status": order.Status.String(),
			},
		})
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

// MarkPaid rejects a second invocation outright rather than silently
// succeeding, so a duplicate Payment row can never be created.
func (e *Engine) MarkPaid(ctx context.Context, actor entities.Actor, orderID int64, details entities.PaymentDetails) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	var paid *entities.Order
	err := e.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := e.orders.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("lock order %d: %w", orderID, err)
		}
		if order.PayStatus == entities.PayStatusPaid {
			return ErrAlreadyPaid
		}

		payment, err := e.payments.Create(ctx, orderID, details)
		if err != nil {
			return fmt.Errorf("create payment: %w", err)
		}

		newPayStatus := entities.PayStatusPaid
		paid, err = e.orders.Update(ctx, entities.OrderModify{
			ID:        &orderID,
			PayStatus: &newPayStatus,
		})
		if err != nil {
			return fmt.Errorf("update order %d: %w", orderID, err)
		}

		return e.audit.Append(ctx, entities.AuditEntry{
			ActorID: actor.UserID,
			Action:  entities.ActionMarkPaid,
			OrderID: &orderID,
			Details: map[string]interface{}{
				"payment_id": payment.ID,
				"amount":     details.Amount,
				"method":     details.Method,
			},
		})
	})
	if err != nil {
		return nil, err
	}
	return paid, nil
}

// SetCallStatus toggles the call log flag. Independent of the dispatch
// state machine.
func (e *Engine) SetCallStatus(ctx context.Context, actor entities.Actor, orderID int64, callLog bool, reason string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidCallReason(reason) {
		return nil, ErrCallReasonTooShort
	}

	var updated *entities.Order
	err := e.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := e.orders.GetByIDForUpdate(ctx, orderID); err != nil {
			return fmt.Errorf("lock order %d: %w", orderID, err)
		}

		var err error
		updated, err = e.orders.Update(ctx, entities.OrderModify{
			ID:      &orderID,
			CallLog: &callLog,
		})
		if err != nil {
			return fmt.Errorf("update order %d: %w", orderID, err)
		}

		return e.audit.Append(ctx, entities.AuditEntry{
			ActorID: actor.UserID,
			Action:  entities.ActionCallStatusUpdate,
			OrderID: &orderID,
			Details: map[string]interface{}{
				"call_log": callLog,
				"reason":   reason,
			},
		})
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Complete moves a dispatched order to done.
func (e *Engine) Complete(ctx context.Context, actor entities.Actor, orderID int64) (*entities.Order, error) {
	return e.transition(ctx, actor, orderID, entities.OrderDispatch, entities.OrderDone, entities.ActionComplete)
}

// ReturnComplete and ReturnHandover are the two steps of the return
// pipeline for dispatched orders.
func (e *Engine) ReturnComplete(ctx context.Context, actor entities.Actor, orderID int64) (*entities.Order, error) {
	return e.transition(ctx, actor, orderID, entities.OrderDispatch, entities.OrderReturnComplete, entities.ActionReturnComplete)
}

func (e *Engine) ReturnHandover(ctx context.Context, actor entities.Actor, orderID int64) (*entities.Order, error) {
	return e.transition(ctx, actor, orderID, entities.OrderReturnComplete, entities.OrderReturnHandover, entities.ActionReturnHandover)
}

func (e *Engine) GetOrder(ctx context.Context, orderID int64) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	order, err := e.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", orderID, err)
	}
	return order, nil
}

func (e *Engine) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	orders, err := e.orders.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (e *Engine) transition(ctx context.Context, actor entities.Actor, orderID int64, from, to entities.OrderStatusType, action entities.AuditAction) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	var updated *entities.Order
	err := e.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := e.orders.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("lock order %d: %w", orderID, err)
		}
		if order.Status != from {
			return ErrInvalidStatus
		}

		updated, err = e.orders.Update(ctx, entities.OrderModify{
			ID:     &orderID,
			Status: &to,
		})
		if err != nil {
			return fmt.Errorf("update order %d: %w", orderID, err)
		}

		return e.audit.Append(ctx, entities.AuditEntry{
			ActorID: actor.UserID,
			Action:  action,
			OrderID: &orderID,
			Details: map[string]interface{}{
				"previous_status": order.Status.String(),
				"new_status":      to.String(),
			},
		})
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (e *Engine) resolveCourier(ctx context.Context, courierID int64) (*entities.Courier, error) {
	var (
		courier *entities.Courier
		err     error
	)
	if courierID == 0 {
		courier, err = e.registry.GetDispatchCandidate(ctx)
		if err != nil {
			if errors.Is(err, courierservice.ErrNoCandidate) {
				return nil, ErrNoDispatchCourier
			}
			return nil, fmt.Errorf("get dispatch candidate: %w", err)
		}
	} else {
		courier, err = e.registry.GetCourier(ctx, courierID)
		if err != nil {
			return nil, fmt.Errorf("get courier %d: %w", courierID, err)
		}
	}

	if courier.Status != entities.CourierActive {
		return nil, ErrCourierInactive
	}
	return courier, nil
}

// partition splits ids into dispatchable and failed, preserving
// submission order. forUpdate locks the eligible rows for the rest of
// the transaction.
func (e *Engine) partition(ctx context.Context, orderIDs []int64, forUpdate bool) ([]int64, []entities.FailedOrder, error) {
	var orders []entities.Order
	var err error
	if forUpdate {
		orders, err = e.orders.GetByIDsForUpdate(ctx, orderIDs)
	} else {
		orders, err = e.orders.GetByIDs(ctx, orderIDs)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("get orders: %w", err)
	}

	byID := make(map[int64]entities.Order, len(orders))
	for _, order := range orders {
		byID[order.ID] = order
	}

	eligible := make([]int64, 0, len(orderIDs))
	var failed []entities.FailedOrder
	for _, id := range orderIDs {
		order, ok := byID[id]
		if !ok {
			failed = append(failed, entities.FailedOrder{OrderID: id, Reason: entities.FailOrderNotFound})
			continue
		}
		if !order.Status.Dispatchable() {
			failed = append(failed, entities.FailedOrder{OrderID: id, Reason: entities.FailInvalidStatus})
			continue
		}
		eligible = append(eligible, id)
	}
	return eligible, failed, nil
}

func dispatchAction(mode entities.CourierMode) entities.AuditAction {
	if mode == entities.ModeAPINew {
		return entities.ActionAPIDispatch
	}
	return entities.ActionDispatch
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	result := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
