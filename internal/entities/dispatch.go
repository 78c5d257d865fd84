package entities

// DispatchResult is returned by a single-order dispatch: the updated
// order row plus the tracking number it now holds.
type DispatchResult struct {
	Order          *Order
	TrackingNumber string
	CourierID      int64
	Mode           CourierMode
}

type FailReason string

const (
	FailInvalidStatus   FailReason = "invalid_status"
	FailNoTracking      FailReason = "no_tracking"
	FailOrderNotFound   FailReason = "order_not_found"
	FailRemoteShortfall FailReason = "remote_shortfall"
)

type FailedOrder struct {
	OrderID int64
	Reason  FailReason
}

// BatchDispatchResult reports per-order outcomes. Assignments preserves
// submission order: the first eligible order got the first number.
type BatchDispatchResult struct {
	DispatchedOrderIDs []int64
	Failed             []FailedOrder
	Assignments        map[int64]string
	CourierID          int64
	Mode               CourierMode
}
