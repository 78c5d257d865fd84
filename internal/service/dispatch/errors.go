package dispatch

import "errors"

var (
	ErrInvalidStatus      = errors.New("order status does not allow this transition")
	ErrOrderNotFound      = errors.New("order not found")
	ErrAlreadyPaid        = errors.New("order already marked paid")
	ErrCourierInactive    = errors.New("courier is not active")
	ErrNoDispatchCourier  = errors.New("no courier configured for dispatch")
	ErrReasonTooShort     = errors.New("reason text too short")
	ErrCallReasonTooShort = errors.New("call status reason too short")
	ErrEmptyBatch         = errors.New("empty order batch")
	ErrInvalidOrderID     = errors.New("invalid order id")
)
