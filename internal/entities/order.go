package entities

import "time"

type Order struct {
	ID             int64
	Status         OrderStatusType
	Interface      OrderInterfaceType
	CustomerID     int64
	TotalAmount    int64
	Currency       string
	PayStatus      PayStatusType
	TrackingNumber *string
	CourierID      *int64
	CallLog        bool
	DispatchNotes  *string
	CancelReason   *string
	CreatedBy      int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type OrderStatusType string

const (
	OrderPending        OrderStatusType = "pending"
	OrderDispatch       OrderStatusType = "dispatch"
	OrderDone           OrderStatusType = "done"
	OrderCancel         OrderStatusType = "cancel"
	OrderReturnComplete OrderStatusType = "return_complete"
	OrderReturnHandover OrderStatusType = "return_handover"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// IsTerminal: terminal statuses admit no further transition, cancellation included.
func (s OrderStatusType) IsTerminal() bool {
	return s == OrderCancel || s == OrderReturnHandover
}

// Dispatchable reports whether an order may receive a tracking number.
// "done" stays dispatchable to cover re-dispatch of completed orders.
func (s OrderStatusType) Dispatchable() bool {
	return s == OrderPending || s == OrderDone
}

type OrderInterfaceType string

const (
	OrderInterfaceIndividual OrderInterfaceType = "individual"
	OrderInterfaceLeads      OrderInterfaceType = "leads"
)

func (t OrderInterfaceType) String() string {
	return string(t)
}

type PayStatusType string

const (
	PayStatusUnpaid  PayStatusType = "unpaid"
	PayStatusPartial PayStatusType = "partial"
	PayStatusPaid    PayStatusType = "paid"
)

func (s PayStatusType) String() string {
	return string(s)
}

type OrderModify struct {
	ID             *int64
	Status         *OrderStatusType
	PayStatus      *PayStatusType
	TrackingNumber *string
	CourierID      *int64
	CallLog        *bool
	DispatchNotes  *string
	CancelReason   *string
}

// OrderFilter drives the list pages. Every field is bound as a query
// parameter, never interpolated into SQL.
type OrderFilter struct {
	Status         *OrderStatusType
	PayStatus      *PayStatusType
	CustomerID     *int64
	TrackingNumber *string
	CreatedBy      *int64
	Limit          uint64
	Offset         uint64
}
