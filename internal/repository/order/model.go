package order

import "time"

type OrderDB struct {
	ID             int64
	Status         string
	Interface      string
	CustomerID     int64
	TotalAmount    int64
	Currency       string
	PayStatus      string
	TrackingNumber *string
	CourierID      *int64
	CallLog        bool
	DispatchNotes  *string
	CancelReason   *string
	CreatedBy      int64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type OrderModifyDB struct {
	ID             *int64
	Status         *string
	PayStatus      *string
	TrackingNumber *string
	CourierID      *int64
	CallLog        *bool
	DispatchNotes  *string
	CancelReason   *string
}
