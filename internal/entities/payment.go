package entities

import "time"

type Payment struct {
	ID             int64
	OrderID        int64
	Amount         int64
	Method         string
	Payer          string
	PaidAt         time.Time
	ProofReference *string
	CreatedAt      time.Time
}

// PaymentDetails is the caller-supplied part of a payment; the row itself
// is created by the mark-paid transition.
type PaymentDetails struct {
	Amount         int64
	Method         string
	Payer          string
	PaidAt         time.Time
	ProofReference *string
}
