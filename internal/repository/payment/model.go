package payment

import "time"

type PaymentDB struct {
	ID             int64
	OrderID        int64
	Amount         int64
	Method         string
	Payer          string
	PaidAt         time.Time
	ProofReference *string
	CreatedAt      time.Time
}
