package entities

import "time"

type TrackingNumber struct {
	ID        int64
	CourierID int64
	Value     string
	State     TrackingStateType
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TrackingStateType string

const (
	TrackingUnused TrackingStateType = "unused"
	TrackingUsed   TrackingStateType = "used"
)

func (s TrackingStateType) String() string {
	return string(s)
}
