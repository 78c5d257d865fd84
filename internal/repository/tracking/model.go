package tracking

import "time"

type TrackingDB struct {
	ID        int64
	CourierID int64
	Value     string
	State     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
