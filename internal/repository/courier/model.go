package courier

import "time"

type CourierDB struct {
	ID               int64
	Name             string
	Status           string
	Mode             int
	APIClientID      *string
	APIKey           *string
	ReturnFeePercent float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type CourierModifyDB struct {
	ID               *int64
	Name             *string
	Status           *string
	Mode             *int
	APIClientID      *string
	APIKey           *string
	ReturnFeePercent *float64
}
