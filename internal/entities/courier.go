package entities

import "time"

type Courier struct {
	ID               int64
	Name             string
	Status           CourierStatusType
	Mode             CourierMode
	APIClientID      *string
	APIKey           *string
	ReturnFeePercent float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type CourierStatusType string

const (
	CourierActive   CourierStatusType = "active"
	CourierInactive CourierStatusType = "inactive"
)

const DefaultStatusType = CourierActive

func (t CourierStatusType) String() string {
	return string(t)
}

// CourierMode is the integration capability of a courier. The numeric
// order is load-bearing: dispatch candidate selection prefers the lowest
// configured mode, so local pool allocation wins over remote API calls.
type CourierMode int

const (
	ModeNone         CourierMode = 0
	ModeInternalPool CourierMode = 1
	ModeAPINew       CourierMode = 2
	ModeAPIExisting  CourierMode = 3
)

func (m CourierMode) String() string {
	switch m {
	case ModeInternalPool:
		return "internal_pool"
	case ModeAPINew:
		return "api_new"
	case ModeAPIExisting:
		return "api_existing"
	default:
		return "none"
	}
}

// CourierModeFromString parses the transport representation of a mode.
func CourierModeFromString(s string) (CourierMode, bool) {
	switch s {
	case "none":
		return ModeNone, true
	case "internal_pool":
		return ModeInternalPool, true
	case "api_new":
		return ModeAPINew, true
	case "api_existing":
		return ModeAPIExisting, true
	default:
		return ModeNone, false
	}
}

// PoolBacked reports whether tracking numbers for this mode are drawn
// from the local tracking table.
func (m CourierMode) PoolBacked() bool {
	return m == ModeInternalPool || m == ModeAPIExisting
}

func (m CourierMode) RequiresCredentials() bool {
	return m == ModeAPINew || m == ModeAPIExisting
}

type CourierCapabilities struct {
	SupportsNewParcelAPI      bool
	SupportsExistingParcelAPI bool
}

type CourierModify struct {
	ID               *int64
	Name             *string
	Status           *CourierStatusType
	Mode             *CourierMode
	APIClientID      *string
	APIKey           *string
	ReturnFeePercent *float64
}

// CourierCredentials is what the remote parcel API gateway needs to
// authenticate a call. Never logged in full.
type CourierCredentials struct {
	ClientID string
	APIKey   string
}
