package courier

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCourierID      = errors.New("invalid courier id")
	ErrInvalidName           = errors.New("invalid name")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidMode           = errors.New("invalid courier mode")
	ErrInvalidReturnFee      = errors.New("invalid return fee percent")
	ErrCredentialsRequired   = errors.New("api credentials required for this mode")

	ErrCourierNotFound = errors.New("courier not found")
	ErrNoCandidate     = errors.New("no active courier configured for dispatch")
	ErrConflict        = errors.New("resource already exists")
)
