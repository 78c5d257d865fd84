package allocator

import (
	"errors"
	"fmt"
)

var (
	ErrNoTrackingAvailable  = errors.New("no tracking numbers available")
	ErrInsufficientTracking = errors.New("insufficient tracking numbers")
	ErrPreviewUnavailable   = errors.New("preview unavailable for courier mode")
	ErrRemoteAPI            = errors.New("courier api request failed")
	ErrMissingCredentials   = errors.New("courier api credentials missing")
	ErrUnsupportedMode      = errors.New("courier mode does not support allocation")
)

// InsufficientTrackingError carries how many numbers the pool actually
// held, so batch callers can report "only N of M available".
type InsufficientTrackingError struct {
	Available int
	Requested int
}

func (e *InsufficientTrackingError) Error() string {
	return fmt.Sprintf("insufficient tracking numbers: available=%d, requested=%d", e.Available, e.Requested)
}

func (e *InsufficientTrackingError) Is(target error) bool {
	return target == ErrInsufficientTracking
}
