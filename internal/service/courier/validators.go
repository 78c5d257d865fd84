package courier

import (
	"strings"

	"backoffice/internal/entities"
)

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidStatus(status string) bool {
	switch status {
	case "active", "inactive":
		return true
	default:
		return false
	}
}

func isValidMode(mode entities.CourierMode) bool {
	switch mode {
	case entities.ModeNone, entities.ModeInternalPool, entities.ModeAPINew, entities.ModeAPIExisting:
		return true
	default:
		return false
	}
}

func isValidReturnFee(percent float64) bool {
	return percent >= 0 && percent <= 100
}
