package dispatch

import (
	"strings"
	"unicode/utf8"
)

const (
	minCancelReasonLen = 10
	minCallReasonLen   = 5
)

func isValidCancelReason(reason string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(reason)) >= minCancelReasonLen
}

func isValidCallReason(reason string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(reason)) >= minCallReasonLen
}

func isValidOrderID(id int64) bool {
	return id > 0
}
