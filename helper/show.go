package helper

import (
	"park_manager/constants"
	"time"
)

// CalculateShowStatus derives a show's status from its time range.
func CalculateShowStatus(start, end, now time.Time) string {
	switch {
	case now.Before(start):
		return constants.SHOW_SCHEDULED
	case now.After(end):
		return constants.SHOW_FINISHED
	default:
		return constants.SHOW_ONGOING
	}
}
