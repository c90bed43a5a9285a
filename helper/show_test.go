package helper

import (
	"park_manager/constants"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateShowStatus(t *testing.T) {
	start := time.Date(2026, 7, 15, 18, 0, 0, 0, time.UTC)
	end := time.Date(2026, 7, 15, 19, 30, 0, 0, time.UTC)

	assert.Equal(t, constants.SHOW_SCHEDULED, CalculateShowStatus(start, end, start.Add(-time.Hour)))
	assert.Equal(t, constants.SHOW_ONGOING, CalculateShowStatus(start, end, start))
	assert.Equal(t, constants.SHOW_ONGOING, CalculateShowStatus(start, end, start.Add(45*time.Minute)))
	assert.Equal(t, constants.SHOW_ONGOING, CalculateShowStatus(start, end, end))
	assert.Equal(t, constants.SHOW_FINISHED, CalculateShowStatus(start, end, end.Add(time.Second)))
}
