package utils

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomDateJSON(t *testing.T) {
	var d CustomDate
	require.NoError(t, json.Unmarshal([]byte(`"2026-07-15"`), &d))
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.July, d.Month())
	assert.Equal(t, 15, d.Day())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-07-15"`, string(out))
}

func TestCustomDateJSONNull(t *testing.T) {
	var d CustomDate
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `null`, string(out))
}

func TestCustomDateJSONRejectsTimestamp(t *testing.T) {
	var d CustomDate
	assert.Error(t, json.Unmarshal([]byte(`"2026-07-15T10:00:00Z"`), &d))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-12-31")
	require.NoError(t, err)
	assert.Equal(t, "2026-12-31", d.String())

	_, err = ParseDate("31/12/2026")
	assert.Error(t, err)
}

func TestCustomDateScan(t *testing.T) {
	var d CustomDate
	require.NoError(t, d.Scan("2026-07-15"))
	assert.Equal(t, "2026-07-15", d.String())

	require.NoError(t, d.Scan(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-01-02", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())
}

func TestDateOnly(t *testing.T) {
	d := DateOnly(time.Date(2026, 7, 15, 18, 45, 12, 0, time.UTC))
	assert.Equal(t, "2026-07-15", d.String())
	assert.Equal(t, 0, d.Hour())
}
