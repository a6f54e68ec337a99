package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_Scan(t *testing.T) {
	var d Date

	require.NoError(t, d.Scan(time.Date(2030, 1, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, Date("2030-01-15"), d)

	require.NoError(t, d.Scan("2030-02-01"))
	assert.Equal(t, Date("2030-02-01"), d)

	require.NoError(t, d.Scan([]byte("2030-03-01T00:00:00Z")))
	assert.Equal(t, Date("2030-03-01"), d)

	require.NoError(t, d.Scan(nil))
	assert.Equal(t, Date(""), d)

	assert.Error(t, d.Scan(42))

	v, err := Date("2030-01-15").Value()
	require.NoError(t, err)
	assert.Equal(t, "2030-01-15", v)
}

func TestTimeOfDay_Scan(t *testing.T) {
	var tod TimeOfDay

	require.NoError(t, tod.Scan(time.Date(0, 1, 1, 14, 30, 0, 0, time.UTC)))
	assert.Equal(t, TimeOfDay("14:30"), tod)

	require.NoError(t, tod.Scan("09:05"))
	assert.Equal(t, TimeOfDay("09:05"), tod)

	assert.Error(t, tod.Scan(3.5))
}
