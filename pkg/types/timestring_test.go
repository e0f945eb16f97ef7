package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	tests := []struct {
		value   string
		wantErr bool
	}{
		{"00:00", false},
		{"09:00", false},
		{"23:59", false},
		{"24:00", true},
		{"9:00", true},
		{"10:60", true},
		{"10-00", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			err := TimeString(tt.value).Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeFormat)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	minutes, err := TimeString("10:30").Minutes()

	require.NoError(t, err)
	assert.Equal(t, 630, minutes)
}

func TestTimeString_AddMinutes(t *testing.T) {
	next, err := TimeString("09:00").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:00"), next)

	// Выход за пределы суток
	_, err = TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("18:00").IsAfter("09:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// Колонки TIME приходят из БД с секундами
	require.NoError(t, ts.Scan("10:00:00"))
	assert.Equal(t, TimeString("10:00"), ts)

	require.NoError(t, ts.Scan([]byte("18:30:00")))
	assert.Equal(t, TimeString("18:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 10, 13, 9, 15, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("09:15"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	value, err := TimeString("10:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "10:00", value)

	value, err = TimeString("").Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	_, err = TimeString("25:00").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}
