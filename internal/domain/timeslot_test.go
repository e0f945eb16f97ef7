package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

func slot(start, end string) TimeSlot {
	return TimeSlot{
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func TestTimeSlot_Validate(t *testing.T) {
	tests := []struct {
		name    string
		slot    TimeSlot
		wantErr bool
	}{
		{name: "корректный слот", slot: slot("10:00", "11:00"), wantErr: false},
		{name: "многочасовой слот", slot: slot("09:00", "12:00"), wantErr: false},
		{name: "конец равен началу", slot: slot("10:00", "10:00"), wantErr: true},
		{name: "конец раньше начала", slot: slot("11:00", "10:00"), wantErr: true},
		{name: "некорректный формат начала", slot: slot("25:00", "11:00"), wantErr: true},
		{name: "некорректный формат конца", slot: slot("10:00", "9h30"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.slot.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeSlot)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestTimeSlot_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    TimeSlot
		b    TimeSlot
		want bool
	}{
		{name: "полное совпадение", a: slot("10:00", "11:00"), b: slot("10:00", "11:00"), want: true},
		{name: "частичное пересечение", a: slot("10:00", "12:00"), b: slot("11:00", "13:00"), want: true},
		{name: "один слот внутри другого", a: slot("09:00", "13:00"), b: slot("10:00", "11:00"), want: true},
		{name: "граничат справа - не пересекаются", a: slot("10:00", "11:00"), b: slot("11:00", "12:00"), want: false},
		{name: "граничат слева - не пересекаются", a: slot("11:00", "12:00"), b: slot("10:00", "11:00"), want: false},
		{name: "не соприкасаются", a: slot("09:00", "10:00"), b: slot("14:00", "15:00"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestIsPastSlot(t *testing.T) {
	// Среда, 14:30
	now := time.Date(2025, 10, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		date      time.Time
		startTime types.TimeString
		want      bool
	}{
		{
			name:      "вчерашняя дата",
			date:      time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC),
			startTime: types.TimeString("10:00"),
			want:      true,
		},
		{
			name:      "завтрашняя дата",
			date:      time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC),
			startTime: types.TimeString("09:00"),
			want:      false,
		},
		{
			name:      "сегодня, час начала раньше текущего",
			date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
			startTime: types.TimeString("13:00"),
			want:      true,
		},
		{
			// Слот текущего часа недоступен, даже если час ещё не закончился
			name:      "сегодня, час начала равен текущему",
			date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
			startTime: types.TimeString("14:00"),
			want:      true,
		},
		{
			name:      "сегодня, час начала следующий",
			date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
			startTime: types.TimeString("15:00"),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPastSlot(tt.date, tt.startTime, now))
		})
	}
}

func TestIsOperatingDay(t *testing.T) {
	// 2025-10-13 - понедельник
	monday := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		assert.True(t, IsOperatingDay(monday.AddDate(0, 0, i)), "будний день %d", i)
	}

	saturday := monday.AddDate(0, 0, 5)
	sunday := monday.AddDate(0, 0, 6)
	assert.False(t, IsOperatingDay(saturday))
	assert.False(t, IsOperatingDay(sunday))
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2025, 10, 15, 23, 59, 0, 0, time.UTC)

	assert.True(t, IsDateInPast(time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC), now))
	// Сегодняшняя дата не считается прошедшей независимо от времени
	assert.False(t, IsDateInPast(time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsDateInPast(time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC), now))
}
