package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

var (
	// ErrInvalidTimeSlot возвращается, когда конец слота не позже начала
	ErrInvalidTimeSlot = errors.New("domain: slot end must be after start")
)

// TimeSlot represents a half-open time interval [StartTime, EndTime)
// on a single calendar date
type TimeSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}

// Validate проверяет форматы времени и инвариант EndTime > StartTime
func (s TimeSlot) Validate() error {
	if err := s.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: start time: %v", ErrInvalidTimeSlot, err)
	}
	if err := s.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: end time: %v", ErrInvalidTimeSlot, err)
	}
	if !s.EndTime.IsAfter(s.StartTime) {
		return ErrInvalidTimeSlot
	}
	return nil
}

// Overlaps returns true if two half-open intervals actually overlap.
// Граничные случаи пересечением не считаются: слот, заканчивающийся ровно там,
// где начинается другой, НЕ конфликтует с ним.
//
// Примеры:
// - [11:00, 12:00) и [11:30, 13:00) → пересекаются
// - [11:00, 12:00) и [12:00, 13:00) → НЕ пересекаются (граничат)
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return s.StartTime.IsBefore(other.EndTime) && other.StartTime.IsBefore(s.EndTime)
}

// IsPastSlot returns true if a slot starting at startTime on date is
// no longer bookable relative to now.
//
// Для сегодняшней даты слот считается прошедшим, если его час начала
// меньше ЛИБО РАВЕН текущему часу. Слот, начавшийся в текущем часу,
// недоступен, даже если большая часть часа ещё впереди - граница
// сохранена как в действующей политике, не "исправлять".
func IsPastSlot(date time.Time, startTime types.TimeString, now time.Time) bool {
	if IsDateInPast(date, now) {
		return true
	}
	if !IsSameDay(date, now) {
		return false
	}

	hour, err := startTime.Hour()
	if err != nil {
		// Некорректное время трактуем как недоступное
		return true
	}
	return hour <= now.Hour()
}

// IsOperatingDay returns true for working days (Mon-Fri)
// Суббота и воскресенье закрыты для бронирования
func IsOperatingDay(date time.Time) bool {
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	default:
		return true
	}
}

// IsSameDay проверяет, что две даты относятся к одному и тому же дню
func IsSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func IsDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
