package create_reservation

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/integrations/roomservice"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Проверяем слот: форматы времени и инвариант end > start
	slot := domain.TimeSlot{StartTime: req.StartTime, EndTime: req.EndTime}
	if err := slot.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	}

	// Бронирования начинаются и заканчиваются строго на границе часа
	if err := validateOnTheHour(req.StartTime); err != nil {
		return err
	}
	if err := validateOnTheHour(req.EndTime); err != nil {
		return err
	}

	// Проверяем длину заметок
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateOnTheHour проверяет, что время попадает на границу часа
func validateOnTheHour(t types.TimeString) error {
	minutes, err := t.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	}
	if minutes%domain.SlotDurationMinutes != 0 {
		return fmt.Errorf("%w: %s is not aligned to the hour", ErrInvalidSlot, t)
	}
	return nil
}

// validateSlotTiming проверяет, что дата и слот не в прошлом
// Для сегодняшней даты действует консервативная отсечка: слот,
// начинающийся в текущем часу или раньше, недоступен
func validateSlotTiming(date time.Time, startTime types.TimeString, now time.Time) error {
	if domain.IsDateInPast(date, now) {
		return ErrInvalidDate
	}

	if domain.IsPastSlot(date, startTime, now) {
		return ErrPastSlot
	}

	return nil
}

// validateOperatingWindow проверяет, что слот попадает в часы работы переговорной
// Если RoomService не вернул расписание на день, действует политика по
// умолчанию: 09:00-18:00 по будням
func validateOperatingWindow(room *roomservice.Room, date time.Time, slot domain.TimeSlot) error {
	schedule := scheduleOrDefault(room, date)
	if !schedule.IsOpen {
		return ErrRoomClosed
	}

	openTime, err := types.NewTimeStringFromString(*schedule.OpenTime)
	if err != nil {
		return fmt.Errorf("%w: invalid open time from RoomService: %v", ErrInternal, err)
	}
	closeTime, err := types.NewTimeStringFromString(*schedule.CloseTime)
	if err != nil {
		return fmt.Errorf("%w: invalid close time from RoomService: %v", ErrInternal, err)
	}

	if slot.StartTime.IsBefore(openTime) || slot.EndTime.IsAfter(closeTime) {
		return ErrOutsideOperatingHours
	}

	return nil
}

// scheduleOrDefault возвращает расписание переговорной на день
// Переговорная без явного расписания работает по политике по умолчанию:
// будни 09:00-18:00, суббота и воскресенье закрыты
func scheduleOrDefault(room *roomservice.Room, date time.Time) roomservice.DaySchedule {
	schedule := room.ScheduleForDay(date.Weekday())

	// Явное расписание имеет приоритет
	if schedule.IsOpen && schedule.OpenTime != nil && schedule.CloseTime != nil {
		return schedule
	}
	if schedule.IsOpen {
		// IsOpen без границ - некорректные данные, подставляем дефолтные часы
		open, close := domain.DefaultOpenTime, domain.DefaultCloseTime
		return roomservice.DaySchedule{IsOpen: true, OpenTime: &open, CloseTime: &close}
	}

	// Закрытый день без расписания вовсе: различаем "расписания нет"
	// (все дни пустые) и "в этот день закрыто"
	if hasExplicitSchedule(room) {
		return roomservice.DaySchedule{IsOpen: false}
	}

	if !domain.IsOperatingDay(date) {
		return roomservice.DaySchedule{IsOpen: false}
	}

	open, close := domain.DefaultOpenTime, domain.DefaultCloseTime
	return roomservice.DaySchedule{IsOpen: true, OpenTime: &open, CloseTime: &close}
}

// hasExplicitSchedule возвращает true, если RoomService вернул хотя бы
// один открытый день
func hasExplicitSchedule(room *roomservice.Room) bool {
	week := room.WorkingHours
	for _, day := range []roomservice.DaySchedule{
		week.Monday, week.Tuesday, week.Wednesday, week.Thursday,
		week.Friday, week.Saturday, week.Sunday,
	} {
		if day.IsOpen {
			return true
		}
	}
	return false
}
