package get_availability

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/integrations/roomservice"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// dayWindow окно работы переговорной на один день
type dayWindow struct {
	isOpen    bool
	openTime  types.TimeString
	closeTime types.TimeString
}

// resolveDayWindow возвращает окно работы переговорной на указанную дату
// Явное расписание из RoomService имеет приоритет; переговорная без
// расписания работает по политике по умолчанию: будни 09:00-18:00
func resolveDayWindow(room *roomservice.Room, date time.Time) (dayWindow, error) {
	schedule := room.ScheduleForDay(date.Weekday())

	if schedule.IsOpen && schedule.OpenTime != nil && schedule.CloseTime != nil {
		openTime, err := types.NewTimeStringFromString(*schedule.OpenTime)
		if err != nil {
			return dayWindow{}, err
		}
		closeTime, err := types.NewTimeStringFromString(*schedule.CloseTime)
		if err != nil {
			return dayWindow{}, err
		}
		return dayWindow{isOpen: true, openTime: openTime, closeTime: closeTime}, nil
	}

	defaultWindow := dayWindow{
		openTime:  types.TimeString(domain.DefaultOpenTime),
		closeTime: types.TimeString(domain.DefaultCloseTime),
	}

	// У переговорной есть явное расписание, и в этот день она закрыта:
	// сетка строится по дефолтному окну, все слоты получат статус closed
	if hasExplicitSchedule(room) {
		return defaultWindow, nil
	}

	defaultWindow.isOpen = domain.IsOperatingDay(date)
	return defaultWindow, nil
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

// generateSlotGrid генерирует почасовую сетку слотов внутри окна работы
func generateSlotGrid(window dayWindow) ([]domain.TimeSlot, error) {
	slots := make([]domain.TimeSlot, 0)
	current := window.openTime

	for current.IsBefore(window.closeTime) {
		slotEnd, err := current.AddMinutes(domain.SlotDurationMinutes)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(window.closeTime) {
			break
		}

		slots = append(slots, domain.TimeSlot{StartTime: current, EndTime: slotEnd})
		current = slotEnd
	}

	return slots, nil
}

// computeSlotStatuses вычисляет статус каждого слота сетки
//
// Порядок приоритета статусов фиксирован:
//  1. closed - день закрыт, либо слот уже в прошлом
//  2. user_booking - слот пересекается с подтверждённым бронированием
//     запрашивающего аккаунта
//  3. booked - слот пересекается с чужим подтверждённым бронированием
//  4. available - иначе
//
// Отменённые бронирования в расчёте не участвуют. Для анонимного запроса
// (userID = nil) статус user_booking не возникает: собственные брони
// неотличимы от чужих
func computeSlotStatuses(
	grid []domain.TimeSlot,
	date time.Time,
	reservations []*domain.Reservation,
	userID *int64,
	now time.Time,
	dayOpen bool,
) []Slot {
	result := make([]Slot, len(grid))

	for i, slot := range grid {
		result[i] = Slot{
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
			Status:    slotStatus(slot, date, reservations, userID, now, dayOpen),
		}
	}

	return result
}

func slotStatus(
	slot domain.TimeSlot,
	date time.Time,
	reservations []*domain.Reservation,
	userID *int64,
	now time.Time,
	dayOpen bool,
) domain.AvailabilityStatus {
	if !dayOpen || domain.IsPastSlot(date, slot.StartTime, now) {
		return domain.SlotClosed
	}

	booked := false
	for _, res := range reservations {
		// Только подтверждённые бронирования занимают слот
		if !res.IsActive() {
			continue
		}
		if !slot.Overlaps(res.Slot()) {
			continue
		}
		if userID != nil && res.UserID == *userID {
			return domain.SlotUserBooking
		}
		booked = true
	}

	if booked {
		return domain.SlotBooked
	}
	return domain.SlotAvailable
}
