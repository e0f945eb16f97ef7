package domain

// Default booking policy values
const (
	// SlotDurationMinutes длительность одного слота - бронирования всегда начинаются в начале часа
	SlotDurationMinutes = 60

	// DefaultOpenTime / DefaultCloseTime часы работы переговорной по умолчанию,
	// если RoomService не вернул расписание
	DefaultOpenTime  = "09:00"
	DefaultCloseTime = "18:00"
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных бронирований
// Неактивные бронирования не участвуют в проверке конфликтов и расчёте доступности
var InactiveStatuses = []ReservationStatus{
	StatusCancelledByUser,
	StatusCancelledByAdmin,
}

// ActiveStatuses список статусов активных бронирований
var ActiveStatuses = []ReservationStatus{
	StatusConfirmed,
}
