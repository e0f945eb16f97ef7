package domain

// AvailabilityStatus derived classification of a slot for a given viewer
// Вычисляется на каждый запрос, никогда не сохраняется
type AvailabilityStatus string

const (
	// SlotAvailable слот свободен для бронирования
	SlotAvailable AvailabilityStatus = "available"
	// SlotBooked слот занят другим пользователем
	SlotBooked AvailabilityStatus = "booked"
	// SlotUserBooking слот занят бронированием самого запрашивающего
	SlotUserBooking AvailabilityStatus = "user_booking"
	// SlotClosed слот вне часов работы, в выходной или в прошлом
	SlotClosed AvailabilityStatus = "closed"
)

// AvailabilitySlot один слот почасовой сетки с его статусом
type AvailabilitySlot struct {
	Slot   TimeSlot
	Status AvailabilityStatus
}
