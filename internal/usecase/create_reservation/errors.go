package create_reservation

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

var (
	// ErrRoomNotFound возвращается, когда переговорная не найдена
	ErrRoomNotFound = errors.New("create_reservation: room not found")

	// ErrUserNotFound возвращается, когда аккаунт не найден
	ErrUserNotFound = errors.New("create_reservation: user not found")

	// ErrNotEligible возвращается, когда аккаунт не имеет права бронировать
	// (документы не подтверждены); см. NotEligibleError
	ErrNotEligible = errors.New("create_reservation: account is not eligible to book")

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrPastSlot возвращается, когда слот на сегодняшнюю дату уже недоступен
	// (час начала меньше либо равен текущему часу)
	ErrPastSlot = errors.New("create_reservation: slot start is in the past")

	// ErrInvalidSlot возвращается при некорректном слоте
	// (конец не позже начала, время не на границе часа)
	ErrInvalidSlot = errors.New("create_reservation: invalid time slot")

	// ErrRoomClosed возвращается, когда переговорная закрыта в указанную дату
	ErrRoomClosed = errors.New("create_reservation: room is closed on this date")

	// ErrOutsideOperatingHours возвращается, когда слот выходит за часы работы
	ErrOutsideOperatingHours = errors.New("create_reservation: slot is outside operating hours")

	// ErrSlotNotAvailable возвращается, когда слот пересекается с существующим
	// подтверждённым бронированием. Легитимный исход конкурентного спроса,
	// не сбой: вызывающая сторона перезапрашивает доступность и выбирает
	// другой слот
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)

// NotEligibleError ошибка отказа в праве бронирования с деталью причины
// Detail различает "документы не загружены", "ожидают проверки" и "отклонены",
// чтобы вызывающая сторона могла показать понятное действие пользователю
type NotEligibleError struct {
	Reason domain.IneligibilityReason
	Detail domain.DocumentationStatus
}

// Error реализует интерфейс error
func (e *NotEligibleError) Error() string {
	return fmt.Sprintf("%v: reason=%s, documentation_status=%s", ErrNotEligible, e.Reason, e.Detail)
}

// Unwrap позволяет errors.Is(err, ErrNotEligible)
func (e *NotEligibleError) Unwrap() error {
	return ErrNotEligible
}
