package get_availability

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Request модель запроса на получение сетки доступности
type Request struct {
	RoomID int64     // ID переговорной
	Date   time.Time // Дата, на которую запрашивается сетка (без времени)
	UserID *int64    // ID запрашивающего аккаунта; nil для анонимного запроса
}

// Response модель ответа с почасовой сеткой доступности
type Response struct {
	RoomID   int64     // ID переговорной
	RoomName string    // Название переговорной
	Date     time.Time // Дата, на которую построена сетка
	Slots    []Slot    // Почасовая сетка со статусами
}

// Slot один час сетки доступности
type Slot struct {
	StartTime types.TimeString          // Время начала слота (например, "10:00")
	EndTime   types.TimeString          // Время конца слота
	Status    domain.AvailabilityStatus // Статус слота
}
