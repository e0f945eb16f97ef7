package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64            // ID аккаунта
	RoomID    int64            // ID переговорной
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала слота (например, "10:00")
	EndTime   types.TimeString // Время конца слота (например, "11:00")
	Notes     *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64            // ID созданного бронирования
	UserID    int64            // ID аккаунта
	RoomID    int64            // ID переговорной
	Date      time.Time        // Дата бронирования
	StartTime types.TimeString // Время начала
	EndTime   types.TimeString // Время конца
	Status    string           // Статус бронирования

	// Денормализованные данные
	RoomName    string  // Название переговорной
	HourlyPrice float64 // Цена за час
	Notes       *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
