package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/integrations/roomservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByRoomWithFilter(ctx context.Context, filter domain.RoomReservationsFilter) ([]*domain.Reservation, error)
}

// RoomServiceClient интерфейс клиента для RoomService
type RoomServiceClient interface {
	GetRoom(ctx context.Context, roomID int64) (*roomservice.Room, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
