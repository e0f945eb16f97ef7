package create_reservation

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/integrations/roomservice"
	"github.com/m04kA/SMC-RoomBookingService/internal/integrations/userservice"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	// CreateIfNoConflict атомарно проверяет отсутствие пересечений и вставляет
	// бронирование; вызывается внутри сериализуемой транзакции
	CreateIfNoConflict(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// RoomServiceClient интерфейс клиента для RoomService
type RoomServiceClient interface {
	GetRoom(ctx context.Context, roomID int64) (*roomservice.Room, error)
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*userservice.User, error)
}

// DocumentServiceClient интерфейс клиента для DocumentService
type DocumentServiceClient interface {
	GetDocumentationStatus(ctx context.Context, userID int64) (string, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
