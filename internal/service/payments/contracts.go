package payments

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// PaymentRepository интерфейс репозитория подтверждений оплаты
type PaymentRepository interface {
	Create(ctx context.Context, confirmation *domain.PaymentConfirmation) (*domain.PaymentConfirmation, error)
	GetByReservationID(ctx context.Context, reservationID int64) (*domain.PaymentConfirmation, error)
}

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
