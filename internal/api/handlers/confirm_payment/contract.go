package confirm_payment

import (
	"context"

	"github.com/m04kA/SMC-RoomBookingService/internal/service/payments/models"
)

type PaymentService interface {
	Confirm(ctx context.Context, req *models.ConfirmPaymentRequest) (*models.ConfirmationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
