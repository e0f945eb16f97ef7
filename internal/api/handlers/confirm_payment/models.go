package confirm_payment

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/service/payments/models"
)

// ConfirmPaymentRequest HTTP request model
// Запрос приходит от платёжного сервиса после успешной оплаты
type ConfirmPaymentRequest struct {
	ReservationID     int64   `json:"reservationId"`
	Provider          string  `json:"provider"`
	ProviderPaymentID string  `json:"providerPaymentId"`
	Amount            float64 `json:"amount"`
	ConfirmedAt       string  `json:"confirmedAt"` // ISO 8601
}

// ConfirmationResponse HTTP response model
type ConfirmationResponse struct {
	ID                int64   `json:"id"`
	ReservationID     int64   `json:"reservationId"`
	Provider          string  `json:"provider"`
	ProviderPaymentID string  `json:"providerPaymentId"`
	Amount            float64 `json:"amount"`
	ConfirmedAt       string  `json:"confirmedAt"`
	CreatedAt         string  `json:"createdAt"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *ConfirmPaymentRequest) ToServiceRequest() (*models.ConfirmPaymentRequest, error) {
	confirmedAt, err := time.Parse(time.RFC3339, r.ConfirmedAt)
	if err != nil {
		return nil, err
	}

	return &models.ConfirmPaymentRequest{
		ReservationID:     r.ReservationID,
		Provider:          r.Provider,
		ProviderPaymentID: r.ProviderPaymentID,
		Amount:            r.Amount,
		ConfirmedAt:       confirmedAt,
	}, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.ConfirmationResponse) *ConfirmationResponse {
	return &ConfirmationResponse{
		ID:                resp.ID,
		ReservationID:     resp.ReservationID,
		Provider:          resp.Provider,
		ProviderPaymentID: resp.ProviderPaymentID,
		Amount:            resp.Amount,
		ConfirmedAt:       resp.ConfirmedAt.Format(time.RFC3339),
		CreatedAt:         resp.CreatedAt.Format(time.RFC3339),
	}
}
