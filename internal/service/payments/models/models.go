package models

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

// Request модели

// ConfirmPaymentRequest запрос на фиксацию подтверждения оплаты
type ConfirmPaymentRequest struct {
	ReservationID     int64     `json:"reservationId"`
	Provider          string    `json:"provider"`
	ProviderPaymentID string    `json:"providerPaymentId"`
	Amount            float64   `json:"amount"`
	ConfirmedAt       time.Time `json:"confirmedAt"`
}

// ToDomain конвертирует request в domain модель
func (r *ConfirmPaymentRequest) ToDomain() *domain.PaymentConfirmation {
	return &domain.PaymentConfirmation{
		ReservationID:     r.ReservationID,
		Provider:          r.Provider,
		ProviderPaymentID: r.ProviderPaymentID,
		Amount:            r.Amount,
		ConfirmedAt:       r.ConfirmedAt,
	}
}

// Response модели

// ConfirmationResponse ответ с данными подтверждения оплаты
type ConfirmationResponse struct {
	ID                int64     `json:"id"`
	ReservationID     int64     `json:"reservationId"`
	Provider          string    `json:"provider"`
	ProviderPaymentID string    `json:"providerPaymentId"`
	Amount            float64   `json:"amount"`
	ConfirmedAt       time.Time `json:"confirmedAt"`
	CreatedAt         time.Time `json:"createdAt"`
}

// FromDomainConfirmation конвертирует domain модель в DTO
func FromDomainConfirmation(c *domain.PaymentConfirmation) *ConfirmationResponse {
	if c == nil {
		return nil
	}

	return &ConfirmationResponse{
		ID:                c.ID,
		ReservationID:     c.ReservationID,
		Provider:          c.Provider,
		ProviderPaymentID: c.ProviderPaymentID,
		Amount:            c.Amount,
		ConfirmedAt:       c.ConfirmedAt,
		CreatedAt:         c.CreatedAt,
	}
}
