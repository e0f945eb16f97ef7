package domain

import "time"

// PaymentConfirmation запись о подтверждении оплаты от платёжного сервиса
// Хранится отдельно от бронирований: подтверждение брони и оплата
// фиксируются независимо, оплата не участвует в инвариантах реестра
type PaymentConfirmation struct {
	ID                int64
	ReservationID     int64
	Provider          string
	ProviderPaymentID string
	Amount            float64
	ConfirmedAt       time.Time
	CreatedAt         time.Time
}
