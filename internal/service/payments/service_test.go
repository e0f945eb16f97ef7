package payments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	paymentRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/payment"
	reservationRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/payments/models"
)

// Тестовые фейки

type fakePaymentRepo struct {
	created []*domain.PaymentConfirmation
	nextID  int64
}

func (r *fakePaymentRepo) Create(_ context.Context, confirmation *domain.PaymentConfirmation) (*domain.PaymentConfirmation, error) {
	// Повторное подтверждение той же оплаты провайдера
	for _, existing := range r.created {
		if existing.Provider == confirmation.Provider && existing.ProviderPaymentID == confirmation.ProviderPaymentID {
			return nil, paymentRepo.ErrDuplicateConfirmation
		}
	}

	r.nextID++
	stored := *confirmation
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	r.created = append(r.created, &stored)
	return &stored, nil
}

func (r *fakePaymentRepo) GetByReservationID(_ context.Context, reservationID int64) (*domain.PaymentConfirmation, error) {
	for _, existing := range r.created {
		if existing.ReservationID == reservationID {
			return existing, nil
		}
	}
	return nil, paymentRepo.ErrConfirmationNotFound
}

type fakeReservationRepo struct {
	existingID int64
}

func (r *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	if id != r.existingID {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return &domain.Reservation{ID: id, Status: domain.StatusConfirmed}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Окружение теста

func testRequest() *models.ConfirmPaymentRequest {
	return &models.ConfirmPaymentRequest{
		ReservationID:     10,
		Provider:          "yookassa",
		ProviderPaymentID: "pay-123",
		Amount:            1500,
		ConfirmedAt:       time.Date(2025, 10, 13, 12, 30, 0, 0, time.UTC),
	}
}

func newService() (*Service, *fakePaymentRepo) {
	payments := &fakePaymentRepo{}
	reservations := &fakeReservationRepo{existingID: 10}
	return NewService(payments, reservations, nopLogger{}), payments
}

// Тесты

func TestConfirm_Success(t *testing.T) {
	svc, payments := newService()

	result, err := svc.Confirm(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ID)
	assert.Equal(t, int64(10), result.ReservationID)
	assert.Equal(t, "yookassa", result.Provider)
	assert.Len(t, payments.created, 1)
}

func TestConfirm_Duplicate(t *testing.T) {
	svc, payments := newService()

	_, err := svc.Confirm(context.Background(), testRequest())
	require.NoError(t, err)

	_, err = svc.Confirm(context.Background(), testRequest())

	assert.ErrorIs(t, err, ErrDuplicateConfirmation)
	assert.Len(t, payments.created, 1)
}

func TestConfirm_ReservationNotFound(t *testing.T) {
	svc, payments := newService()

	req := testRequest()
	req.ReservationID = 999

	_, err := svc.Confirm(context.Background(), req)

	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.Empty(t, payments.created)
}

func TestConfirm_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.ConfirmPaymentRequest)
	}{
		{
			name:   "non-positive reservation id",
			mutate: func(r *models.ConfirmPaymentRequest) { r.ReservationID = 0 },
		},
		{
			name:   "empty provider",
			mutate: func(r *models.ConfirmPaymentRequest) { r.Provider = "" },
		},
		{
			name:   "empty provider payment id",
			mutate: func(r *models.ConfirmPaymentRequest) { r.ProviderPaymentID = "" },
		},
		{
			name:   "negative amount",
			mutate: func(r *models.ConfirmPaymentRequest) { r.Amount = -1 },
		},
		{
			name:   "zero confirmedAt",
			mutate: func(r *models.ConfirmPaymentRequest) { r.ConfirmedAt = time.Time{} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, payments := newService()

			req := testRequest()
			tt.mutate(req)

			_, err := svc.Confirm(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, payments.created)
		})
	}
}

func TestGetByReservationID(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Confirm(context.Background(), testRequest())
	require.NoError(t, err)

	result, err := svc.GetByReservationID(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, "pay-123", result.ProviderPaymentID)
}

func TestGetByReservationID_NotFound(t *testing.T) {
	svc, _ := newService()

	_, err := svc.GetByReservationID(context.Background(), 10)

	assert.ErrorIs(t, err, ErrConfirmationNotFound)
}
