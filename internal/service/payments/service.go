package payments

import (
	"context"
	"errors"
	"fmt"

	paymentRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/payment"
	reservationRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/payments/models"
)

// Service сервис для фиксации подтверждений оплаты
// Оплата и подтверждение брони фиксируются независимо: подтверждение
// оплаты не меняет статус бронирования и не участвует в проверке конфликтов
type Service struct {
	paymentRepo     PaymentRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса оплат
func NewService(
	paymentRepo PaymentRepository,
	reservationRepo ReservationRepository,
	logger Logger,
) *Service {
	return &Service{
		paymentRepo:     paymentRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Confirm фиксирует подтверждение оплаты от платёжного сервиса
// Бронирование должно существовать; повторное подтверждение той же
// оплаты провайдера возвращает ErrDuplicateConfirmation
func (s *Service) Confirm(ctx context.Context, req *models.ConfirmPaymentRequest) (*models.ConfirmationResponse, error) {
	s.logger.Info("Confirm: recording payment confirmation for reservation=%d, provider=%s",
		req.ReservationID, req.Provider)

	if err := validateConfirmRequest(req); err != nil {
		s.logger.Warn("Confirm: invalid request for reservation=%d: %v", req.ReservationID, err)
		return nil, err
	}

	// Проверяем существование бронирования
	if _, err := s.reservationRepo.GetByID(ctx, req.ReservationID); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Confirm: reservation id=%d not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("Confirm: repository error for reservation id=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	confirmation, err := s.paymentRepo.Create(ctx, req.ToDomain())
	if err != nil {
		if errors.Is(err, paymentRepo.ErrDuplicateConfirmation) {
			s.logger.Warn("Confirm: duplicate confirmation for reservation=%d, provider_payment_id=%s",
				req.ReservationID, req.ProviderPaymentID)
			return nil, ErrDuplicateConfirmation
		}
		s.logger.Error("Confirm: repository error for reservation=%d: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Confirm: successfully recorded confirmation id=%d for reservation=%d",
		confirmation.ID, confirmation.ReservationID)
	return models.FromDomainConfirmation(confirmation), nil
}

// GetByReservationID получает подтверждение оплаты по ID бронирования
func (s *Service) GetByReservationID(ctx context.Context, reservationID int64) (*models.ConfirmationResponse, error) {
	s.logger.Info("GetByReservationID: fetching confirmation for reservation=%d", reservationID)

	confirmation, err := s.paymentRepo.GetByReservationID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrConfirmationNotFound) {
			s.logger.Warn("GetByReservationID: confirmation for reservation=%d not found", reservationID)
			return nil, ErrConfirmationNotFound
		}
		s.logger.Error("GetByReservationID: repository error for reservation=%d: %v", reservationID, err)
		return nil, fmt.Errorf("%w: GetByReservationID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfirmation(confirmation), nil
}

// validateConfirmRequest валидирует запрос на подтверждение оплаты
func validateConfirmRequest(req *models.ConfirmPaymentRequest) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationId must be positive", ErrInvalidInput)
	}
	if req.Provider == "" {
		return fmt.Errorf("%w: provider is required", ErrInvalidInput)
	}
	if req.ProviderPaymentID == "" {
		return fmt.Errorf("%w: providerPaymentId is required", ErrInvalidInput)
	}
	if req.Amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}
	if req.ConfirmedAt.IsZero() {
		return fmt.Errorf("%w: confirmedAt is required", ErrInvalidInput)
	}
	return nil
}
