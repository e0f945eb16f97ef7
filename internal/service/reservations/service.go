package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/reservation"
	userClient "github.com/m04kA/SMC-RoomBookingService/internal/integrations/userservice"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	reservationRepo ReservationRepository
	userClient      UserServiceClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	userClient UserServiceClient,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		userClient:      userClient,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - пользователь может видеть только своё бронирование
// или если он является администратором
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, userID)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, reservation, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(reservation), nil
}

// GetUserReservations получает историю бронирований аккаунта
// Пользователь видит только свои бронирования; администратор - любые
// Опционально фильтрует по статусу
func (s *Service) GetUserReservations(ctx context.Context, req *models.GetUserReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user=%d, requested by=%d, status=%v",
		req.UserID, req.RequestingUserID, req.Status)

	// Чужую историю может смотреть только администратор
	if req.UserID != req.RequestingUserID {
		if err := s.checkAdminAccess(ctx, req.RequestingUserID); err != nil {
			s.logger.Warn("GetUserReservations: access denied for user=%d to reservations of user=%d",
				req.RequestingUserID, req.UserID)
			return nil, err
		}
	}

	// Конвертируем статус из строки в domain.ReservationStatus
	var domainStatus *domain.ReservationStatus
	if req.Status != nil {
		status, err := models.ToDomainReservationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserReservations: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	reservations, err := s.reservationRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserReservations: successfully fetched %d reservations for user=%d", len(reservations), req.UserID)
	return models.FromDomainReservationList(reservations), nil
}

// GetRoomReservations получает бронирования переговорной с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению отменённых бронирований
// Доступно только администраторам
//
// Примеры использования:
// - Все активные бронирования: GetRoomReservations(ctx, &GetRoomReservationsRequest{RoomID: 123, UserID: 456})
// - Бронирования на дату: StartDate и EndDate указывают на одну дату
// - Бронирования за период: StartDate и EndDate указывают на разные даты
// - Включая отменённые: IncludeCancelled = true
func (s *Service) GetRoomReservations(ctx context.Context, req *models.GetRoomReservationsRequest) (*models.ReservationListResponse, error) {
	// Логируем запрос с деталями фильтрации
	logMsg := fmt.Sprintf("GetRoomReservations: fetching reservations for room=%d, user=%d", req.RoomID, req.UserID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeCancelled {
		logMsg += ", includeCancelled=true"
	}
	s.logger.Info(logMsg)

	// Проверяем права администратора
	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		return nil, err
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetRoomReservations: invalid filter for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	// Получаем бронирования с фильтрацией
	reservations, err := s.reservationRepo.GetByRoomWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetRoomReservations: repository error for room=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: GetRoomReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRoomReservations: successfully fetched %d reservations for room=%d", len(reservations), req.RoomID)
	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет бронирование
// Пользователь может отменить только своё бронирование (cancelled_by_user)
// Администратор может отменить любое бронирование (cancelled_by_admin)
// Переход статуса односторонний: отменённое бронирование не реактивируется
func (s *Service) Cancel(ctx context.Context, reservationID int64, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%d by user=%d", reservationID, req.UserID)

	// Получаем бронирование
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем, можно ли отменить бронирование
	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", reservationID, reservation.Status)
		return ErrAlreadyCancelled
	}

	// Определяем статус отмены в зависимости от прав доступа
	var cancelStatus domain.ReservationStatus

	// Проверяем, является ли пользователь владельцем бронирования
	if reservation.UserID == req.UserID {
		cancelStatus = domain.StatusCancelledByUser
	} else {
		// Чужое бронирование может отменить только администратор
		if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel reservation id=%d", req.UserID, reservationID)
			return ErrAccessDenied
		}
		cancelStatus = domain.StatusCancelledByAdmin
	}

	// Отменяем бронирование
	if err := s.reservationRepo.Cancel(ctx, reservationID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found during cancellation", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d with status=%s", reservationID, cancelStatus)
	return nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию
// Пользователь может видеть своё бронирование или если он администратор
func (s *Service) checkUserAccess(ctx context.Context, reservation *domain.Reservation, userID int64) error {
	// Если пользователь владелец бронирования - доступ разрешён
	if reservation.UserID == userID {
		return nil
	}

	// Проверяем, является ли пользователь администратором
	if err := s.checkAdminAccess(ctx, userID); err != nil {
		// Ошибка уже залогирована в checkAdminAccess
		return ErrAccessDenied
	}

	return nil
}

// checkAdminAccess проверяет, что пользователь является администратором
// Уровень доверия аккаунта запрашивается из UserService
func (s *Service) checkAdminAccess(ctx context.Context, userID int64) error {
	user, err := s.userClient.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			s.logger.Warn("checkAdminAccess: user id=%d not found", userID)
			return ErrUserNotFound
		}
		s.logger.Error("checkAdminAccess: failed to get user id=%d: %v", userID, err)
		return fmt.Errorf("%w: checkAdminAccess - failed to get user: %v", ErrInternal, err)
	}

	if !domain.TrustTier(user.TrustTier).CanManageReservations() {
		return ErrAccessDenied
	}

	return nil
}
