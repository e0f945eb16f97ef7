package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-RoomBookingService/internal/integrations/roomservice"
	"github.com/m04kA/SMC-RoomBookingService/internal/integrations/userservice"
)

// UseCase создание бронирования переговорной
type UseCase struct {
	repo         ReservationRepository
	roomClient   RoomServiceClient
	userClient   UserServiceClient
	docClient    DocumentServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase конструктор usecase для создания бронирования
func NewUseCase(
	repo ReservationRepository,
	roomClient RoomServiceClient,
	userClient UserServiceClient,
	docClient DocumentServiceClient,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		repo:         repo,
		roomClient:   roomClient,
		userClient:   userClient,
		docClient:    docClient,
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute создаёт бронирование переговорной
//
// Порядок проверок фиксирован: валидация входа, затем право бронировать,
// затем часы работы, и только потом конфликт слота. Проверка конфликта и
// вставка выполняются атомарно в сериализуемой транзакции: при конкурентных
// запросах на один слот выигрывает ровно один
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("[CreateReservation] Invalid request: userID=%d, roomID=%d, err=%v", req.UserID, req.RoomID, err)
		return nil, err
	}

	// 2. Текущее время для проверки прошедших слотов
	now := uc.timeProvider.Now()

	if err := validateSlotTiming(req.Date, req.StartTime, now); err != nil {
		uc.logger.Warn("[CreateReservation] Slot timing rejected: userID=%d, roomID=%d, date=%s, start=%s, err=%v",
			req.UserID, req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime, err)
		return nil, err
	}

	// 3. Получаем переговорную из RoomService
	room, err := uc.roomClient.GetRoom(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomservice.ErrRoomNotFound) {
			uc.logger.Warn("[CreateReservation] Room not found: roomID=%d", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("[CreateReservation] Failed to get room: roomID=%d, err=%v", req.RoomID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Получаем аккаунт из UserService
	user, err := uc.userClient.GetUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			uc.logger.Warn("[CreateReservation] User not found: userID=%d", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("[CreateReservation] Failed to get user: userID=%d, err=%v", req.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 5. Получаем статус документов из DocumentService
	docStatus, err := uc.docClient.GetDocumentationStatus(ctx, req.UserID)
	if err != nil {
		uc.logger.Error("[CreateReservation] Failed to get documentation status: userID=%d, err=%v", req.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 6. Проверяем право бронировать - строго до обращения к хранилищу
	eligibility := domain.EvaluateEligibility(domain.TrustTier(user.TrustTier), domain.DocumentationStatus(docStatus))
	if !eligibility.Eligible {
		uc.logger.Warn("[CreateReservation] User not eligible: userID=%d, reason=%s, documentation_status=%s",
			req.UserID, eligibility.Reason, eligibility.Detail)
		return nil, &NotEligibleError{Reason: eligibility.Reason, Detail: eligibility.Detail}
	}

	// 7. Проверяем часы работы переговорной в указанную дату
	slot := domain.TimeSlot{StartTime: req.StartTime, EndTime: req.EndTime}
	if err := validateOperatingWindow(room, req.Date, slot); err != nil {
		uc.logger.Warn("[CreateReservation] Slot outside operating window: roomID=%d, date=%s, slot=%s-%s, err=%v",
			req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, err)
		return nil, err
	}

	// 8. Атомарная проверка конфликта и вставка в сериализуемой транзакции
	newReservation := &domain.Reservation{
		RoomID:          req.RoomID,
		UserID:          req.UserID,
		ReservationDate: req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Status:          domain.StatusConfirmed,
		RoomName:        room.Name,
		HourlyPrice:     room.HourlyPrice,
		Notes:           req.Notes,
	}

	var created *domain.Reservation
	err = uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		var txErr error
		created, txErr = uc.repo.CreateIfNoConflict(ctx, newReservation)
		return txErr
	})
	if err != nil {
		if errors.Is(err, reservation.ErrSlotConflict) {
			uc.logger.Info("[CreateReservation] Slot conflict: roomID=%d, date=%s, slot=%s-%s",
				req.RoomID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("[CreateReservation] Failed to create reservation: userID=%d, roomID=%d, err=%v",
			req.UserID, req.RoomID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("[CreateReservation] Reservation created: id=%d, userID=%d, roomID=%d, date=%s, slot=%s-%s",
		created.ID, created.UserID, created.RoomID, created.ReservationDate.Format(domain.DateFormat), created.StartTime, created.EndTime)

	return toResponse(created), nil
}

// toResponse конвертирует доменную модель в ответ usecase
func toResponse(res *domain.Reservation) *Response {
	return &Response{
		ID:          res.ID,
		UserID:      res.UserID,
		RoomID:      res.RoomID,
		Date:        res.ReservationDate,
		StartTime:   res.StartTime,
		EndTime:     res.EndTime,
		Status:      string(res.Status),
		RoomName:    res.RoomName,
		HourlyPrice: res.HourlyPrice,
		Notes:       res.Notes,
		CreatedAt:   res.CreatedAt,
		UpdatedAt:   res.UpdatedAt,
	}
}
