package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/integrations/roomservice"
)

// UseCase построение почасовой сетки доступности переговорной
type UseCase struct {
	reservationRepo ReservationRepository
	roomClient      RoomServiceClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase конструктор usecase для получения сетки доступности
func NewUseCase(
	reservationRepo ReservationRepository,
	roomClient RoomServiceClient,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		roomClient:      roomClient,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// Execute строит почасовую сетку доступности переговорной на дату
//
// Результат вычисляется заново на каждый запрос и нигде не сохраняется:
// сетка носит справочный характер. Создание бронирования не доверяет ей,
// а заново проверяет конфликт по журналу в момент записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("[GetAvailability] Invalid request: roomID=%d, err=%v", req.RoomID, err)
		return nil, err
	}

	// 2. Текущее время для отсечки прошедших слотов
	now := uc.timeProvider.Now()

	// 3. Получаем переговорную из RoomService
	room, err := uc.roomClient.GetRoom(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomservice.ErrRoomNotFound) {
			uc.logger.Warn("[GetAvailability] Room not found: roomID=%d", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("[GetAvailability] Failed to get room: roomID=%d, err=%v", req.RoomID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Определяем окно работы на дату и строим сетку слотов
	window, err := resolveDayWindow(room, req.Date)
	if err != nil {
		uc.logger.Error("[GetAvailability] Invalid schedule from RoomService: roomID=%d, err=%v", req.RoomID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	grid, err := generateSlotGrid(window)
	if err != nil {
		uc.logger.Error("[GetAvailability] Failed to generate slot grid: roomID=%d, err=%v", req.RoomID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 5. Подтверждённые бронирования переговорной на эту дату
	filter := domain.RoomReservationsFilter{
		RoomID:    req.RoomID,
		StartDate: &req.Date,
		EndDate:   &req.Date,
	}

	reservations, err := uc.reservationRepo.GetByRoomWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("[GetAvailability] Failed to get reservations: roomID=%d, err=%v", req.RoomID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 6. Вычисляем статус каждого слота
	slots := computeSlotStatuses(grid, req.Date, reservations, req.UserID, now, window.isOpen)

	uc.logger.Info("[GetAvailability] Computed %d slots: roomID=%d, date=%s",
		len(slots), req.RoomID, req.Date.Format(domain.DateFormat))

	return &Response{
		RoomID:   room.ID,
		RoomName: room.Name,
		Date:     req.Date,
		Slots:    slots,
	}, nil
}
