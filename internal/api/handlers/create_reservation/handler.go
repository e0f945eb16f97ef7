package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	createReservation "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgRoomNotFound       = "переговорная не найдена"
	msgUserNotFound       = "пользователь не найден"
	msgRoomClosed         = "переговорная закрыта в выбранную дату"
	msgInvalidReservDate  = "некорректная дата бронирования"
	msgPastSlot           = "слот уже недоступен для бронирования"
	msgInvalidTimeSlot    = "некорректный временной слот"
	msgOutsideHours       = "слот выходит за часы работы переговорной"

	msgDocsNone     = "для бронирования необходимо загрузить документы"
	msgDocsPending  = "документы находятся на проверке"
	msgDocsRejected = "документы отклонены, загрузите корректные документы"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// NotEligibleResponse ответ с причиной отказа в праве бронирования
// Отдаёт структурированную причину, чтобы UI показал пользователю
// конкретный следующий шаг, а не общую ошибку
type NotEligibleResponse struct {
	Code                int    `json:"code"`
	Message             string `json:"message"`
	Reason              string `json:"reason"`
	DocumentationStatus string `json:"documentationStatus"`
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		var notEligible *createReservation.NotEligibleError

		switch {
		case errors.As(err, &notEligible):
			h.logger.Warn("POST /reservations - User not eligible: user_id=%d, documentation_status=%s",
				userID, notEligible.Detail)
			handlers.RespondJSON(w, http.StatusForbidden, NotEligibleResponse{
				Code:                http.StatusForbidden,
				Message:             eligibilityMessage(notEligible.Detail),
				Reason:              string(notEligible.Reason),
				DocumentationStatus: string(notEligible.Detail),
			})

		case errors.Is(err, createReservation.ErrSlotNotAvailable):
			h.logger.Warn("POST /reservations - Slot not available: user_id=%d, room_id=%d", userID, req.RoomID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createReservation.ErrRoomNotFound):
			h.logger.Warn("POST /reservations - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createReservation.ErrUserNotFound):
			h.logger.Warn("POST /reservations - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createReservation.ErrRoomClosed):
			h.logger.Warn("POST /reservations - Room closed: user_id=%d, room_id=%d", userID, req.RoomID)
			handlers.RespondBadRequest(w, msgRoomClosed)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Invalid reservation date: user_id=%d, room_id=%d", userID, req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidReservDate)

		case errors.Is(err, createReservation.ErrPastSlot):
			h.logger.Warn("POST /reservations - Past slot: user_id=%d, room_id=%d", userID, req.RoomID)
			handlers.RespondBadRequest(w, msgPastSlot)

		case errors.Is(err, createReservation.ErrInvalidSlot),
			errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid time slot: user_id=%d, room_id=%d", userID, req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createReservation.ErrOutsideOperatingHours):
			h.logger.Warn("POST /reservations - Slot outside operating hours: user_id=%d, room_id=%d", userID, req.RoomID)
			handlers.RespondBadRequest(w, msgOutsideHours)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, room_id=%d, error=%v",
				userID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, user_id=%d, room_id=%d",
		result.ID, userID, req.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

// eligibilityMessage возвращает сообщение с конкретным следующим шагом
func eligibilityMessage(status domain.DocumentationStatus) string {
	switch status {
	case domain.DocsPending:
		return msgDocsPending
	case domain.DocsRejected:
		return msgDocsRejected
	default:
		return msgDocsNone
	}
}
