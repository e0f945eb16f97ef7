package confirm_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/payments"
)

const (
	msgInvalidRequestBody      = "некорректное тело запроса"
	msgInvalidConfirmedAt      = "некорректный формат confirmedAt, ожидается ISO 8601"
	msgReservationNotFound     = "бронирование не найдено"
	msgDuplicateConfirmation   = "подтверждение оплаты уже зафиксировано"
	msgInvalidConfirmationData = "некорректные данные подтверждения оплаты"
)

type Handler struct {
	service PaymentService
	logger  Logger
}

func NewHandler(service PaymentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/confirmations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConfirmPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/confirmations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель сервиса (с парсингом времени)
	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /payments/confirmations - Invalid confirmedAt: %v", err)
		handlers.RespondBadRequest(w, msgInvalidConfirmedAt)
		return
	}

	// Фиксируем подтверждение оплаты
	result, err := h.service.Confirm(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrReservationNotFound):
			h.logger.Warn("POST /payments/confirmations - Reservation not found: reservation_id=%d", req.ReservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, payments.ErrDuplicateConfirmation):
			h.logger.Warn("POST /payments/confirmations - Duplicate confirmation: reservation_id=%d, provider_payment_id=%s",
				req.ReservationID, req.ProviderPaymentID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateConfirmation)

		case errors.Is(err, payments.ErrInvalidInput):
			h.logger.Warn("POST /payments/confirmations - Invalid data: reservation_id=%d, error=%v", req.ReservationID, err)
			handlers.RespondBadRequest(w, msgInvalidConfirmationData)

		default:
			h.logger.Error("POST /payments/confirmations - Failed to record confirmation: reservation_id=%d, error=%v",
				req.ReservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromServiceResponse(result)

	h.logger.Info("POST /payments/confirmations - Confirmation recorded successfully: confirmation_id=%d, reservation_id=%d",
		result.ID, result.ReservationID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
