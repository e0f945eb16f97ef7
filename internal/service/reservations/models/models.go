package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// CancelReservationRequest запрос на отмену бронирования
type CancelReservationRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetUserReservationsRequest запрос на получение бронирований аккаунта
type GetUserReservationsRequest struct {
	UserID            int64   `json:"userId"`            // Чьи бронирования запрашиваются
	RequestingUserID  int64   `json:"requestingUserId"`  // Кто запрашивает
	Status            *string `json:"status,omitempty"`  // Фильтр по статусу (опционально)
}

// GetRoomReservationsRequest запрос на получение бронирований переговорной
type GetRoomReservationsRequest struct {
	UserID           int64      `json:"userId"`                    // Кто запрашивает (только админ)
	RoomID           int64      `json:"roomId"`                    // ID переговорной
	StartDate        *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate          *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status           *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeCancelled bool       `json:"includeCancelled,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetRoomReservationsRequest) ToDomainFilter() (domain.RoomReservationsFilter, error) {
	filter := domain.RoomReservationsFilter{
		RoomID:           r.RoomID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"userId"`
	RoomID          int64  `json:"roomId"`
	ReservationDate string `json:"reservationDate"` // "2025-10-15"
	StartTime       string `json:"startTime"`       // "10:00"
	EndTime         string `json:"endTime"`         // "11:00"
	Status          string `json:"status"`

	// Денормализованные данные
	RoomName    string  `json:"roomName"`
	HourlyPrice float64 `json:"hourlyPrice"`
	Notes       *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком бронирований
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:                 r.ID,
		UserID:             r.UserID,
		RoomID:             r.RoomID,
		ReservationDate:    r.ReservationDate.Format(domain.DateFormat),
		StartTime:          r.StartTime.String(),
		EndTime:            r.EndTime.String(),
		Status:             string(r.Status),
		RoomName:           r.RoomName,
		HourlyPrice:        r.HourlyPrice,
		Notes:              r.Notes,
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if r.CancelledAt != nil {
		cancelledStr := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	if reservations == nil {
		return &ReservationListResponse{
			Reservations: []ReservationResponse{},
		}
	}

	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, len(reservations)),
	}

	for i, reservation := range reservations {
		if reservationResp := FromDomainReservation(reservation); reservationResp != nil {
			resp.Reservations[i] = *reservationResp
		}
	}

	return resp
}

// ToDomainReservationStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)

	// Валидируем статус
	validStatuses := []domain.ReservationStatus{
		domain.StatusConfirmed,
		domain.StatusCancelledByUser,
		domain.StatusCancelledByAdmin,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
