package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	createReservation "github.com/m04kA/SMC-RoomBookingService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	RoomID          int64   `json:"roomId"`
	ReservationDate string  `json:"reservationDate"` // "2025-10-15"
	StartTime       string  `json:"startTime"`       // "10:00"
	EndTime         string  `json:"endTime"`         // "11:00"
	Notes           *string `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64   `json:"id"`
	UserID          int64   `json:"userId"`
	RoomID          int64   `json:"roomId"`
	ReservationDate string  `json:"reservationDate"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	Status          string  `json:"status"`
	RoomName        string  `json:"roomName"`
	HourlyPrice     float64 `json:"hourlyPrice"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(userID int64) (*createReservation.Request, error) {
	// Парсим дату
	reservationDate, err := time.Parse(domain.DateFormat, r.ReservationDate)
	if err != nil {
		return nil, err
	}

	// Парсим время начала и конца
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		UserID:    userID,
		RoomID:    r.RoomID,
		Date:      reservationDate,
		StartTime: startTime,
		EndTime:   endTime,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:              resp.ID,
		UserID:          resp.UserID,
		RoomID:          resp.RoomID,
		ReservationDate: resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		Status:          resp.Status,
		RoomName:        resp.RoomName,
		HourlyPrice:     resp.HourlyPrice,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
