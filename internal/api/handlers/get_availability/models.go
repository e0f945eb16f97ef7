package get_availability

import (
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	getAvailability "github.com/m04kA/SMC-RoomBookingService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	RoomID   int64              `json:"roomId"`
	RoomName string             `json:"roomName"`
	Date     string             `json:"date"`
	Slots    []AvailabilitySlot `json:"slots"`
}

// AvailabilitySlot один час сетки доступности
type AvailabilitySlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]AvailabilitySlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailabilitySlot{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
			Status:    string(slot.Status),
		}
	}

	return &AvailabilityResponse{
		RoomID:   resp.RoomID,
		RoomName: resp.RoomName,
		Date:     resp.Date.Format(domain.DateFormat),
		Slots:    slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров маршрута
func ToUseCaseRequest(roomID int64, dateStr string, userID *int64) (*getAvailability.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		RoomID: roomID,
		Date:   date,
		UserID: userID,
	}, nil
}
