package get_room_reservations

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/service/reservations/models"
)

// ToServiceRequest создает запрос сервиса из параметров маршрута
// Однодневный запрос задаётся параметром date; период - параметрами
// startDate и endDate
func ToServiceRequest(roomID, userID int64, statusStr, dateStr, startDateStr, endDateStr, includeCancelledStr string) (*models.GetRoomReservationsRequest, error) {
	req := &models.GetRoomReservationsRequest{
		UserID: userID,
		RoomID: roomID,
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	// date имеет приоритет над startDate/endDate
	if dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
		req.EndDate = &date
	} else {
		if startDateStr != "" {
			startDate, err := time.Parse(domain.DateFormat, startDateStr)
			if err != nil {
				return nil, err
			}
			req.StartDate = &startDate
		}
		if endDateStr != "" {
			endDate, err := time.Parse(domain.DateFormat, endDateStr)
			if err != nil {
				return nil, err
			}
			req.EndDate = &endDate
		}
	}

	if includeCancelledStr != "" {
		includeCancelled, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}
