package roomservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с RoomService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента RoomService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetRoom получает переговорную по ID
func (c *Client) GetRoom(ctx context.Context, roomID int64) (*Room, error) {
	url := fmt.Sprintf("%s/internal/rooms/%d", c.baseURL, roomID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid room ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrRoomNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var room Room
	if err := json.NewDecoder(resp.Body).Decode(&room); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &room, nil
}

// ScheduleForDay возвращает расписание работы переговорной на день недели
func (r *Room) ScheduleForDay(weekday time.Weekday) DaySchedule {
	switch weekday {
	case time.Monday:
		return r.WorkingHours.Monday
	case time.Tuesday:
		return r.WorkingHours.Tuesday
	case time.Wednesday:
		return r.WorkingHours.Wednesday
	case time.Thursday:
		return r.WorkingHours.Thursday
	case time.Friday:
		return r.WorkingHours.Friday
	case time.Saturday:
		return r.WorkingHours.Saturday
	case time.Sunday:
		return r.WorkingHours.Sunday
	default:
		return DaySchedule{IsOpen: false}
	}
}
