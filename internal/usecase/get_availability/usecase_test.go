package get_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/internal/integrations/roomservice"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Тестовые фейки

type fakeRepo struct {
	reservations []*domain.Reservation
	err          error
}

func (r *fakeRepo) GetByRoomWithFilter(_ context.Context, filter domain.RoomReservationsFilter) ([]*domain.Reservation, error) {
	if r.err != nil {
		return nil, r.err
	}

	result := make([]*domain.Reservation, 0)
	for _, res := range r.reservations {
		if res.RoomID != filter.RoomID {
			continue
		}
		if filter.StartDate != nil && !domain.IsSameDay(res.ReservationDate, *filter.StartDate) {
			continue
		}
		if !filter.IncludeCancelled && res.IsCancelled() {
			continue
		}
		result = append(result, res)
	}
	return result, nil
}

type fakeRoomClient struct {
	room *roomservice.Room
	err  error
}

func (c *fakeRoomClient) GetRoom(_ context.Context, _ int64) (*roomservice.Room, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.room, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Окружение теста

// 2025-10-13 - понедельник, 08:00
var testNow = time.Date(2025, 10, 13, 8, 0, 0, 0, time.UTC)

// Вторник следующей недели
var testDate = time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC)

func newUseCase(repo *fakeRepo, roomCl *fakeRoomClient, now time.Time) *UseCase {
	return NewUseCase(repo, roomCl, &fixedTimeProvider{now: now}, nopLogger{})
}

func testRoom() *roomservice.Room {
	return &roomservice.Room{ID: 1, Name: "Переговорная 101", HourlyPrice: 1500}
}

func confirmed(roomID, userID int64, date time.Time, start, end string) *domain.Reservation {
	return &domain.Reservation{
		RoomID:          roomID,
		UserID:          userID,
		ReservationDate: date,
		StartTime:       types.TimeString(start),
		EndTime:         types.TimeString(end),
		Status:          domain.StatusConfirmed,
	}
}

func statusByStart(t *testing.T, slots []Slot, start string) domain.AvailabilityStatus {
	t.Helper()
	for _, slot := range slots {
		if slot.StartTime.String() == start {
			return slot.Status
		}
	}
	t.Fatalf("slot %s not found", start)
	return ""
}

// Тесты

func TestExecute_DefaultGrid(t *testing.T) {
	uc := newUseCase(&fakeRepo{}, &fakeRoomClient{room: testRoom()}, testNow)

	result, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: testDate})

	require.NoError(t, err)
	// Дефолтное окно 09:00-18:00 даёт девять часовых слотов
	require.Len(t, result.Slots, 9)
	assert.Equal(t, "09:00", result.Slots[0].StartTime.String())
	assert.Equal(t, "10:00", result.Slots[0].EndTime.String())
	assert.Equal(t, "17:00", result.Slots[8].StartTime.String())

	for _, slot := range result.Slots {
		assert.Equal(t, domain.SlotAvailable, slot.Status)
	}
}

func TestExecute_SlotStatuses(t *testing.T) {
	repo := &fakeRepo{reservations: []*domain.Reservation{
		confirmed(1, 42, testDate, "10:00", "11:00"),
		confirmed(1, 99, testDate, "14:00", "16:00"),
	}}
	uc := newUseCase(repo, &fakeRoomClient{room: testRoom()}, testNow)

	result, err := uc.Execute(context.Background(), &Request{
		RoomID: 1,
		Date:   testDate,
		UserID: ptr.Ptr(int64(42)),
	})

	require.NoError(t, err)
	// Собственное бронирование помечается отдельным статусом
	assert.Equal(t, domain.SlotUserBooking, statusByStart(t, result.Slots, "10:00"))
	// Чужое двухчасовое бронирование занимает оба слота
	assert.Equal(t, domain.SlotBooked, statusByStart(t, result.Slots, "14:00"))
	assert.Equal(t, domain.SlotBooked, statusByStart(t, result.Slots, "15:00"))
	// Остальные слоты свободны
	assert.Equal(t, domain.SlotAvailable, statusByStart(t, result.Slots, "09:00"))
	assert.Equal(t, domain.SlotAvailable, statusByStart(t, result.Slots, "11:00"))
	assert.Equal(t, domain.SlotAvailable, statusByStart(t, result.Slots, "16:00"))
}

func TestExecute_AnonymousNeverSeesUserBooking(t *testing.T) {
	repo := &fakeRepo{reservations: []*domain.Reservation{
		confirmed(1, 42, testDate, "10:00", "11:00"),
	}}
	uc := newUseCase(repo, &fakeRoomClient{room: testRoom()}, testNow)

	result, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: testDate})

	require.NoError(t, err)
	assert.Equal(t, domain.SlotBooked, statusByStart(t, result.Slots, "10:00"))
}

func TestExecute_CancelledReservationIgnored(t *testing.T) {
	cancelled := confirmed(1, 42, testDate, "10:00", "11:00")
	cancelled.Status = domain.StatusCancelledByUser

	repo := &fakeRepo{reservations: []*domain.Reservation{cancelled}}
	uc := newUseCase(repo, &fakeRoomClient{room: testRoom()}, testNow)

	result, err := uc.Execute(context.Background(), &Request{
		RoomID: 1,
		Date:   testDate,
		UserID: ptr.Ptr(int64(42)),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.SlotAvailable, statusByStart(t, result.Slots, "10:00"))
}

func TestExecute_PastSlotsClosed(t *testing.T) {
	// Запрос на сегодня в 10:30: слоты по 10:00 включительно закрыты
	now := time.Date(2025, 10, 13, 10, 30, 0, 0, time.UTC)
	today := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

	uc := newUseCase(&fakeRepo{}, &fakeRoomClient{room: testRoom()}, now)

	result, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: today})

	require.NoError(t, err)
	assert.Equal(t, domain.SlotClosed, statusByStart(t, result.Slots, "09:00"))
	// Слот текущего часа тоже закрыт
	assert.Equal(t, domain.SlotClosed, statusByStart(t, result.Slots, "10:00"))
	assert.Equal(t, domain.SlotAvailable, statusByStart(t, result.Slots, "11:00"))
}

func TestExecute_WeekendAllClosed(t *testing.T) {
	// 2025-10-18 - суббота
	saturday := time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)

	uc := newUseCase(&fakeRepo{}, &fakeRoomClient{room: testRoom()}, testNow)

	result, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: saturday})

	require.NoError(t, err)
	require.NotEmpty(t, result.Slots)
	for _, slot := range result.Slots {
		assert.Equal(t, domain.SlotClosed, slot.Status)
	}
}

func TestExecute_ClosedOverridesBooking(t *testing.T) {
	// Бронирование на прошедший час: статус closed важнее booked
	now := time.Date(2025, 10, 13, 12, 0, 0, 0, time.UTC)
	today := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

	repo := &fakeRepo{reservations: []*domain.Reservation{
		confirmed(1, 42, today, "10:00", "11:00"),
	}}
	uc := newUseCase(repo, &fakeRoomClient{room: testRoom()}, now)

	result, err := uc.Execute(context.Background(), &Request{
		RoomID: 1,
		Date:   today,
		UserID: ptr.Ptr(int64(42)),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.SlotClosed, statusByStart(t, result.Slots, "10:00"))
}

func TestExecute_ExplicitSchedule(t *testing.T) {
	room := testRoom()
	room.WorkingHours.Tuesday = roomservice.DaySchedule{
		IsOpen:    true,
		OpenTime:  ptr.Ptr("08:00"),
		CloseTime: ptr.Ptr("12:00"),
	}

	uc := newUseCase(&fakeRepo{}, &fakeRoomClient{room: room}, testNow)

	result, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: testDate})

	require.NoError(t, err)
	require.Len(t, result.Slots, 4)
	assert.Equal(t, "08:00", result.Slots[0].StartTime.String())
	assert.Equal(t, "11:00", result.Slots[3].StartTime.String())
}

func TestExecute_Deterministic(t *testing.T) {
	repo := &fakeRepo{reservations: []*domain.Reservation{
		confirmed(1, 42, testDate, "10:00", "11:00"),
	}}
	uc := newUseCase(repo, &fakeRoomClient{room: testRoom()}, testNow)

	req := &Request{RoomID: 1, Date: testDate, UserID: ptr.Ptr(int64(42))}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Одинаковые входы дают одинаковый результат
	assert.Equal(t, first, second)
}

func TestExecute_RoomNotFound(t *testing.T) {
	uc := newUseCase(&fakeRepo{}, &fakeRoomClient{err: roomservice.ErrRoomNotFound}, testNow)

	_, err := uc.Execute(context.Background(), &Request{RoomID: 1, Date: testDate})

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_InvalidRequest(t *testing.T) {
	uc := newUseCase(&fakeRepo{}, &fakeRoomClient{room: testRoom()}, testNow)

	_, err := uc.Execute(context.Background(), &Request{RoomID: 0, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{RoomID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
