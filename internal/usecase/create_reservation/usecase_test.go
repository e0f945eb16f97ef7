package create_reservation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-RoomBookingService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-RoomBookingService/internal/integrations/roomservice"
	"github.com/m04kA/SMC-RoomBookingService/internal/integrations/userservice"
	"github.com/m04kA/SMC-RoomBookingService/pkg/ptr"
	"github.com/m04kA/SMC-RoomBookingService/pkg/types"
)

// Тестовые фейки

// fakeRepo хранит бронирования в памяти и повторяет семантику
// CreateIfNoConflict: проверка пересечений среди подтверждённых
// бронирований той же переговорной и даты, затем вставка
type fakeRepo struct {
	mu           sync.Mutex
	reservations []*domain.Reservation
	nextID       int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{nextID: 1}
}

func (r *fakeRepo) CreateIfNoConflict(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.reservations {
		if existing.RoomID != res.RoomID || !existing.IsActive() {
			continue
		}
		if !domain.IsSameDay(existing.ReservationDate, res.ReservationDate) {
			continue
		}
		if existing.Slot().Overlaps(res.Slot()) {
			return nil, reservationRepo.ErrSlotConflict
		}
	}

	created := *res
	created.ID = r.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	r.nextID++
	r.reservations = append(r.reservations, &created)

	return &created, nil
}

func (r *fakeRepo) add(res *domain.Reservation) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res.ID = r.nextID
	r.nextID++
	r.reservations = append(r.reservations, res)
}

func (r *fakeRepo) confirmedCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, res := range r.reservations {
		if res.IsActive() {
			count++
		}
	}
	return count
}

// fakeTxManager сериализует закрытия через мьютекс: конкурентные вызовы
// CreateIfNoConflict не перемешиваются, как в сериализуемой транзакции
type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
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

type fakeUserClient struct {
	user *userservice.User
	err  error
}

func (c *fakeUserClient) GetUser(_ context.Context, _ int64) (*userservice.User, error) {
	if c.err != nil {
		return nil, c.err
	}
	return c.user, nil
}

type fakeDocClient struct {
	status string
	err    error
	calls  int
}

func (c *fakeDocClient) GetDocumentationStatus(_ context.Context, _ int64) (string, error) {
	c.calls++
	if c.err != nil {
		return "", c.err
	}
	return c.status, nil
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

type testEnv struct {
	repo      *fakeRepo
	roomCl    *fakeRoomClient
	userCl    *fakeUserClient
	docCl     *fakeDocClient
	txManager *fakeTxManager
	uc        *UseCase
}

// 2025-10-13 - понедельник, 08:00
var testNow = time.Date(2025, 10, 13, 8, 0, 0, 0, time.UTC)

func testRoom() *roomservice.Room {
	return &roomservice.Room{
		ID:          1,
		Name:        "Переговорная 101",
		HourlyPrice: 1500,
	}
}

func newTestEnv() *testEnv {
	env := &testEnv{
		repo:      newFakeRepo(),
		roomCl:    &fakeRoomClient{room: testRoom()},
		userCl:    &fakeUserClient{user: &userservice.User{ID: 42, TrustTier: "standard"}},
		docCl:     &fakeDocClient{status: "approved"},
		txManager: &fakeTxManager{},
	}
	env.uc = NewUseCase(
		env.repo,
		env.roomCl,
		env.userCl,
		env.docCl,
		env.txManager,
		&fixedTimeProvider{now: testNow},
		nopLogger{},
	)
	return env
}

func testRequest() *Request {
	return &Request{
		UserID:    42,
		RoomID:    1,
		Date:      time.Date(2025, 10, 14, 0, 0, 0, 0, time.UTC), // вторник
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("11:00"),
	}
}

// Тесты

func TestExecute_Success(t *testing.T) {
	env := newTestEnv()

	result, err := env.uc.Execute(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ID)
	assert.Equal(t, string(domain.StatusConfirmed), result.Status)
	assert.Equal(t, "Переговорная 101", result.RoomName)
	assert.Equal(t, 1500.0, result.HourlyPrice)
	assert.Equal(t, 1, env.repo.confirmedCount())
}

func TestExecute_SlotConflict(t *testing.T) {
	env := newTestEnv()

	_, err := env.uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	// Второй запрос на тот же слот другим пользователем
	req := testRequest()
	req.UserID = 43

	_, err = env.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Equal(t, 1, env.repo.confirmedCount())
}

func TestExecute_AdjacentSlotSucceeds(t *testing.T) {
	env := newTestEnv()

	_, err := env.uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	// Слот, граничащий с существующим бронированием, не конфликтует
	req := testRequest()
	req.UserID = 43
	req.StartTime = types.TimeString("11:00")
	req.EndTime = types.TimeString("12:00")

	_, err = env.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 2, env.repo.confirmedCount())
}

func TestExecute_CancelledReservationDoesNotBlock(t *testing.T) {
	env := newTestEnv()

	req := testRequest()
	env.repo.add(&domain.Reservation{
		RoomID:          req.RoomID,
		UserID:          99,
		ReservationDate: req.Date,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Status:          domain.StatusCancelledByUser,
	})

	_, err := env.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 1, env.repo.confirmedCount())
}

func TestExecute_NotEligible(t *testing.T) {
	tests := []struct {
		name       string
		docStatus  string
		wantDetail domain.DocumentationStatus
	}{
		{name: "документы не загружены", docStatus: "none", wantDetail: domain.DocsNone},
		{name: "документы на проверке", docStatus: "pending", wantDetail: domain.DocsPending},
		{name: "документы отклонены", docStatus: "rejected", wantDetail: domain.DocsRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			env.docCl.status = tt.docStatus

			_, err := env.uc.Execute(context.Background(), testRequest())

			require.ErrorIs(t, err, ErrNotEligible)

			var notEligible *NotEligibleError
			require.ErrorAs(t, err, &notEligible)
			assert.Equal(t, domain.ReasonDocumentationRequired, notEligible.Reason)
			assert.Equal(t, tt.wantDetail, notEligible.Detail)

			// Отказ в праве бронирования не трогает хранилище
			assert.Equal(t, 0, env.repo.confirmedCount())
		})
	}
}

func TestExecute_EligibilityCheckedBeforeConflict(t *testing.T) {
	env := newTestEnv()

	// Слот уже занят, но у пользователя документы на проверке:
	// он должен получить отказ по документам, а не конфликт слота
	_, err := env.uc.Execute(context.Background(), testRequest())
	require.NoError(t, err)

	env.docCl.status = "pending"
	req := testRequest()
	req.UserID = 43

	_, err = env.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrNotEligible)
	assert.NotErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_PastSlotRejected(t *testing.T) {
	env := newTestEnv()

	// Сегодняшняя дата, слот начинается в текущем часу
	req := testRequest()
	req.Date = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	req.StartTime = types.TimeString("08:00")
	req.EndTime = types.TimeString("09:00")

	_, err := env.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrPastSlot)
}

func TestExecute_PastDateRejected(t *testing.T) {
	env := newTestEnv()

	req := testRequest()
	req.Date = time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)

	_, err := env.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_WeekendRejected(t *testing.T) {
	env := newTestEnv()

	// 2025-10-18 - суббота
	req := testRequest()
	req.Date = time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC)

	_, err := env.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrRoomClosed)
}

func TestExecute_OutsideOperatingHours(t *testing.T) {
	env := newTestEnv()

	// Дефолтное окно 09:00-18:00
	req := testRequest()
	req.StartTime = types.TimeString("18:00")
	req.EndTime = types.TimeString("19:00")

	_, err := env.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrOutsideOperatingHours)
}

func TestExecute_ExplicitScheduleOverridesDefault(t *testing.T) {
	env := newTestEnv()

	// Переговорная с явным расписанием: вторник 08:00-20:00
	env.roomCl.room.WorkingHours.Tuesday = roomservice.DaySchedule{
		IsOpen:    true,
		OpenTime:  ptr.Ptr("08:00"),
		CloseTime: ptr.Ptr("20:00"),
	}

	req := testRequest()
	req.StartTime = types.TimeString("19:00")
	req.EndTime = types.TimeString("20:00")

	_, err := env.uc.Execute(context.Background(), req)

	require.NoError(t, err)
}

func TestExecute_InvalidSlots(t *testing.T) {
	tests := []struct {
		name      string
		startTime string
		endTime   string
		wantErr   error
	}{
		{name: "конец равен началу", startTime: "10:00", endTime: "10:00", wantErr: ErrInvalidSlot},
		{name: "конец раньше начала", startTime: "11:00", endTime: "10:00", wantErr: ErrInvalidSlot},
		{name: "начало не на границе часа", startTime: "10:30", endTime: "11:30", wantErr: ErrInvalidSlot},
		{name: "некорректный формат", startTime: "abc", endTime: "11:00", wantErr: ErrInvalidSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()

			req := testRequest()
			req.StartTime = types.TimeString(tt.startTime)
			req.EndTime = types.TimeString(tt.endTime)

			_, err := env.uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_RoomNotFound(t *testing.T) {
	env := newTestEnv()
	env.roomCl.err = roomservice.ErrRoomNotFound

	_, err := env.uc.Execute(context.Background(), testRequest())

	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_UserNotFound(t *testing.T) {
	env := newTestEnv()
	env.userCl.err = userservice.ErrUserNotFound

	_, err := env.uc.Execute(context.Background(), testRequest())

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecute_NotesTooLong(t *testing.T) {
	env := newTestEnv()

	notes := make([]byte, domain.MaxNotesLength+1)
	for i := range notes {
		notes[i] = 'a'
	}

	req := testRequest()
	req.Notes = ptr.Ptr(string(notes))

	_, err := env.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

// Ровно один из конкурентных запросов на пересекающиеся слоты выигрывает
func TestExecute_ConcurrentRequests_ExactlyOneWinner(t *testing.T) {
	env := newTestEnv()

	const attempts = 20

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := testRequest()
			req.UserID = int64(100 + i)
			_, errs[i] = env.uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	successes, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, ErrSlotNotAvailable):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, successes)
	assert.Equal(t, attempts-1, conflicts)
	assert.Equal(t, 1, env.repo.confirmedCount())
}
