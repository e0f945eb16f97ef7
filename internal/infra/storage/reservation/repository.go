package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/psqlbuilder"
)

// Repository репозиторий реестра бронирований
// Реестр - единственный источник правды для проверки конфликтов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// reservationColumns полный список колонок таблицы reservations
var reservationColumns = []string{
	"id",
	"room_id",
	"user_id",
	"reservation_date",
	"start_time",
	"end_time",
	"status",
	"room_name",
	"hourly_price",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Create вставляет новое бронирование
// Не проверяет конфликты: для создания с гарантией отсутствия пересечений
// используйте CreateIfNoConflict внутри сериализуемой транзакции
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"room_id",
			"user_id",
			"reservation_date",
			"start_time",
			"end_time",
			"status",
			"room_name",
			"hourly_price",
			"notes",
		).
		Values(
			res.RoomID,
			res.UserID,
			res.ReservationDate,
			res.StartTime,
			res.EndTime,
			res.Status,
			res.RoomName,
			res.HourlyPrice,
			res.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// CreateIfNoConflict атомарная операция "проверить конфликт и вставить".
//
// Должна вызываться внутри сериализуемой транзакции (txmanager.DoSerializable):
// читает подтверждённые бронирования на (room_id, reservation_date)
// с блокировкой FOR UPDATE, проверяет пересечение слотов и вставляет
// новую запись только при отсутствии конфликта. Если слот занят,
// возвращает ErrSlotConflict.
//
// Граничные случаи: слот, ровно примыкающий к существующему бронированию,
// конфликтом не считается; отменённые бронирования слот не блокируют.
func (r *Repository) CreateIfNoConflict(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	overlapping, err := r.GetConfirmedOverlapping(ctx, res.RoomID, res.ReservationDate, res.Slot())
	if err != nil {
		return nil, err
	}

	if len(overlapping) > 0 {
		return nil, ErrSlotConflict
	}

	return r.Create(ctx, res)
}

// GetConfirmedOverlapping возвращает подтверждённые бронирования,
// пересекающиеся с указанным слотом на (room_id, date)
// Внутри транзакции строки (room_id, date) блокируются через FOR UPDATE
// Пересечение интервалов проверяется строгими неравенствами:
// примыкающие слоты пересечением не считаются
func (r *Repository) GetConfirmedOverlapping(ctx context.Context, roomID int64, date time.Time, slot domain.TimeSlot) ([]*domain.Reservation, error) {
	confirmed, err := r.getConfirmedByRoomAndDate(ctx, roomID, date)
	if err != nil {
		return nil, err
	}

	overlapping := make([]*domain.Reservation, 0)
	for _, res := range confirmed {
		if slot.Overlaps(res.Slot()) {
			overlapping = append(overlapping, res)
		}
	}

	return overlapping, nil
}

// getConfirmedByRoomAndDate получает все подтверждённые бронирования
// переговорной на дату, с блокировкой FOR UPDATE внутри транзакции
func (r *Repository) getConfirmedByRoomAndDate(ctx context.Context, roomID int64, date time.Time) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"reservation_date": date}).
		Where(squirrel.Eq{"status": domain.StatusConfirmed}).
		OrderBy("start_time ASC")

	// Блокируем строки только внутри транзакции - для атомарной
	// проверки конфликта при создании бронирования
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getConfirmedByRoomAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getConfirmedByRoomAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)

	res, err := r.scanReservation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// GetByUserID получает список бронирований пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("reservation_date DESC, start_time DESC")

	// Фильтрация по статусу, если указан
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// GetByRoomWithFilter получает бронирования переговорной с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению отменённых
//
// Примеры использования:
//
//  1. Все подтверждённые бронирования переговорной:
//     filter := domain.RoomReservationsFilter{RoomID: 42}
//
//  2. Бронирования на конкретную дату:
//     date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
//     filter := domain.RoomReservationsFilter{RoomID: 42, StartDate: &date, EndDate: &date}
//
//  3. Все бронирования включая отменённые:
//     filter := domain.RoomReservationsFilter{RoomID: 42, IncludeCancelled: true}
func (r *Repository) GetByRoomWithFilter(ctx context.Context, filter domain.RoomReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"room_id": filter.RoomID})

	// Фильтрация по периоду
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"reservation_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"reservation_date": *filter.EndDate})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCancelled {
		// Если не указан конкретный статус и отменённые не нужны - исключаем их
		cancelledStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			cancelledStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": cancelledStatusStrings})
	}

	// Для конкретной даты сортируем по времени начала, для периода - сначала новые
	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate) {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("reservation_date DESC, start_time DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByRoomWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// Cancel отменяет бронирование с указанием причины
// Физическое удаление не используется: реестр хранит историю
func (r *Repository) Cancel(ctx context.Context, id int64, status domain.ReservationStatus, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

// scanner минимальный интерфейс scan-источника (sql.Row и sql.Rows)
type scanner interface {
	Scan(dest ...interface{}) error
}

// scanReservation сканирует одну строку в доменную модель
func (r *Repository) scanReservation(row scanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.RoomID,
		&res.UserID,
		&res.ReservationDate,
		&res.StartTime,
		&res.EndTime,
		&res.Status,
		&res.RoomName,
		&res.HourlyPrice,
		&res.Notes,
		&res.CancellationReason,
		&res.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := r.scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
