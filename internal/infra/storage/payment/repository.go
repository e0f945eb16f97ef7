package payment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-RoomBookingService/internal/domain"
	"github.com/m04kA/SMC-RoomBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RoomBookingService/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL при нарушении уникальности
const pgUniqueViolation = "23505"

// Repository репозиторий подтверждений оплаты
// Оплата фиксируется независимо от реестра бронирований и не участвует
// в его инвариантах
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория подтверждений оплаты
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет подтверждение оплаты
// Повторное подтверждение той же оплаты провайдера возвращает ErrDuplicateConfirmation
func (r *Repository) Create(ctx context.Context, conf *domain.PaymentConfirmation) (*domain.PaymentConfirmation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payment_confirmations").
		Columns(
			"reservation_id",
			"provider",
			"provider_payment_id",
			"amount",
			"confirmed_at",
		).
		Values(
			conf.ReservationID,
			conf.Provider,
			conf.ProviderPaymentID,
			conf.Amount,
			conf.ConfirmedAt,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&conf.ID,
		&createdAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			return nil, ErrDuplicateConfirmation
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	conf.CreatedAt = createdAt.Time

	return conf, nil
}

// GetByReservationID получает подтверждение оплаты по ID бронирования
func (r *Repository) GetByReservationID(ctx context.Context, reservationID int64) (*domain.PaymentConfirmation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"reservation_id",
		"provider",
		"provider_payment_id",
		"amount",
		"confirmed_at",
		"created_at",
	).
		From("payment_confirmations").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - build select query: %v", ErrBuildQuery, err)
	}

	var conf domain.PaymentConfirmation
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&conf.ID,
		&conf.ReservationID,
		&conf.Provider,
		&conf.ProviderPaymentID,
		&conf.Amount,
		&conf.ConfirmedAt,
		&createdAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrConfirmationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - scan confirmation: %v", ErrScanRow, err)
	}

	conf.CreatedAt = createdAt.Time

	return &conf, nil
}
