package payments

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrConfirmationNotFound возвращается, когда подтверждение оплаты не найдено
	ErrConfirmationNotFound = errors.New("payment confirmation not found")

	// ErrDuplicateConfirmation возвращается при повторном подтверждении оплаты
	ErrDuplicateConfirmation = errors.New("payment confirmation already recorded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
