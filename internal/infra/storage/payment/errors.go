package payment

import "errors"

var (
	// ErrConfirmationNotFound возвращается, когда подтверждение оплаты не найдено
	ErrConfirmationNotFound = errors.New("payment.repository: confirmation not found")

	// ErrDuplicateConfirmation возвращается при повторном подтверждении
	// той же оплаты от провайдера
	ErrDuplicateConfirmation = errors.New("payment.repository: duplicate confirmation")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("payment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("payment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("payment.repository: failed to scan row")
)
