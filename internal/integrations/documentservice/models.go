package documentservice

// DocumentationStatus модель статуса документов аккаунта из DocumentService
type DocumentationStatus struct {
	UserID int64  `json:"user_id"`
	Status string `json:"status"` // none, pending, approved, rejected
}

// ErrorResponse модель ошибки от DocumentService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
