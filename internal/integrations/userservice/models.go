package userservice

// User модель аккаунта из UserService
type User struct {
	ID          int64  `json:"id"`
	DisplayName string `json:"display_name"`
	TrustTier   string `json:"trust_tier"` // Уровень доверия (standard, trusted, vip, admin)
	IsBlocked   bool   `json:"is_blocked"`
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
