package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-RoomBookingService/internal/api/handlers"
)

const (
	// UserIDHeader заголовок с ID аутентифицированного пользователя
	// Заголовок проставляет API gateway после проверки сессии
	UserIDHeader = "X-User-ID"

	msgMissingUserID = "отсутствует заголовок X-User-ID"
	msgInvalidUserID = "некорректный заголовок X-User-ID"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// Auth извлекает ID пользователя из заголовка X-User-ID и кладёт его в контекст
// Запросы без корректного заголовка отклоняются с 401
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(UserIDHeader)
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// OptionalUserID возвращает ID пользователя из заголовка X-User-ID, если он есть
// Используется на публичных маршрутах, где аутентификация не обязательна
func OptionalUserID(r *http.Request) *int64 {
	userIDStr := r.Header.Get(UserIDHeader)
	if userIDStr == "" {
		return nil
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil || userID <= 0 {
		return nil
	}

	return &userID
}
