// Package middleware HTTP middleware для метрик и авторизации
package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/techydad05/nail-artist-website/internal/api/handlers"
)

// AdminTokenHeader заголовок с токеном администратора салона
const AdminTokenHeader = "X-Admin-Token"

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// AdminAuth проверяет токен администратора на защищенных маршрутах
// Пустой настроенный токен закрывает админские маршруты полностью
func AdminAuth(token string, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get(AdminTokenHeader)

			if token == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(token)) != 1 {
				logger.Warn("%s %s - Admin auth failed", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, "admin token required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
