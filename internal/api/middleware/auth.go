package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/m04kA/SMC-SaunaService/internal/api/handlers"
)

// AdminTokenHeader заголовок с административным токеном
const AdminTokenHeader = "X-Admin-Token"

const msgMissingToken = "отсутствует или некорректен административный токен"

// AdminAuth проверяет статический административный токен из конфигурации
// Административные операции (просмотр, отмена, удаление бронирований)
// доступны только с ним
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(AdminTokenHeader)
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
