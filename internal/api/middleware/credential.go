package middleware

import (
	"net/http"

	"github.com/m04kA/SMC-TourBookingService/pkg/reqctx"
)

// Credential сохраняет заголовок Authorization в контексте
// Сервис не проверяет учетные данные, хранилище бронирований получает их как есть
func Credential(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "" {
			r = r.WithContext(reqctx.WithCredential(r.Context(), auth))
		}
		next.ServeHTTP(w, r)
	})
}
