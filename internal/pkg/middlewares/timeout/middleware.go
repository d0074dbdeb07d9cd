package timeout

import (
	"context"
	"net/http"
	"time"
)

// Middleware ограничивает каждый запрос единым таймаутом поверх
// контекста из BaseContext.
func Middleware(requestTimeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
