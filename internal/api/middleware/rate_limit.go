package middleware

import (
	"net"
	"net/http"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
)

const msgTooManyRequests = "Muitas requisições. Tente novamente em instantes"

// RateLimit ограничивает частоту запросов общим token bucket.
// Прямые запросы с loopback (сервис сам отправляет себе копию документа) не ограничиваются.
func RateLimit(limiter *rate.Limiter, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isLocalDirect(r) && !limiter.Allow() {
				logger.Warn("%s %s - rate limited", r.Method, r.URL.Path)
				w.Header().Set("Retry-After", "1")
				handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// isLocalDirect запрос пришел с loopback и не через reverse proxy
func isLocalDirect(r *http.Request) bool {
	if r.Header.Get("X-Forwarded-For") != "" {
		return false
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
