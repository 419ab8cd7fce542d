package middleware

import (
	"net/http"
	"time"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AccessLog пишет строку лога на каждый запрос
func AccessLog(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)

			logFn := logger.Info
			switch {
			case rec.status >= http.StatusInternalServerError:
				logFn = logger.Error
			case rec.status >= http.StatusBadRequest:
				logFn = logger.Warn
			}
			logFn("%s %s - %d in %dms request_id=%s",
				r.Method, r.URL.Path, rec.status, time.Since(start).Milliseconds(), RequestIDFromContext(r.Context()))
		})
	}
}
