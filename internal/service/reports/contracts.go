package reports

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// AppointmentLister источник записей за период
type AppointmentLister interface {
	ListByPeriod(ctx context.Context, from, to time.Time) ([]*domain.AppointmentBundle, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
