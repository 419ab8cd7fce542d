package appointments_report

import (
	"context"
	"time"
)

type ReportService interface {
	AppointmentsReport(ctx context.Context, from, to time.Time) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
