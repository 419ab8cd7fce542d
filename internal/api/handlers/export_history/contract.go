package export_history

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

type DocumentService interface {
	History(ctx context.Context, protocol string) ([]*domain.ExportRecord, error)
	HistoryRecord(ctx context.Context, id int64) (*domain.ExportRecord, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
