package create_appointment

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/service/exporter"
)

// CustomerClient операции backend с клиентами барбершопа
type CustomerClient interface {
	ListByShop(ctx context.Context, shopID int64) ([]*domain.Customer, error)
	CreateForShop(ctx context.Context, shopID int64, customer *domain.Customer) (*domain.Customer, error)
}

// AppointmentClient создание записи в backend
type AppointmentClient interface {
	CreateForShopAndCustomer(ctx context.Context, shopID, customerID int64, appt *domain.Appointment) (*domain.Appointment, error)
}

// ShopClient получение барбершопа
type ShopClient interface {
	GetByID(ctx context.Context, id int64) (*domain.Shop, error)
}

// ServiceClient получение услуги
type ServiceClient interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// DocumentExporter экспорт подтверждения записи
type DocumentExporter interface {
	Export(ctx context.Context, bundle *domain.AppointmentBundle, format domain.DocumentFormat) (*exporter.Result, error)
}

// MetricsRecorder учет результатов отправки формы
type MetricsRecorder interface {
	IncAppointment(outcome string)
	IncCustomerResolution(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type nopMetrics struct{}

func (nopMetrics) IncAppointment(string)         {}
func (nopMetrics) IncCustomerResolution(string) {}
