package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/service/exporter"
)

// Request данные формы записи в исходном (строковом) виде
type Request struct {
	ShopID       string // ID барбершопа
	ServiceID    string // ID услуги
	DateTime     string // "YYYY-MM-DDTHH:MM" из datetime-local, секунды опциональны
	Notes        string // Observações
	CustomerName string
	NationalID   string // CPF, с маской или без
	Phone        string
	Email        string
	Address      string
	Format       string // html (по умолчанию), csv, txt
}

// Response результат отправки формы
type Response struct {
	Bundle         *domain.AppointmentBundle
	Protocol       string
	CustomerReused bool

	Export      *exporter.Result // nil, если экспорт не удался
	ExportError error
}

// Options настройки сценария записи
type Options struct {
	LookupPolicy  CustomerLookupPolicy
	SubmitTimeout time.Duration  // общий таймаут обращений к backend, 0 - без ограничения
	Location      *time.Location // часовой пояс значений формы
}

// input провалидированный запрос
type input struct {
	shopID    int64
	serviceID int64
	dateTime  time.Time
	notes     string
	customer  *domain.Customer
	format    domain.DocumentFormat
}
