package catalog

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// ShopClient интерфейс клиента barbearias backend API
type ShopClient interface {
	List(ctx context.Context) ([]*domain.Shop, error)
	GetByID(ctx context.Context, id int64) (*domain.Shop, error)
}

// ServiceClient интерфейс клиента serviços backend API
type ServiceClient interface {
	ListByShop(ctx context.Context, shopID int64) ([]*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
