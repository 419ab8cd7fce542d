package backend

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// CustomersAPI операции с клиентами
type CustomersAPI struct {
	c *Client
}

func (a *CustomersAPI) List(ctx context.Context) ([]*domain.Customer, error) {
	return a.list(ctx, "list customers", pathCustomers)
}

// ListByShop возвращает клиентов, связанных с барбершопом
func (a *CustomersAPI) ListByShop(ctx context.Context, shopID int64) ([]*domain.Customer, error) {
	return a.list(ctx, "list shop customers", byShop(pathCustomers, shopID))
}

func (a *CustomersAPI) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	const op = "get customer"
	body, err := a.c.do(ctx, op, http.MethodGet, byID(pathCustomers, id), nil)
	if err != nil {
		return nil, err
	}
	d, err := decodeOne[customerDTO](op, http.StatusOK, body)
	if err != nil {
		return nil, err
	}
	return customerFromDTO(d), nil
}

func (a *CustomersAPI) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	return a.send(ctx, "create customer", http.MethodPost, pathCustomers, customer)
}

// CreateForShop создает клиента сразу со связью с барбершопом
func (a *CustomersAPI) CreateForShop(ctx context.Context, shopID int64, customer *domain.Customer) (*domain.Customer, error) {
	return a.send(ctx, "create shop customer", http.MethodPost, byShop(pathCustomers, shopID), customer)
}

func (a *CustomersAPI) Update(ctx context.Context, id int64, customer *domain.Customer) (*domain.Customer, error) {
	return a.send(ctx, "update customer", http.MethodPut, byID(pathCustomers, id), customer)
}

func (a *CustomersAPI) Delete(ctx context.Context, id int64) error {
	_, err := a.c.do(ctx, "delete customer", http.MethodDelete, byID(pathCustomers, id), nil)
	return err
}

func (a *CustomersAPI) list(ctx context.Context, op, path string) ([]*domain.Customer, error) {
	body, err := a.c.do(ctx, op, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	dtos, err := decodeList[customerDTO](a.c, op, body)
	if err != nil {
		return nil, err
	}
	customers := make([]*domain.Customer, 0, len(dtos))
	for _, d := range dtos {
		customers = append(customers, customerFromDTO(d))
	}
	return customers, nil
}

func (a *CustomersAPI) send(ctx context.Context, op, method, path string, customer *domain.Customer) (*domain.Customer, error) {
	body, err := a.c.do(ctx, op, method, path, customerToDTO(customer))
	if err != nil {
		return nil, err
	}
	d, err := decodeOne[customerDTO](op, http.StatusOK, body)
	if err != nil {
		return nil, err
	}
	return customerFromDTO(d), nil
}
