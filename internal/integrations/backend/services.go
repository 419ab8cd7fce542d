package backend

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// ServicesAPI операции с услугами
type ServicesAPI struct {
	c *Client
}

func (a *ServicesAPI) List(ctx context.Context) ([]*domain.Service, error) {
	return a.list(ctx, "list services", pathServices)
}

// ListByShop возвращает услуги барбершопа
func (a *ServicesAPI) ListByShop(ctx context.Context, shopID int64) ([]*domain.Service, error) {
	return a.list(ctx, "list shop services", byShop(pathServices, shopID))
}

func (a *ServicesAPI) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	const op = "get service"
	body, err := a.c.do(ctx, op, http.MethodGet, byID(pathServices, id), nil)
	if err != nil {
		return nil, err
	}
	return a.decode(op, body)
}

func (a *ServicesAPI) Create(ctx context.Context, service *domain.Service) (*domain.Service, error) {
	return a.send(ctx, "create service", http.MethodPost, pathServices, service)
}

// CreateForShop создает услугу со связью с барбершопом
func (a *ServicesAPI) CreateForShop(ctx context.Context, shopID int64, service *domain.Service) (*domain.Service, error) {
	return a.send(ctx, "create shop service", http.MethodPost, byShop(pathServices, shopID), service)
}

func (a *ServicesAPI) Update(ctx context.Context, id int64, service *domain.Service) (*domain.Service, error) {
	return a.send(ctx, "update service", http.MethodPut, byID(pathServices, id), service)
}

func (a *ServicesAPI) Delete(ctx context.Context, id int64) error {
	_, err := a.c.do(ctx, "delete service", http.MethodDelete, byID(pathServices, id), nil)
	return err
}

func (a *ServicesAPI) list(ctx context.Context, op, path string) ([]*domain.Service, error) {
	body, err := a.c.do(ctx, op, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	dtos, err := decodeList[serviceDTO](a.c, op, body)
	if err != nil {
		return nil, err
	}
	services := make([]*domain.Service, 0, len(dtos))
	for _, d := range dtos {
		s, err := serviceFromDTO(d)
		if err != nil {
			return nil, &Error{Op: op, StatusCode: http.StatusOK, Message: "invalid service in response", Err: err}
		}
		services = append(services, s)
	}
	return services, nil
}

func (a *ServicesAPI) send(ctx context.Context, op, method, path string, service *domain.Service) (*domain.Service, error) {
	body, err := a.c.do(ctx, op, method, path, serviceToDTO(service))
	if err != nil {
		return nil, err
	}
	return a.decode(op, body)
}

func (a *ServicesAPI) decode(op string, body []byte) (*domain.Service, error) {
	d, err := decodeOne[serviceDTO](op, http.StatusOK, body)
	if err != nil {
		return nil, err
	}
	s, err := serviceFromDTO(d)
	if err != nil {
		return nil, &Error{Op: op, StatusCode: http.StatusOK, Message: "invalid service in response", Err: err}
	}
	return s, nil
}
