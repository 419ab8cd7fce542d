package backend

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// ShopsAPI операции с барбершопами
type ShopsAPI struct {
	c *Client
}

func (a *ShopsAPI) List(ctx context.Context) ([]*domain.Shop, error) {
	const op = "list shops"
	body, err := a.c.do(ctx, op, http.MethodGet, pathShops, nil)
	if err != nil {
		return nil, err
	}
	dtos, err := decodeList[shopDTO](a.c, op, body)
	if err != nil {
		return nil, err
	}
	shops := make([]*domain.Shop, 0, len(dtos))
	for _, d := range dtos {
		shops = append(shops, shopFromDTO(d))
	}
	return shops, nil
}

func (a *ShopsAPI) GetByID(ctx context.Context, id int64) (*domain.Shop, error) {
	const op = "get shop"
	body, err := a.c.do(ctx, op, http.MethodGet, byID(pathShops, id), nil)
	if err != nil {
		return nil, err
	}
	d, err := decodeOne[shopDTO](op, http.StatusOK, body)
	if err != nil {
		return nil, err
	}
	return shopFromDTO(d), nil
}

func (a *ShopsAPI) Create(ctx context.Context, shop *domain.Shop) (*domain.Shop, error) {
	return a.send(ctx, "create shop", http.MethodPost, pathShops, shop)
}

func (a *ShopsAPI) Update(ctx context.Context, id int64, shop *domain.Shop) (*domain.Shop, error) {
	return a.send(ctx, "update shop", http.MethodPut, byID(pathShops, id), shop)
}

func (a *ShopsAPI) Delete(ctx context.Context, id int64) error {
	_, err := a.c.do(ctx, "delete shop", http.MethodDelete, byID(pathShops, id), nil)
	return err
}

func (a *ShopsAPI) send(ctx context.Context, op, method, path string, shop *domain.Shop) (*domain.Shop, error) {
	body, err := a.c.do(ctx, op, method, path, shopToDTO(shop))
	if err != nil {
		return nil, err
	}
	d, err := decodeOne[shopDTO](op, http.StatusOK, body)
	if err != nil {
		return nil, err
	}
	return shopFromDTO(d), nil
}
