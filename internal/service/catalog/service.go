package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberBooking/internal/integrations/backend"
	"github.com/m04kA/SMC-BarberBooking/internal/service/catalog/models"
)

// Service справочники формы записи: барбершопы и их услуги
type Service struct {
	shops    ShopClient
	services ServiceClient
	logger   Logger
}

// NewService создает новый экземпляр сервиса справочников
func NewService(shops ShopClient, services ServiceClient, logger Logger) *Service {
	return &Service{
		shops:    shops,
		services: services,
		logger:   logger,
	}
}

// ListShops возвращает все барбершопы
func (s *Service) ListShops(ctx context.Context) ([]models.ShopResponse, error) {
	shops, err := s.shops.List(ctx)
	if err != nil {
		s.logger.Error("ListShops: backend error: %v", err)
		return nil, fmt.Errorf("%w: list shops: %w", ErrBackend, err)
	}

	result := make([]models.ShopResponse, 0, len(shops))
	for _, shop := range shops {
		result = append(result, models.FromDomainShop(shop))
	}

	s.logger.Info("ListShops: fetched %d shops", len(result))
	return result, nil
}

// ListShopServices возвращает барбершоп и его услуги
func (s *Service) ListShopServices(ctx context.Context, shopID int64) (*models.ShopServicesResponse, error) {
	if shopID <= 0 {
		return nil, fmt.Errorf("%w: shop id must be positive", ErrInvalidInput)
	}

	shop, err := s.shops.GetByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			s.logger.Warn("ListShopServices: shop id=%d not found", shopID)
			return nil, ErrShopNotFound
		}
		s.logger.Error("ListShopServices: failed to get shop id=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: get shop: %w", ErrBackend, err)
	}

	services, err := s.services.ListByShop(ctx, shopID)
	if err != nil {
		s.logger.Error("ListShopServices: failed to list services of shop id=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: list services: %w", ErrBackend, err)
	}

	result := &models.ShopServicesResponse{
		Shop:     models.FromDomainShop(shop),
		Services: make([]models.ServiceResponse, 0, len(services)),
	}
	for _, svc := range services {
		result.Services = append(result.Services, models.FromDomainService(svc))
	}

	s.logger.Info("ListShopServices: shop id=%d has %d services", shopID, len(result.Services))
	return result, nil
}
