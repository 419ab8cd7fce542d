package create_appointment

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/service/exporter"
)

type mockCustomerClient struct {
	mock.Mock
}

func (m *mockCustomerClient) ListByShop(ctx context.Context, shopID int64) ([]*domain.Customer, error) {
	args := m.Called(ctx, shopID)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCustomerClient) CreateForShop(ctx context.Context, shopID int64, customer *domain.Customer) (*domain.Customer, error) {
	args := m.Called(ctx, shopID, customer)
	if v := args.Get(0); v != nil {
		return v.(*domain.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockAppointmentClient struct {
	mock.Mock
}

func (m *mockAppointmentClient) CreateForShopAndCustomer(ctx context.Context, shopID, customerID int64, appt *domain.Appointment) (*domain.Appointment, error) {
	args := m.Called(ctx, shopID, customerID, appt)
	if v := args.Get(0); v != nil {
		return v.(*domain.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockShopClient struct {
	mock.Mock
}

func (m *mockShopClient) GetByID(ctx context.Context, id int64) (*domain.Shop, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Shop), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockServiceClient struct {
	mock.Mock
}

func (m *mockServiceClient) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*domain.Service), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockExporter struct {
	mock.Mock
}

func (m *mockExporter) Export(ctx context.Context, bundle *domain.AppointmentBundle, format domain.DocumentFormat) (*exporter.Result, error) {
	args := m.Called(ctx, bundle, format)
	if v := args.Get(0); v != nil {
		return v.(*exporter.Result), args.Error(1)
	}
	return nil, args.Error(1)
}
