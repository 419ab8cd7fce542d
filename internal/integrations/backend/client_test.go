package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/api", 2*time.Second, logger.NewNop(), WithLocation(time.UTC))
}

func TestCustomers_ListByShop_PageShape(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/clientes/barbearia/3", r.URL.Path)
		_, _ = io.WriteString(w, `{"content":[{"id":9,"nome":"Ana","cpf":"123.456.789-00"}]}`)
	})

	customers, err := client.Customers().ListByShop(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, int64(9), customers[0].ID)
	assert.Equal(t, "12345678900", customers[0].NationalID)
}

func TestCustomers_List_UnrecognizedShapeIsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `"not a list"`)
	})

	customers, err := client.Customers().List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestCustomers_CreateForShop_PlainTextError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/clientes/barbearia/1", r.URL.Path)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "12345678900", body["cpf"])

		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, "CPF já cadastrado")
	})

	_, err := client.Customers().CreateForShop(context.Background(), 1, &domain.Customer{Name: "Ana", NationalID: "12345678900"})
	require.Error(t, err)

	var be *Error
	require.True(t, errors.As(err, &be))
	assert.Equal(t, http.StatusBadRequest, be.StatusCode)
	assert.Equal(t, "CPF já cadastrado", be.Message)
	assert.ErrorIs(t, err, ErrBackend)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestShops_GetByID_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.Shops().GetByID(context.Background(), 77)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, ErrBackend)
	assert.Equal(t, "Erro 404: Not Found", Message(err))
}

func TestServices_GetByID_DecimalPriceAndDefaults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/servicos/7", r.URL.Path)
		_, _ = io.WriteString(w, `{"id":7,"nome":"Corte","valor":45.0,"funcionarios":["João","Pedro"]}`)
	})

	svc, err := client.Services().GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.True(t, svc.Price().Equal(decimal.NewFromInt(45)))
	assert.Equal(t, domain.DefaultServiceDurationMinutes, svc.DurationMinutes())
	assert.Equal(t, []string{"João", "Pedro"}, svc.StaffNames())
}

func TestServices_GetByID_NegativePriceRejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id":7,"nome":"Corte","valor":-1}`)
	})

	_, err := client.Services().GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestAppointments_CreateForShopAndCustomer(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/agendas/barbearia/1/cliente/9", r.URL.Path)

		var body appointmentDTO
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "2025-06-01T09:00:00", body.Data)

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":55,"data":"2025-06-01T09:00:00","descricao":"Agendamento de serviço"}`)
	})

	at := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	created, err := client.Appointments().CreateForShopAndCustomer(context.Background(), 1, 9,
		&domain.Appointment{DateTime: at, Notes: domain.DefaultAppointmentNotes})
	require.NoError(t, err)
	assert.Equal(t, int64(55), created.ID)
	assert.Equal(t, int64(1), created.ShopID)
	assert.Equal(t, int64(9), created.CustomerID)
	assert.True(t, at.Equal(created.DateTime))
}

func TestAppointments_ListByPeriod(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/agendas/periodo", r.URL.Path)
		assert.Equal(t, "2025-06-01T00:00:00", r.URL.Query().Get("inicio"))
		assert.Equal(t, "2025-06-30T23:59:59", r.URL.Query().Get("fim"))
		_, _ = io.WriteString(w, `[{"id":1,"data":"2025-06-02T10:00:00","cliente":{"id":3,"nome":"Ana"},"barbearia":{"id":1,"nome":"Centro"}}]`)
	})

	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)
	bundles, err := client.Appointments().ListByPeriod(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, bundles, 1)
	assert.Equal(t, "Ana", bundles[0].Customer.Name)
	assert.Equal(t, "Centro", bundles[0].Shop.Name)
	assert.Equal(t, int64(3), bundles[0].Appointment.CustomerID)
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	client := NewClient(srv.URL, time.Second, logger.NewNop())

	_, err := client.Shops().List(context.Background())
	require.Error(t, err)

	var be *Error
	require.True(t, errors.As(err, &be))
	assert.Equal(t, 0, be.StatusCode)
	assert.ErrorIs(t, err, ErrBackend)
}
