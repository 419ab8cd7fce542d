package list_shop_services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/service/catalog"
	"github.com/m04kA/SMC-BarberBooking/internal/service/catalog/models"
)

type stubService struct {
	gotShopID int64
	result    *models.ShopServicesResponse
	err       error
}

func (s *stubService) ListShopServices(_ context.Context, shopID int64) (*models.ShopServicesResponse, error) {
	s.gotShopID = shopID
	return s.result, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc CatalogService, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/shops/{shopId}/services", NewHandler(svc, nopLogger{}).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle(t *testing.T) {
	svc := &stubService{result: &models.ShopServicesResponse{
		Shop:     models.ShopResponse{ID: 1, Name: "Barbearia Central"},
		Services: []models.ServiceResponse{{ID: 7, Name: "Corte", Price: "45.00"}},
	}}

	rec := serve(svc, "/api/v1/shops/1/services")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), svc.gotShopID)
	var body models.ShopServicesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Services, 1)
	assert.Equal(t, "Corte", body.Services[0].Name)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, serve(&stubService{}, "/api/v1/shops/abc/services").Code)
	assert.Equal(t, http.StatusNotFound, serve(&stubService{err: catalog.ErrShopNotFound}, "/api/v1/shops/9/services").Code)
	assert.Equal(t, http.StatusBadGateway, serve(&stubService{err: catalog.ErrBackend}, "/api/v1/shops/1/services").Code)
}
