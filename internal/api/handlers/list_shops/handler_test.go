package list_shops

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/service/catalog"
	"github.com/m04kA/SMC-BarberBooking/internal/service/catalog/models"
)

type stubService struct {
	shops []models.ShopResponse
	err   error
}

func (s *stubService) ListShops(context.Context) ([]models.ShopResponse, error) {
	return s.shops, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	svc := &stubService{shops: []models.ShopResponse{{ID: 1, Name: "Barbearia Central"}}}
	rec := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/shops", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var shops []models.ShopResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &shops))
	require.Len(t, shops, 1)
	assert.Equal(t, "Barbearia Central", shops[0].Name)
}

func TestHandle_BackendFailure(t *testing.T) {
	svc := &stubService{err: fmt.Errorf("%w: list shops: timeout", catalog.ErrBackend)}
	rec := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/shops", nil))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
