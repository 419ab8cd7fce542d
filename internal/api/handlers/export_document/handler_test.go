package export_document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/service/documents"
	"github.com/m04kA/SMC-BarberBooking/internal/service/documents/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Save(ctx context.Context, req *models.SaveRequest) (*models.SaveResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SaveResult), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const body = `{"protocolo":"AGD-1-2","nomeArquivo":"AGD-1-2.txt","conteudo":"PROTOCOLO","agendamento":{"id":2,"clienteId":5,"barbeariaId":1,"data":"2025-06-01T09:00:00"}}`

func TestHandle_Success(t *testing.T) {
	svc := &mockService{}
	svc.On("Save", mock.Anything, &models.SaveRequest{
		Protocol: "AGD-1-2",
		FileName: "AGD-1-2.txt",
		Content:  "PROTOCOLO",
		Appointment: models.AppointmentRef{
			ID: 2, CustomerID: 5, ShopID: 1, DateTime: "2025-06-01T09:00:00",
		},
	}).Return(&models.SaveResult{
		Protocol:     "AGD-1-2",
		FileName:     "AGD-1-2.txt",
		Path:         "uploads/agendamentos/AGD-1-2/AGD-1-2.txt",
		URL:          "/uploads/agendamentos/AGD-1-2/AGD-1-2.txt",
		StorageType:  "local",
		StorageError: "access denied",
		SavedAt:      time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/agendamentos/exportar", strings.NewReader(body))
	rec := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["sucesso"])
	assert.Equal(t, "local", resp["storageType"])
	assert.Equal(t, "access denied", resp["s3Error"])
	assert.Equal(t, "uploads/agendamentos/AGD-1-2/AGD-1-2.txt", resp["caminho"])
	assert.Equal(t, "2025-06-01T09:00:00.000Z", resp["timestamp"])
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"invalid input", fmt.Errorf("%w: protocolo is required", documents.ErrInvalidInput),
			http.StatusBadRequest, msgMissingFields},
		{"unsafe file name", fmt.Errorf("%w: %w: bad key", documents.ErrInvalidInput, documents.ErrUnsafeName),
			http.StatusBadRequest, msgInvalidFileName},
		{"storage failure", fmt.Errorf("%w: disk full", documents.ErrStorage), http.StatusInternalServerError, msgSaveFailed},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, msgSaveFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			svc.On("Save", mock.Anything, mock.Anything).Return(nil, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/api/agendamentos/exportar", strings.NewReader(body))
			rec := httptest.NewRecorder()

			NewHandler(svc, nopLogger{}).Handle(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var resp ExportResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantError, resp.Error)
		})
	}
}

func TestHandle_InvalidBody(t *testing.T) {
	svc := &mockService{}
	req := httptest.NewRequest(http.MethodPost, "/api/agendamentos/exportar", strings.NewReader(`not json`))
	rec := httptest.NewRecorder()

	NewHandler(svc, nopLogger{}).Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
