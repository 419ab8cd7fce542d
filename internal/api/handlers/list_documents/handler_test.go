package list_documents

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
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

func (m *mockService) List(ctx context.Context, prefix string, maxKeys int) (*models.ListResult, error) {
	args := m.Called(ctx, prefix, maxKeys)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ListResult), args.Error(1)
}

func (m *mockService) Get(ctx context.Context, key string) (*models.Document, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Document), args.Error(1)
}

func (m *mockService) GetByProtocol(ctx context.Context, protocol string) (*models.ProtocolResult, error) {
	args := m.Called(ctx, protocol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProtocolResult), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Error     string          `json:"error"`
	Timestamp string          `json:"timestamp"`
}

func serve(t *testing.T, svc DocumentService, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	NewHandler(svc, nopLogger{}).Handle(rec, req)

	var env envelope
	if rec.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

const key = "agendamentos/AGD-1-2/AGD-1-2.html"

func TestHandle_ListDefaults(t *testing.T) {
	svc := &mockService{}
	svc.On("List", mock.Anything, "", 0).Return(&models.ListResult{
		Bucket: "barber-docs",
		Prefix: "agendamentos/",
		Total:  1,
		Files: []models.FileInfo{{
			Key:          key,
			Size:         120,
			LastModified: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
			URL:          "https://barber-docs.s3.us-east-1.amazonaws.com/" + key,
			Protocol:     "AGD-1-2",
		}},
	}, nil)

	rec, env := serve(t, svc, "/api/gateway/documents")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.NotEmpty(t, env.Timestamp)

	var data ListResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, 1, data.Total)
	assert.Equal(t, "AGD-1-2", data.Files[0].Protocol)
	assert.Equal(t, "2025-06-01T09:00:00Z", data.Files[0].LastModified)
}

func TestHandle_ListWithParams(t *testing.T) {
	svc := &mockService{}
	svc.On("List", mock.Anything, "agendamentos/AGD-1-2/", 5).Return(&models.ListResult{Prefix: "agendamentos/AGD-1-2/"}, nil)

	rec, _ := serve(t, svc, "/api/gateway/documents?action=list&prefix=agendamentos/AGD-1-2/&maxKeys=5")

	assert.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestHandle_InvalidMaxKeys(t *testing.T) {
	rec, env := serve(t, &mockService{}, "/api/gateway/documents?maxKeys=abc")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, msgInvalidMaxKeys, env.Error)
}

func TestHandle_GetByKey(t *testing.T) {
	svc := &mockService{}
	svc.On("Get", mock.Anything, key).Return(&models.Document{
		Key: key, ContentType: "text/html; charset=utf-8", Content: "<html></html>", Size: 13,
	}, nil)

	rec, env := serve(t, svc, "/api/gateway/documents?action=get&key="+key)

	require.Equal(t, http.StatusOK, rec.Code)
	var doc DocumentResponse
	require.NoError(t, json.Unmarshal(env.Data, &doc))
	assert.Equal(t, "<html></html>", doc.Content)
	assert.Equal(t, "text/html; charset=utf-8", doc.ContentType)
}

func TestHandle_DownloadByKey(t *testing.T) {
	svc := &mockService{}
	svc.On("Get", mock.Anything, key).Return(&models.Document{
		Key: key, ContentType: "text/html; charset=utf-8", Content: "<html></html>",
	}, nil)

	rec, _ := serve(t, svc, "/api/gateway/documents?action=download&key="+key)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<html></html>", rec.Body.String())
	assert.Equal(t, "attachment; filename=AGD-1-2.html", rec.Header().Get("Content-Disposition"))
}

func TestHandle_GetNotFound(t *testing.T) {
	svc := &mockService{}
	svc.On("Get", mock.Anything, key).Return(nil, fmt.Errorf("%w: %s", documents.ErrDocumentNotFound, key))

	rec, env := serve(t, svc, "/api/gateway/documents?action=get&key="+key)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, msgFileNotFound, env.Error)
}

func TestHandle_GetByProtocol(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := &mockService{}
		svc.On("GetByProtocol", mock.Anything, "AGD-1-2").Return(&models.ProtocolResult{
			Protocol: "AGD-1-2",
			Found:    true,
			Total:    1,
			Files:    []models.Document{{Key: key, Content: "x", Protocol: "AGD-1-2"}},
		}, nil)

		rec, env := serve(t, svc, "/api/gateway/documents?action=get&protocolo=AGD-1-2")

		require.Equal(t, http.StatusOK, rec.Code)
		var data ProtocolResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.True(t, data.Found)
		assert.Len(t, data.Files, 1)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &mockService{}
		svc.On("GetByProtocol", mock.Anything, "AGD-9-9").Return(&models.ProtocolResult{Protocol: "AGD-9-9"}, nil)

		rec, env := serve(t, svc, "/api/gateway/documents?action=get&protocolo=AGD-9-9")

		require.Equal(t, http.StatusOK, rec.Code)
		var data ProtocolResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.False(t, data.Found)
		assert.Equal(t, msgNoFilesForProtocol, data.Message)
	})
}

func TestHandle_GetWithoutKeyOrProtocol(t *testing.T) {
	rec, env := serve(t, &mockService{}, "/api/gateway/documents?action=get")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, msgKeyOrProtocolRequired, env.Error)
}

func TestHandle_UnknownAction(t *testing.T) {
	rec, _ := serve(t, &mockService{}, "/api/gateway/documents?action=delete")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
