package storageproxy

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

func TestSaveDocument_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, ExportPath, r.URL.Path)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "AGD-1-2", body["protocolo"])
		assert.Equal(t, "AGD-1-2.html", body["nomeArquivo"])
		agendamento := body["agendamento"].(map[string]interface{})
		assert.Equal(t, float64(2), agendamento["id"])
		assert.Equal(t, float64(9), agendamento["clienteId"])

		_, _ = io.WriteString(w, `{"sucesso":true,"protocolo":"AGD-1-2","nomeArquivo":"AGD-1-2.html","storageType":"s3","url":"https://b.s3.us-east-1.amazonaws.com/x"}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nil, logger.NewNop())
	resp, err := client.SaveDocument(context.Background(), &SaveRequest{
		Protocol: "AGD-1-2",
		FileName: "AGD-1-2.html",
		Content:  "<html></html>",
		Appointment: AppointmentRef{
			ID:         2,
			CustomerID: 9,
			ShopID:     1,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "s3", resp.StorageType)
}

func TestSaveDocument_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"erro":"Dados incompletos"}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nil, logger.NewNop())
	_, err := client.SaveDocument(context.Background(), &SaveRequest{})
	assert.ErrorIs(t, err, ErrRejected)
}

func TestSaveDocument_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nil, logger.NewNop())
	_, err := client.SaveDocument(context.Background(), &SaveRequest{Protocol: "p", FileName: "f", Content: "c"})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
