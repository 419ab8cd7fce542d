package gateway_relay

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/gateway"
)

const (
	errNotConfigured = "API_GATEWAY não configurada"
	msgNotConfigured = "Configure a variável de ambiente API_GATEWAY"
	errGatewayFailed = "Erro ao acessar API Gateway"
)

type Handler struct {
	client GatewayClient
	logger Logger
}

func NewHandler(client GatewayClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle GET /api/gateway/test
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.client.Fetch(r.Context())
	if err != nil {
		if errors.Is(err, gateway.ErrNotConfigured) {
			h.logger.Warn("GET /gateway/test - Gateway url is not configured")
			handlers.RespondJSON(w, http.StatusInternalServerError, handlers.ErrorResponse{
				Error:   errNotConfigured,
				Message: msgNotConfigured,
			})
			return
		}
		h.logger.Error("GET /gateway/test - Gateway request failed: %v", err)
		handlers.RespondJSON(w, http.StatusInternalServerError, handlers.ErrorResponse{
			Error:   errGatewayFailed,
			Message: err.Error(),
		})
		return
	}

	h.logger.Info("GET /gateway/test - Gateway answered %d", result.StatusCode)
	handlers.RespondJSON(w, result.StatusCode, FromGatewayResult(result))
}
