package get_config

import (
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
)

type Handler struct {
	response *ConfigResponse
}

func NewHandler(cfg RuntimeConfig) *Handler {
	return &Handler{response: FromRuntimeConfig(cfg)}
}

// Handle GET /api/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.response)
}
