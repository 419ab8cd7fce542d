package list_shops

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/catalog"
)

const msgBackendUnavailable = "Erro ao listar barbearias"

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/shops
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shops, err := h.service.ListShops(r.Context())
	if err != nil {
		if errors.Is(err, catalog.ErrBackend) {
			h.logger.Error("GET /shops - Backend failure: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgBackendUnavailable)
			return
		}
		h.logger.Error("GET /shops - Failed to list shops: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /shops - Returned %d shops", len(shops))
	handlers.RespondJSON(w, http.StatusOK, shops)
}
