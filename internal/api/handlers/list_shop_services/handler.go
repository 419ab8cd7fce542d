package list_shop_services

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/catalog"
)

const (
	msgInvalidShopID      = "ID da barbearia inválido"
	msgShopNotFound       = "Barbearia não encontrada"
	msgBackendUnavailable = "Erro ao buscar serviços da barbearia"
)

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

// Handle GET /api/v1/shops/{shopId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	shopID, err := strconv.ParseInt(vars["shopId"], 10, 64)
	if err != nil || shopID <= 0 {
		h.logger.Warn("GET /shops/{shopId}/services - Invalid shop ID: %s", vars["shopId"])
		handlers.RespondBadRequest(w, msgInvalidShopID)
		return
	}

	result, err := h.service.ListShopServices(r.Context(), shopID)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidShopID)
		case errors.Is(err, catalog.ErrShopNotFound):
			h.logger.Warn("GET /shops/{shopId}/services - Shop not found: shop_id=%d", shopID)
			handlers.RespondNotFound(w, msgShopNotFound)
		case errors.Is(err, catalog.ErrBackend):
			h.logger.Error("GET /shops/{shopId}/services - Backend failure: shop_id=%d, error=%v", shopID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgBackendUnavailable)
		default:
			h.logger.Error("GET /shops/{shopId}/services - Failed: shop_id=%d, error=%v", shopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
