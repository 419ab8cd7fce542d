package export_history

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/documents"
)

const (
	msgInvalidProtocol  = "Protocolo inválido"
	msgRegistryDisabled = "Histórico de exportações não está habilitado"
	msgNoRecords        = "Nenhuma exportação encontrada para este protocolo"
	msgInvalidRecordID  = "ID de registro inválido"
	msgRecordNotFound   = "Registro de exportação não encontrado"
)

type Handler struct {
	service DocumentService
	logger  Logger
}

func NewHandler(service DocumentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/agendamentos/{protocolo}/historico
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	protocol := mux.Vars(r)["protocolo"]

	records, err := h.service.History(r.Context(), protocol)
	if err != nil {
		switch {
		case errors.Is(err, documents.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidProtocol)
		case errors.Is(err, documents.ErrRegistryDisabled):
			h.logger.Warn("GET /agendamentos/{protocolo}/historico - Registry is disabled")
			handlers.RespondNotFound(w, msgRegistryDisabled)
		default:
			h.logger.Error("GET /agendamentos/{protocolo}/historico - protocol=%s: %v", protocol, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if len(records) == 0 {
		handlers.RespondNotFound(w, msgNoRecords)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainRecords(protocol, records))
}

// HandleRecord GET /api/agendamentos/historico/{id}
func (h *Handler) HandleRecord(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidRecordID)
		return
	}

	record, err := h.service.HistoryRecord(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, documents.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRecordID)
		case errors.Is(err, documents.ErrDocumentNotFound):
			handlers.RespondNotFound(w, msgRecordNotFound)
		case errors.Is(err, documents.ErrRegistryDisabled):
			h.logger.Warn("GET /agendamentos/historico/{id} - Registry is disabled")
			handlers.RespondNotFound(w, msgRegistryDisabled)
		default:
			h.logger.Error("GET /agendamentos/historico/{id} - id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainRecord(record))
}
