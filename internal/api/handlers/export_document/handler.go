package export_document

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/documents"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgMissingFields      = "Protocolo, nome do arquivo e conteúdo são obrigatórios"
	msgInvalidFileName    = "Nome de arquivo inválido"
	msgSaveFailed         = "Erro ao salvar arquivo"
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

// Handle POST /api/agendamentos/exportar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ExportRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /agendamentos/exportar - Invalid request body: %v", err)
		respondFailure(w, http.StatusBadRequest, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Save(r.Context(), req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, documents.ErrUnsafeName):
			h.logger.Warn("POST /agendamentos/exportar - Unsafe name: protocol=%q, file=%q", req.Protocol, req.FileName)
			respondFailure(w, http.StatusBadRequest, msgInvalidFileName)
		case errors.Is(err, documents.ErrInvalidInput):
			h.logger.Warn("POST /agendamentos/exportar - Invalid input: protocol=%q, file=%q: %v", req.Protocol, req.FileName, err)
			respondFailure(w, http.StatusBadRequest, msgMissingFields)
		default:
			h.logger.Error("POST /agendamentos/exportar - Failed to save: protocol=%s, error=%v", req.Protocol, err)
			respondFailure(w, http.StatusInternalServerError, msgSaveFailed)
		}
		return
	}

	h.logger.Info("POST /agendamentos/exportar - Saved: protocol=%s, storage=%s", result.Protocol, result.StorageType)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResult(result))
}

func respondFailure(w http.ResponseWriter, status int, message string) {
	handlers.RespondJSON(w, status, &ExportResponse{
		Success:   false,
		Error:     message,
		Timestamp: handlers.Timestamp(time.Now()),
	})
}
