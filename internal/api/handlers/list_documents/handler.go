package list_documents

import (
	"errors"
	"net/http"
	"path"
	"strconv"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/documents"
)

const (
	actionList     = "list"
	actionGet      = "get"
	actionDownload = "download"

	msgKeyOrProtocolRequired = "Parâmetro \"key\" ou \"protocolo\" é obrigatório para buscar arquivo"
	msgInvalidMaxKeys        = "Parâmetro \"maxKeys\" inválido"
	msgInvalidParameters     = "Parâmetros inválidos"
	msgUnknownAction         = "Ação desconhecida"
	msgFileNotFound          = "Arquivo não encontrado"
	msgListFailed            = "Erro ao listar arquivos"
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

// Handle GET /api/gateway/documents
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	action := q.Get("action")
	if action == "" {
		action = actionList
	}

	switch action {
	case actionList:
		h.list(w, r)
	case actionGet, actionDownload:
		h.get(w, r, action == actionDownload)
	default:
		h.logger.Warn("GET /gateway/documents - Unknown action %q", action)
		handlers.RespondEnvelope(w, http.StatusBadRequest, nil, msgUnknownAction)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	maxKeys := 0
	if raw := q.Get("maxKeys"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			handlers.RespondEnvelope(w, http.StatusBadRequest, nil, msgInvalidMaxKeys)
			return
		}
		maxKeys = n
	}

	result, err := h.service.List(r.Context(), q.Get("prefix"), maxKeys)
	if err != nil {
		h.respondError(w, "list", err)
		return
	}

	h.logger.Info("GET /gateway/documents - Listed %d files, prefix=%s", result.Total, result.Prefix)
	handlers.RespondEnvelope(w, http.StatusOK, FromListResult(result), "")
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request, download bool) {
	q := r.URL.Query()
	key := q.Get("key")
	protocol := q.Get("protocolo")

	switch {
	case key != "":
		doc, err := h.service.Get(r.Context(), key)
		if err != nil {
			h.respondError(w, "get", err)
			return
		}
		if download {
			w.Header().Set("Content-Type", doc.ContentType)
			w.Header().Set("Content-Disposition", handlers.Attachment(path.Base(doc.Key)))
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(doc.Content))
			return
		}
		handlers.RespondEnvelope(w, http.StatusOK, FromDocument(doc), "")

	case protocol != "":
		result, err := h.service.GetByProtocol(r.Context(), protocol)
		if err != nil {
			h.respondError(w, "get by protocol", err)
			return
		}
		handlers.RespondEnvelope(w, http.StatusOK, FromProtocolResult(result), "")

	default:
		handlers.RespondEnvelope(w, http.StatusBadRequest, nil, msgKeyOrProtocolRequired)
	}
}

func (h *Handler) respondError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, documents.ErrInvalidInput):
		h.logger.Warn("GET /gateway/documents - %s: invalid parameters: %v", op, err)
		handlers.RespondEnvelope(w, http.StatusBadRequest, nil, msgInvalidParameters)
	case errors.Is(err, documents.ErrDocumentNotFound):
		h.logger.Warn("GET /gateway/documents - %s: %v", op, err)
		handlers.RespondEnvelope(w, http.StatusNotFound, nil, msgFileNotFound)
	default:
		h.logger.Error("GET /gateway/documents - %s failed: %v", op, err)
		handlers.RespondEnvelope(w, http.StatusInternalServerError, nil, msgListFailed)
	}
}
