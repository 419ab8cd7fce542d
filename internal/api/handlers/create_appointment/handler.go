package create_appointment

import (
	"errors"
	"fmt"
	"mime"
	"net/http"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/backend"
	createAppointment "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgShopRequired       = "Selecione uma barbearia"
	msgServiceRequired    = "Selecione um serviço"
	msgDateTimeRequired   = "Escolha data e hora do agendamento"
	msgNameRequired       = "Nome do cliente é obrigatório"
	msgInvalidNationalID  = "CPF inválido. Use o formato 000.000.000-00"
	msgInvalidEmail       = "E-mail inválido"
	msgInvalidFormat      = "Formato de exportação inválido. Use html, csv ou txt"
	msgInvalidField       = "Dados do formulário inválidos"
	msgCustomerConflict   = "CPF já cadastrado, mas o cliente não foi encontrado nesta barbearia"
	msgNotFound           = "Barbearia ou serviço não encontrado"
	msgBackendUnavailable = "Erro ao comunicar com a API de agendamentos"
)

const maxFormMemory = 1 << 20

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(r)
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var (
			validationErr *createAppointment.ValidationError
			conflictErr   *createAppointment.ConflictError
		)
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /appointments - Validation failed: field=%s, reason=%s", validationErr.Field, validationErr.Reason)
			handlers.RespondBadRequest(w, validationMessage(validationErr.Field))

		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /appointments - Customer conflict: shop_id=%d, backend=%q", conflictErr.ShopID, conflictErr.Message)
			handlers.RespondError(w, http.StatusConflict, msgCustomerConflict)

		case errors.Is(err, backend.ErrNotFound):
			h.logger.Warn("POST /appointments - Not found: shop=%s, service=%s: %v", req.ShopID, req.ServiceID, err)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, createAppointment.ErrBackend):
			h.logger.Error("POST /appointments - Backend failure: shop=%s: %v", req.ShopID, err)
			handlers.RespondError(w, http.StatusBadGateway, backendMessage(err))

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: shop=%s, error=%v", req.ShopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created: protocol=%s, appointment_id=%d, customer_reused=%t",
		result.Protocol, result.Bundle.Appointment.ID, result.CustomerReused)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

// decodeRequest принимает JSON или urlencoded форму
func decodeRequest(r *http.Request) (*CreateAppointmentRequest, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		return fromForm(r.PostForm), nil
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxFormMemory); err != nil {
			return nil, err
		}
		return fromForm(r.PostForm), nil
	default:
		var req CreateAppointmentRequest
		if err := handlers.DecodeJSON(r, &req); err != nil {
			return nil, err
		}
		return &req, nil
	}
}

func validationMessage(field string) string {
	switch field {
	case "shopId":
		return msgShopRequired
	case "serviceId":
		return msgServiceRequired
	case "datetime":
		return msgDateTimeRequired
	case "customerName":
		return msgNameRequired
	case "nationalId":
		return msgInvalidNationalID
	case "email":
		return msgInvalidEmail
	case "format":
		return msgInvalidFormat
	default:
		return msgInvalidField
	}
}

func backendMessage(err error) string {
	if msg := backend.Message(err); msg != "" {
		return fmt.Sprintf("%s: %s", msgBackendUnavailable, msg)
	}
	return msgBackendUnavailable
}
