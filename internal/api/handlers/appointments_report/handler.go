package appointments_report

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/service/reports"
)

const (
	dateFormat = "2006-01-02"

	msgInvalidPeriod      = "Período inválido. Use inicio e fim no formato YYYY-MM-DD ou YYYY-MM-DDTHH:MM"
	msgBackendUnavailable = "Erro ao buscar agendas por período"
)

type Handler struct {
	service ReportService
	loc     *time.Location
	logger  Logger
}

func NewHandler(service ReportService, loc *time.Location, logger Logger) *Handler {
	if loc == nil {
		loc = time.Local
	}
	return &Handler{
		service: service,
		loc:     loc,
		logger:  logger,
	}
}

// Handle GET /api/v1/reports/appointments?inicio=&fim=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, errFrom := h.parseBound(q.Get("inicio"), false)
	to, errTo := h.parseBound(q.Get("fim"), true)
	if errFrom != nil || errTo != nil {
		h.logger.Warn("GET /reports/appointments - Invalid period: inicio=%q, fim=%q", q.Get("inicio"), q.Get("fim"))
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	data, err := h.service.AppointmentsReport(r.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrInvalidPeriod):
			handlers.RespondBadRequest(w, msgInvalidPeriod)
		case errors.Is(err, reports.ErrBackend):
			h.logger.Error("GET /reports/appointments - Backend failure: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgBackendUnavailable)
		default:
			h.logger.Error("GET /reports/appointments - Failed to build report: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	fileName := fmt.Sprintf("agendamentos_%s_%s.xlsx", from.Format(dateFormat), to.Format(dateFormat))
	w.Header().Set("Content-Type", reports.ContentType)
	w.Header().Set("Content-Disposition", handlers.Attachment(fileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// parseBound принимает дату или дату со временем; дата без времени
// для конца периода означает конец дня
func (h *Handler) parseBound(value string, end bool) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty bound")
	}
	if d, err := time.ParseInLocation(dateFormat, value, h.loc); err == nil {
		if end {
			return d.Add(24*time.Hour - time.Second), nil
		}
		return d, nil
	}
	return time.ParseInLocation(domain.LocalDateTimeFormat, domain.NormalizeFormDateTime(value), h.loc)
}
