package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор Prometheus метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPInFlight        prometheus.Gauge

	AppointmentsTotal   *prometheus.CounterVec
	CustomerResolutions *prometheus.CounterVec
	ExportsTotal        *prometheus.CounterVec
	RemoteSavesTotal    *prometheus.CounterVec
	StorageSavesTotal   *prometheus.CounterVec
	BackendRequests     *prometheus.CounterVec
}

// New создает метрики и регистрирует их в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в переданном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests.",
				ConstLabels: constLabels,
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request latency.",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		HTTPInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name:        "http_requests_in_flight",
				Help:        "Number of HTTP requests being served.",
				ConstLabels: constLabels,
			},
		),
		AppointmentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "appointments_submitted_total",
				Help:        "Appointment submissions by outcome.",
				ConstLabels: constLabels,
			},
			[]string{"outcome"},
		),
		CustomerResolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "customer_resolutions_total",
				Help:        "Customer resolution results (created, reused, conflict_reused).",
				ConstLabels: constLabels,
			},
			[]string{"result"},
		),
		ExportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "documents_exported_total",
				Help:        "Confirmation documents exported by format and result.",
				ConstLabels: constLabels,
			},
			[]string{"format", "result"},
		),
		RemoteSavesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "documents_remote_saves_total",
				Help:        "Remote saves of confirmation documents through the storage proxy.",
				ConstLabels: constLabels,
			},
			[]string{"result"},
		),
		StorageSavesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "storage_saves_total",
				Help:        "Documents persisted by the storage proxy, by backend and result.",
				ConstLabels: constLabels,
			},
			[]string{"backend", "result"},
		),
		BackendRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "backend_requests_total",
				Help:        "Requests issued to the booking backend.",
				ConstLabels: constLabels,
			},
			[]string{"method", "status"},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPInFlight,
		m.AppointmentsTotal,
		m.CustomerResolutions,
		m.ExportsTotal,
		m.RemoteSavesTotal,
		m.StorageSavesTotal,
		m.BackendRequests,
	)

	return m
}

// IncAppointment учитывает результат отправки записи
func (m *Metrics) IncAppointment(outcome string) {
	if m == nil {
		return
	}
	m.AppointmentsTotal.WithLabelValues(outcome).Inc()
}

// IncCustomerResolution учитывает способ получения клиента
func (m *Metrics) IncCustomerResolution(result string) {
	if m == nil {
		return
	}
	m.CustomerResolutions.WithLabelValues(result).Inc()
}

// IncExport учитывает экспорт документа
func (m *Metrics) IncExport(format, result string) {
	if m == nil {
		return
	}
	m.ExportsTotal.WithLabelValues(format, result).Inc()
}

// IncRemoteSave учитывает попытку сохранения через storage proxy
func (m *Metrics) IncRemoteSave(result string) {
	if m == nil {
		return
	}
	m.RemoteSavesTotal.WithLabelValues(result).Inc()
}

// IncStorageSave учитывает сохранение документа в хранилище
func (m *Metrics) IncStorageSave(backend, result string) {
	if m == nil {
		return
	}
	m.StorageSavesTotal.WithLabelValues(backend, result).Inc()
}

// IncBackendRequest учитывает запрос к backend API
func (m *Metrics) IncBackendRequest(method, status string) {
	if m == nil {
		return
	}
	m.BackendRequests.WithLabelValues(method, status).Inc()
}
