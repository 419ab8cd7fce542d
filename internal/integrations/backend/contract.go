package backend

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder учитывает запросы к backend API
type MetricsRecorder interface {
	IncBackendRequest(method, status string)
}

type nopMetrics struct{}

func (nopMetrics) IncBackendRequest(string, string) {}
