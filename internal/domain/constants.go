package domain

// Default values
const (
	DefaultServiceDurationMinutes = 30
	DefaultAppointmentNotes       = "Agendamento de serviço"
)

// Time format constants
const (
	LocalDateTimeFormat = "2006-01-02T15:04:05" // seconds-precision ISO local, wire format of the backend
	FormDateTimeFormat  = "2006-01-02T15:04"    // datetime-local form value
	DisplayDateTime     = "02/01/2006 15:04"    // pt-BR
	DisplayTimestamp    = "02/01/2006 15:04:05" // pt-BR, document emission time
)

const (
	NationalIDLength = 11
	ProtocolPrefix   = "AGD"
)
