package domain

import (
	"strings"
	"time"
)

// Appointment is a scheduled visit of a customer to a shop.
// ID is zero until the backend assigns one.
type Appointment struct {
	ID         int64
	ShopID     int64
	CustomerID int64
	DateTime   time.Time
	Notes      string
}

// AppointmentBundle is everything needed to confirm and document a booking.
type AppointmentBundle struct {
	Customer    *Customer
	Appointment *Appointment
	Service     *Service
	Shop        *Shop
}

// FormatLocalDateTime renders t as seconds-precision ISO local time (wall clock, no zone).
func FormatLocalDateTime(t time.Time) string {
	return t.Format(LocalDateTimeFormat)
}

// NormalizeFormDateTime appends ":00" seconds to a "YYYY-MM-DDTHH:MM" value.
// Values that already carry seconds are returned as is.
func NormalizeFormDateTime(value string) string {
	value = strings.TrimSpace(value)
	if len(value) == len(FormDateTimeFormat) {
		return value + ":00"
	}
	return value
}

// ParseDateTime parses an RFC 3339 timestamp, or a local wall-clock value
// ("YYYY-MM-DDTHH:MM[:SS]") interpreted in loc.
func ParseDateTime(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	for _, layout := range []string{LocalDateTimeFormat, "2006-01-02T15:04:05.999999999", FormDateTimeFormat} {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDateTime
}
