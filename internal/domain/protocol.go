package domain

import (
	"fmt"
	"strconv"
	"time"
)

// Protocol builds the confirmation protocol AGD-<epochMillis>-<id>.
// When the appointment has no id yet the millis are repeated, so two unsaved
// appointments at the same instant share a protocol.
func Protocol(appointmentID int64, at time.Time) string {
	millis := at.UnixMilli()
	suffix := strconv.FormatInt(millis, 10)
	if appointmentID > 0 {
		suffix = strconv.FormatInt(appointmentID, 10)
	}
	return fmt.Sprintf("%s-%d-%s", ProtocolPrefix, millis, suffix)
}

// ProtocolFromString parses the datetime in loc and builds the protocol.
func ProtocolFromString(appointmentID int64, dateTime string, loc *time.Location) (string, error) {
	at, err := ParseDateTime(dateTime, loc)
	if err != nil {
		return "", err
	}
	return Protocol(appointmentID, at), nil
}
