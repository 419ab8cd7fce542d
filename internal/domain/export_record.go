package domain

import "time"

// ExportRecord is a registry entry of a document persisted by the storage proxy.
type ExportRecord struct {
	ID            int64
	Protocol      string
	FileName      string
	StorageType   string
	Path          string
	URL           string
	StorageError  *string // S3 error when the filesystem fallback was used
	AppointmentID *int64
	CustomerID    *int64
	ShopID        *int64
	AppointmentAt *string // seconds-precision ISO local datetime as sent by the client
	CreatedAt     time.Time
}
