package export_history

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

type RecordResponse struct {
	ID            int64   `json:"id"`
	Protocol      string  `json:"protocolo"`
	FileName      string  `json:"nomeArquivo"`
	StorageType   string  `json:"storageType"`
	Path          string  `json:"caminho"`
	URL           string  `json:"url"`
	S3Error       *string `json:"s3Error"`
	AppointmentID *int64  `json:"agendamentoId,omitempty"`
	CustomerID    *int64  `json:"clienteId,omitempty"`
	ShopID        *int64  `json:"barbeariaId,omitempty"`
	AppointmentAt *string `json:"data,omitempty"`
	CreatedAt     string  `json:"criadoEm"`
}

type HistoryResponse struct {
	Protocol string           `json:"protocolo"`
	Total    int              `json:"total"`
	Records  []RecordResponse `json:"registros"`
}

func FromDomainRecords(protocol string, records []*domain.ExportRecord) *HistoryResponse {
	out := &HistoryResponse{
		Protocol: protocol,
		Total:    len(records),
		Records:  make([]RecordResponse, 0, len(records)),
	}
	for _, rec := range records {
		out.Records = append(out.Records, *FromDomainRecord(rec))
	}
	return out
}

func FromDomainRecord(rec *domain.ExportRecord) *RecordResponse {
	return &RecordResponse{
		ID:            rec.ID,
		Protocol:      rec.Protocol,
		FileName:      rec.FileName,
		StorageType:   rec.StorageType,
		Path:          rec.Path,
		URL:           rec.URL,
		S3Error:       rec.StorageError,
		AppointmentID: rec.AppointmentID,
		CustomerID:    rec.CustomerID,
		ShopID:        rec.ShopID,
		AppointmentAt: rec.AppointmentAt,
		CreatedAt:     rec.CreatedAt.UTC().Format(time.RFC3339),
	}
}
