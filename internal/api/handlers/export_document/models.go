package export_document

import (
	"github.com/m04kA/SMC-BarberBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BarberBooking/internal/service/documents/models"
)

type AppointmentRef struct {
	ID         int64  `json:"id"`
	CustomerID int64  `json:"clienteId"`
	ShopID     int64  `json:"barbeariaId"`
	DateTime   string `json:"data"`
}

// ExportRequest тело POST /api/agendamentos/exportar
type ExportRequest struct {
	Protocol    string         `json:"protocolo"`
	FileName    string         `json:"nomeArquivo"`
	Content     string         `json:"conteudo"`
	Appointment AppointmentRef `json:"agendamento"`
}

// ExportResponse ответ прокси
type ExportResponse struct {
	Success     bool   `json:"sucesso"`
	Protocol    string `json:"protocolo,omitempty"`
	FileName    string `json:"nomeArquivo,omitempty"`
	Path        string `json:"caminho,omitempty"`
	URL         string `json:"url,omitempty"`
	StorageType string `json:"storageType,omitempty"`
	S3Error     string `json:"s3Error,omitempty"`
	Error       string `json:"erro,omitempty"`
	Timestamp   string `json:"timestamp"`
}

func (r *ExportRequest) ToServiceRequest() *models.SaveRequest {
	return &models.SaveRequest{
		Protocol: r.Protocol,
		FileName: r.FileName,
		Content:  r.Content,
		Appointment: models.AppointmentRef{
			ID:         r.Appointment.ID,
			CustomerID: r.Appointment.CustomerID,
			ShopID:     r.Appointment.ShopID,
			DateTime:   r.Appointment.DateTime,
		},
	}
}

func FromServiceResult(res *models.SaveResult) *ExportResponse {
	return &ExportResponse{
		Success:     true,
		Protocol:    res.Protocol,
		FileName:    res.FileName,
		Path:        res.Path,
		URL:         res.URL,
		StorageType: res.StorageType,
		S3Error:     res.StorageError,
		Timestamp:   handlers.Timestamp(res.SavedAt),
	}
}
