package create_appointment

import (
	"bytes"
	"encoding/json"
	"net/url"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	createAppointment "github.com/m04kA/SMC-BarberBooking/internal/usecase/create_appointment"
)

// formValue строка формы; в JSON допускает и число
type formValue string

func (v *formValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = formValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = formValue(n.String())
	return nil
}

// CreateAppointmentRequest поля формы записи
type CreateAppointmentRequest struct {
	ShopID     formValue `json:"barbearia"`
	ServiceID  formValue `json:"servico"`
	DateTime   formValue `json:"datetime"`
	Notes      formValue `json:"observacoes"`
	Name       formValue `json:"nome"`
	NationalID formValue `json:"cpf"`
	Phone      formValue `json:"telefone"`
	Email      formValue `json:"email"`
	Address    formValue `json:"endereco"`
	Format     formValue `json:"formato"`
}

// fromForm заполняет запрос из application/x-www-form-urlencoded
func fromForm(form url.Values) *CreateAppointmentRequest {
	return &CreateAppointmentRequest{
		ShopID:     formValue(form.Get("barbearia")),
		ServiceID:  formValue(form.Get("servico")),
		DateTime:   formValue(form.Get("datetime")),
		Notes:      formValue(form.Get("observacoes")),
		Name:       formValue(form.Get("nome")),
		NationalID: formValue(form.Get("cpf")),
		Phone:      formValue(form.Get("telefone")),
		Email:      formValue(form.Get("email")),
		Address:    formValue(form.Get("endereco")),
		Format:     formValue(form.Get("formato")),
	}
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() *createAppointment.Request {
	return &createAppointment.Request{
		ShopID:       string(r.ShopID),
		ServiceID:    string(r.ServiceID),
		DateTime:     string(r.DateTime),
		Notes:        string(r.Notes),
		CustomerName: string(r.Name),
		NationalID:   string(r.NationalID),
		Phone:        string(r.Phone),
		Email:        string(r.Email),
		Address:      string(r.Address),
		Format:       string(r.Format),
	}
}

type AppointmentResponse struct {
	ID          int64  `json:"id"`
	ShopID      int64  `json:"barbeariaId"`
	CustomerID  int64  `json:"clienteId"`
	DateTime    string `json:"data"`
	Description string `json:"descricao"`
}

type CustomerResponse struct {
	ID         int64  `json:"id"`
	Name       string `json:"nome"`
	NationalID string `json:"cpf,omitempty"`
	Phone      string `json:"telefone,omitempty"`
	Email      string `json:"email,omitempty"`
	Address    string `json:"endereco,omitempty"`
}

type ShopResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`
}

type ServiceResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"nome"`
	Price           string `json:"valor"`
	DurationMinutes int    `json:"duracao"`
}

type StorageResponse struct {
	StorageType string `json:"storageType"`
	Path        string `json:"caminho"`
	URL         string `json:"url"`
	S3Error     string `json:"s3Error,omitempty"`
}

type ExportResponse struct {
	FileName    string           `json:"nomeArquivo"`
	Format      string           `json:"formato"`
	LocalPath   string           `json:"caminhoLocal"`
	LocalURL    string           `json:"urlLocal,omitempty"`
	Storage     *StorageResponse `json:"armazenamento,omitempty"`
	RemoteError string           `json:"erroArmazenamento,omitempty"`
}

// CreateAppointmentResponse HTTP response model
type CreateAppointmentResponse struct {
	Protocol       string              `json:"protocolo"`
	CustomerReused bool                `json:"clienteReutilizado"`
	Appointment    AppointmentResponse `json:"agendamento"`
	Customer       CustomerResponse    `json:"cliente"`
	Shop           *ShopResponse       `json:"barbearia,omitempty"`
	Service        *ServiceResponse    `json:"servico,omitempty"`
	Export         *ExportResponse     `json:"exportacao,omitempty"`
	ExportError    string              `json:"erroExportacao,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *CreateAppointmentResponse {
	b := resp.Bundle
	out := &CreateAppointmentResponse{
		Protocol:       resp.Protocol,
		CustomerReused: resp.CustomerReused,
		Appointment: AppointmentResponse{
			ID:          b.Appointment.ID,
			ShopID:      b.Appointment.ShopID,
			CustomerID:  b.Appointment.CustomerID,
			DateTime:    domain.FormatLocalDateTime(b.Appointment.DateTime),
			Description: b.Appointment.Notes,
		},
		Customer: CustomerResponse{
			ID:         b.Customer.ID,
			Name:       b.Customer.Name,
			NationalID: b.Customer.NationalID,
			Phone:      b.Customer.Phone,
			Email:      b.Customer.Email,
			Address:    b.Customer.Address,
		},
	}

	if b.Shop != nil {
		out.Shop = &ShopResponse{ID: b.Shop.ID, Name: b.Shop.Name}
	}
	if b.Service != nil {
		out.Service = &ServiceResponse{
			ID:              b.Service.ID,
			Name:            b.Service.Name,
			Price:           b.Service.Price().StringFixed(2),
			DurationMinutes: b.Service.DurationMinutes(),
		}
	}

	if e := resp.Export; e != nil {
		out.Export = &ExportResponse{
			FileName:    e.FileName,
			Format:      string(e.Format),
			LocalPath:   e.LocalPath,
			LocalURL:    e.LocalURL,
			RemoteError: e.RemoteError,
		}
		if e.Remote != nil {
			out.Export.Storage = &StorageResponse{
				StorageType: e.Remote.StorageType,
				Path:        e.Remote.Path,
				URL:         e.Remote.URL,
				S3Error:     e.Remote.StorageError,
			}
		}
	}
	if resp.ExportError != nil {
		out.ExportError = resp.ExportError.Error()
	}

	return out
}
