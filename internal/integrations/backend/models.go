package backend

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// shopDTO barbearia в формате backend API
type shopDTO struct {
	ID       int64  `json:"id,omitempty"`
	Nome     string `json:"nome"`
	CNPJ     string `json:"cnpj,omitempty"`
	Telefone string `json:"telefone,omitempty"`
	Email    string `json:"email,omitempty"`
	Endereco string `json:"endereco,omitempty"`
}

// customerDTO cliente в формате backend API
type customerDTO struct {
	ID       int64  `json:"id,omitempty"`
	Nome     string `json:"nome"`
	CPF      string `json:"cpf,omitempty"`
	Telefone string `json:"telefone,omitempty"`
	Email    string `json:"email,omitempty"`
	Endereco string `json:"endereco,omitempty"`
}

// serviceDTO serviço в формате backend API
type serviceDTO struct {
	ID           int64       `json:"id,omitempty"`
	Nome         string      `json:"nome"`
	Valor        json.Number `json:"valor"`
	Funcionarios []string    `json:"funcionarios,omitempty"`
	Duracao      *int        `json:"duracao,omitempty"`
	Descricao    string      `json:"descricao,omitempty"`
}

// appointmentDTO agenda в формате backend API.
// Cliente и Barbearia приходят в ответах со связями, в запросах не передаются.
type appointmentDTO struct {
	ID        int64        `json:"id,omitempty"`
	Data      string       `json:"data"`
	Descricao string       `json:"descricao,omitempty"`
	Cliente   *customerDTO `json:"cliente,omitempty"`
	Barbearia *shopDTO     `json:"barbearia,omitempty"`
}

func shopToDTO(s *domain.Shop) shopDTO {
	return shopDTO{
		ID:       s.ID,
		Nome:     s.Name,
		CNPJ:     s.TaxID,
		Telefone: s.Phone,
		Email:    s.Email,
		Endereco: s.Address,
	}
}

func shopFromDTO(d *shopDTO) *domain.Shop {
	return &domain.Shop{
		ID:      d.ID,
		Name:    d.Nome,
		TaxID:   d.CNPJ,
		Phone:   d.Telefone,
		Email:   d.Email,
		Address: d.Endereco,
	}
}

func customerToDTO(c *domain.Customer) customerDTO {
	return customerDTO{
		ID:       c.ID,
		Nome:     c.Name,
		CPF:      c.NationalID,
		Telefone: c.Phone,
		Email:    c.Email,
		Endereco: c.Address,
	}
}

// customerFromDTO приводит CPF к цифрам; нестандартное значение от backend сохраняется как есть
func customerFromDTO(d *customerDTO) *domain.Customer {
	nationalID, err := domain.NormalizeNationalID(d.CPF)
	if err != nil {
		nationalID = d.CPF
	}
	return &domain.Customer{
		ID:         d.ID,
		Name:       d.Nome,
		NationalID: nationalID,
		Phone:      d.Telefone,
		Email:      d.Email,
		Address:    d.Endereco,
	}
}

func serviceToDTO(s *domain.Service) serviceDTO {
	duration := s.DurationMinutes()
	return serviceDTO{
		ID:           s.ID,
		Nome:         s.Name,
		Valor:        json.Number(s.Price().String()),
		Funcionarios: s.StaffNames(),
		Duracao:      &duration,
		Descricao:    s.Description,
	}
}

func serviceFromDTO(d *serviceDTO) (*domain.Service, error) {
	s := domain.NewService(d.ID, d.Nome)
	s.Description = d.Descricao
	s.SetStaffNames(d.Funcionarios)

	if d.Valor != "" {
		price, err := decimal.NewFromString(d.Valor.String())
		if err != nil {
			return nil, fmt.Errorf("%w: service id=%d: price %q: %v", ErrInvalidResponse, d.ID, d.Valor, err)
		}
		if err := s.SetPrice(price); err != nil {
			return nil, fmt.Errorf("%w: service id=%d: %v", ErrInvalidResponse, d.ID, err)
		}
	}
	if d.Duracao != nil {
		if err := s.SetDurationMinutes(*d.Duracao); err != nil {
			return nil, fmt.Errorf("%w: service id=%d: %v", ErrInvalidResponse, d.ID, err)
		}
	}
	return s, nil
}

func appointmentToDTO(a *domain.Appointment) appointmentDTO {
	return appointmentDTO{
		ID:        a.ID,
		Data:      domain.FormatLocalDateTime(a.DateTime),
		Descricao: a.Notes,
	}
}

func appointmentFromDTO(d *appointmentDTO, loc *time.Location) (*domain.Appointment, error) {
	a := &domain.Appointment{
		ID:    d.ID,
		Notes: d.Descricao,
	}
	if d.Data != "" {
		at, err := domain.ParseDateTime(d.Data, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: appointment id=%d: data %q", ErrInvalidResponse, d.ID, d.Data)
		}
		a.DateTime = at
	}
	if d.Cliente != nil {
		a.CustomerID = d.Cliente.ID
	}
	if d.Barbearia != nil {
		a.ShopID = d.Barbearia.ID
	}
	return a, nil
}
