package models

import (
	"strings"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// ShopResponse барбершоп для списка формы
type ShopResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"nome"`
	TaxID   string `json:"cnpj,omitempty"`
	Phone   string `json:"telefone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"endereco,omitempty"`
}

// ServiceResponse услуга барбершопа для списка формы
type ServiceResponse struct {
	ID              int64    `json:"id"`
	Name            string   `json:"nome"`
	Description     string   `json:"descricao,omitempty"`
	Price           string   `json:"valor"`
	PriceLabel      string   `json:"valorFormatado"`
	DurationMinutes int      `json:"duracao"`
	StaffNames      []string `json:"funcionarios"`
}

// ShopServicesResponse услуги одного барбершопа
type ShopServicesResponse struct {
	Shop     ShopResponse      `json:"barbearia"`
	Services []ServiceResponse `json:"servicos"`
}

func FromDomainShop(s *domain.Shop) ShopResponse {
	return ShopResponse{
		ID:      s.ID,
		Name:    s.Name,
		TaxID:   s.TaxID,
		Phone:   s.Phone,
		Email:   s.Email,
		Address: s.Address,
	}
}

func FromDomainService(s *domain.Service) ServiceResponse {
	price := s.Price().StringFixed(2)
	staff := s.StaffNames()
	if staff == nil {
		staff = []string{}
	}
	return ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           price,
		PriceLabel:      "R$ " + strings.Replace(price, ".", ",", 1),
		DurationMinutes: s.DurationMinutes(),
		StaffNames:      staff,
	}
}
