package domain

import (
	"regexp"
	"strings"
)

var taxIDPattern = regexp.MustCompile(`^\d{2}\.?\d{3}\.?\d{3}/?\d{4}-?\d{2}$`)

// Shop is a barbershop.
type Shop struct {
	ID      int64
	Name    string
	TaxID   string // CNPJ
	Phone   string
	Email   string
	Address string
}

// SetTaxID accepts an empty value or a CNPJ with or without punctuation.
func (s *Shop) SetTaxID(taxID string) error {
	taxID = strings.TrimSpace(taxID)
	if taxID != "" && !taxIDPattern.MatchString(taxID) {
		return ErrInvalidTaxID
	}
	s.TaxID = taxID
	return nil
}

func (s *Shop) SetEmail(email string) error {
	email = strings.TrimSpace(email)
	if email != "" && !ValidEmail(email) {
		return ErrInvalidEmail
	}
	s.Email = email
	return nil
}
