package domain

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	nonDigits    = regexp.MustCompile(`\D`)
)

// Customer is a person who books services.
// Customers are deduplicated by the normalized national id (CPF); an empty id is never deduplicated.
type Customer struct {
	ID         int64
	Name       string
	NationalID string // digits only, empty when unknown
	Phone      string
	Email      string
	Address    string
}

// NewCustomer builds a customer running every field through its validated setter.
func NewCustomer(name, nationalID, phone, email, address string) (*Customer, error) {
	c := &Customer{
		Name:    strings.TrimSpace(name),
		Phone:   strings.TrimSpace(phone),
		Address: strings.TrimSpace(address),
	}
	if err := c.SetNationalID(nationalID); err != nil {
		return nil, err
	}
	if err := c.SetEmail(email); err != nil {
		return nil, err
	}
	return c, nil
}

// SetNationalID stores the digits of raw; the result must be empty or exactly 11 digits.
func (c *Customer) SetNationalID(raw string) error {
	digits, err := NormalizeNationalID(raw)
	if err != nil {
		return err
	}
	c.NationalID = digits
	return nil
}

// SetEmail accepts an empty value or text@text.text.
func (c *Customer) SetEmail(email string) error {
	email = strings.TrimSpace(email)
	if email != "" && !ValidEmail(email) {
		return ErrInvalidEmail
	}
	c.Email = email
	return nil
}

// HasNationalID reports whether the customer can be deduplicated.
func (c *Customer) HasNationalID() bool {
	return c.NationalID != ""
}

// NormalizeNationalID strips every non-digit character.
// Blank input normalizes to "" and is accepted; anything else must leave exactly 11 digits.
func NormalizeNationalID(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}
	digits := nonDigits.ReplaceAllString(raw, "")
	if len(digits) != NationalIDLength {
		return "", ErrInvalidNationalID
	}
	return digits, nil
}

// FormatNationalID renders 11 digits as ###.###.###-##; other values are returned unchanged.
func FormatNationalID(nationalID string) string {
	digits := nonDigits.ReplaceAllString(nationalID, "")
	if len(digits) != NationalIDLength {
		return nationalID
	}
	return digits[0:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:11]
}

// ValidEmail reports whether email looks like text@text.text.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
