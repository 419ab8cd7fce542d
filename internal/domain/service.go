package domain

import (
	"github.com/shopspring/decimal"
)

// Service is something a shop offers.
// Price and duration are kept non-negative by their setters; staff names are copied in and out.
type Service struct {
	ID              int64
	Name            string
	Description     string
	price           decimal.Decimal
	durationMinutes int
	staffNames      []string
}

// NewService builds a service with the default duration.
func NewService(id int64, name string) *Service {
	return &Service{
		ID:              id,
		Name:            name,
		durationMinutes: DefaultServiceDurationMinutes,
	}
}

func (s *Service) Price() decimal.Decimal {
	return s.price
}

func (s *Service) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return ErrNegativePrice
	}
	s.price = price
	return nil
}

func (s *Service) DurationMinutes() int {
	return s.durationMinutes
}

func (s *Service) SetDurationMinutes(minutes int) error {
	if minutes < 0 {
		return ErrNegativeDuration
	}
	s.durationMinutes = minutes
	return nil
}

// StaffNames returns a copy of the ordered staff list.
func (s *Service) StaffNames() []string {
	if s.staffNames == nil {
		return nil
	}
	out := make([]string, len(s.staffNames))
	copy(out, s.staffNames)
	return out
}

func (s *Service) SetStaffNames(names []string) {
	if names == nil {
		s.staffNames = nil
		return
	}
	s.staffNames = make([]string, len(names))
	copy(s.staffNames, names)
}
