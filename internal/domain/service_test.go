package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestService_Setters(t *testing.T) {
	s := NewService(7, "Corte")
	assert.Equal(t, DefaultServiceDurationMinutes, s.DurationMinutes())

	assert.NoError(t, s.SetPrice(decimal.RequireFromString("45.00")))
	assert.ErrorIs(t, s.SetPrice(decimal.NewFromInt(-1)), ErrNegativePrice)
	assert.True(t, s.Price().Equal(decimal.NewFromInt(45)))

	assert.NoError(t, s.SetDurationMinutes(0))
	assert.ErrorIs(t, s.SetDurationMinutes(-5), ErrNegativeDuration)
	assert.Equal(t, 0, s.DurationMinutes())
}

func TestService_StaffNamesAreCopied(t *testing.T) {
	names := []string{"João", "Pedro"}
	s := NewService(1, "Barba")
	s.SetStaffNames(names)

	names[0] = "changed"
	got := s.StaffNames()
	assert.Equal(t, []string{"João", "Pedro"}, got)

	got[1] = "changed"
	assert.Equal(t, []string{"João", "Pedro"}, s.StaffNames())
}
