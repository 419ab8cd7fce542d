package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeNationalID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "formatted", raw: "123.456.789-00", want: "12345678900"},
		{name: "digits only", raw: "12345678900", want: "12345678900"},
		{name: "spaces around", raw: "  123 456 789 00 ", want: "12345678900"},
		{name: "blank", raw: "   ", want: ""},
		{name: "too short", raw: "123.456.789", wantErr: ErrInvalidNationalID},
		{name: "too long", raw: "123456789001", wantErr: ErrInvalidNationalID},
		{name: "letters only", raw: "abc", wantErr: ErrInvalidNationalID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeNationalID(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatNationalID(t *testing.T) {
	assert.Equal(t, "123.456.789-00", FormatNationalID("12345678900"))
	assert.Equal(t, "1234", FormatNationalID("1234"))
	assert.Equal(t, "", FormatNationalID(""))
}

func TestNewCustomer(t *testing.T) {
	c, err := NewCustomer(" Ana ", "123.456.789-00", "", "ana@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, "Ana", c.Name)
	assert.Equal(t, "12345678900", c.NationalID)
	assert.True(t, c.HasNationalID())

	_, err = NewCustomer("Ana", "", "", "ana-at-example", "")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	c, err = NewCustomer("Bruno", "", "", "", "")
	require.NoError(t, err)
	assert.False(t, c.HasNationalID())
}

func TestShop_SetTaxID(t *testing.T) {
	var s Shop
	assert.NoError(t, s.SetTaxID("12.345.678/0001-90"))
	assert.NoError(t, s.SetTaxID("12345678000190"))
	assert.NoError(t, s.SetTaxID(""))
	assert.ErrorIs(t, s.SetTaxID("12-345"), ErrInvalidTaxID)
}
