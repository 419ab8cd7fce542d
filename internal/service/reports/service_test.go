package reports

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

type stubLister struct {
	bundles []*domain.AppointmentBundle
	err     error
	calls   int
}

func (s *stubLister) ListByPeriod(_ context.Context, _, _ time.Time) ([]*domain.AppointmentBundle, error) {
	s.calls++
	return s.bundles, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestAppointmentsReport(t *testing.T) {
	at := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	lister := &stubLister{bundles: []*domain.AppointmentBundle{
		{
			Appointment: &domain.Appointment{ID: 42, ShopID: 1, CustomerID: 5, DateTime: at, Notes: "Corte"},
			Customer:    &domain.Customer{ID: 5, Name: "João Silva", NationalID: "12345678900", Phone: "11999990000"},
			Shop:        &domain.Shop{ID: 1, Name: "Barbearia Central"},
		},
		{
			Appointment: &domain.Appointment{ID: 43, DateTime: at.Add(time.Hour)},
		},
	}}

	svc := NewService(lister, nopLogger{})
	data, err := svc.AppointmentsReport(context.Background(), at, at.Add(24*time.Hour))
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, columns, rows[0])
	assert.Equal(t, "AGD-1748768400000-42", rows[1][0])
	assert.Equal(t, "01/06/2025 09:00", rows[1][1])
	assert.Equal(t, "João Silva", rows[1][3])
	assert.Equal(t, "123.456.789-00", rows[1][4])
	assert.Equal(t, "Barbearia Central", rows[1][7])
	assert.Equal(t, "43", rows[2][2])
}

func TestAppointmentsReport_InvalidPeriod(t *testing.T) {
	lister := &stubLister{}
	svc := NewService(lister, nopLogger{})

	now := time.Now()
	_, err := svc.AppointmentsReport(context.Background(), now, now.Add(-time.Hour))

	assert.ErrorIs(t, err, ErrInvalidPeriod)
	assert.Zero(t, lister.calls)
}

func TestAppointmentsReport_BackendError(t *testing.T) {
	cause := errors.New("connection refused")
	svc := NewService(&stubLister{err: cause}, nopLogger{})

	now := time.Now()
	_, err := svc.AppointmentsReport(context.Background(), now, now)

	assert.ErrorIs(t, err, ErrBackend)
	assert.ErrorIs(t, err, cause)
}
