package reports

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

const (
	SheetName   = "Agendamentos"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var columns = []string{
	"Protocolo", "Data/Hora", "ID Agendamento", "Cliente", "CPF", "Telefone",
	"Email", "Barbearia", "CNPJ", "Observações",
}

// Service формирует отчет по записям в формате XLSX
type Service struct {
	appointments AppointmentLister
	logger       Logger
}

// NewService создает сервис отчетов
func NewService(appointments AppointmentLister, logger Logger) *Service {
	return &Service{appointments: appointments, logger: logger}
}

// AppointmentsReport возвращает XLSX со всеми записями периода [from, to]
func (s *Service) AppointmentsReport(ctx context.Context, from, to time.Time) ([]byte, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidPeriod,
			domain.FormatLocalDateTime(from), domain.FormatLocalDateTime(to))
	}

	bundles, err := s.appointments.ListByPeriod(ctx, from, to)
	if err != nil {
		s.logger.Error("AppointmentsReport: failed to list appointments: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrBackend, err)
	}

	data, err := buildWorkbook(bundles)
	if err != nil {
		s.logger.Error("AppointmentsReport: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrBuild, err)
	}

	s.logger.Info("AppointmentsReport: %d appointments from %s to %s",
		len(bundles), domain.FormatLocalDateTime(from), domain.FormatLocalDateTime(to))
	return data, nil
}

func buildWorkbook(bundles []*domain.AppointmentBundle) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}

	// Заголовок
	if err := f.SetSheetRow(SheetName, "A1", &columns); err != nil {
		return nil, err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		endCell, _ := excelize.CoordinatesToCellName(len(columns), 1)
		_ = f.SetCellStyle(SheetName, "A1", endCell, style)
	}

	for i, b := range bundles {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := rowFor(b)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func rowFor(b *domain.AppointmentBundle) []interface{} {
	row := make([]interface{}, len(columns))
	for i := range row {
		row[i] = ""
	}
	appt := b.Appointment
	row[0] = domain.Protocol(appt.ID, appt.DateTime)
	row[1] = appt.DateTime.Format(domain.DisplayDateTime)
	row[2] = appt.ID
	if c := b.Customer; c != nil {
		row[3] = c.Name
		row[4] = domain.FormatNationalID(c.NationalID)
		row[5] = c.Phone
		row[6] = c.Email
	}
	if sh := b.Shop; sh != nil {
		row[7] = sh.Name
		row[8] = sh.TaxID
	}
	row[9] = appt.Notes
	return row
}
