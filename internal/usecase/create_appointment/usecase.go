package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// UseCase сценарий отправки формы записи
type UseCase struct {
	customers     CustomerClient
	appointments  AppointmentClient
	shops         ShopClient
	services      ServiceClient
	exporter      DocumentExporter
	metrics       MetricsRecorder
	lookupPolicy  CustomerLookupPolicy
	submitTimeout time.Duration
	loc           *time.Location
	logger        Logger
}

// NewUseCase создает новый экземпляр use case; exporter и metrics могут быть nil
func NewUseCase(
	customers CustomerClient,
	appointments AppointmentClient,
	shops ShopClient,
	services ServiceClient,
	exporter DocumentExporter,
	metrics MetricsRecorder,
	opts Options,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	return &UseCase{
		customers:     customers,
		appointments:  appointments,
		shops:         shops,
		services:      services,
		exporter:      exporter,
		metrics:       metrics,
		lookupPolicy:  opts.LookupPolicy,
		submitTimeout: opts.SubmitTimeout,
		loc:           loc,
		logger:        logger,
	}
}

// Execute выполняет запись: валидация, клиент, запись, сборка результата, экспорт.
// Ошибка экспорта не прерывает запись и возвращается в Response.ExportError.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	in, err := validateRequest(req, uc.loc)
	if err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		uc.metrics.IncAppointment("invalid")
		return nil, err
	}

	uc.logger.Info("CreateAppointment: shop=%d, service=%d, datetime=%s, format=%s",
		in.shopID, in.serviceID, domain.FormatLocalDateTime(in.dateTime), in.format)

	if uc.submitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.submitTimeout)
		defer cancel()
	}

	// 2. Получаем или создаем клиента
	customer, resolution, err := uc.resolveCustomer(ctx, in.shopID, in.customer)
	if err != nil {
		uc.recordFailure(err)
		return nil, err
	}
	uc.metrics.IncCustomerResolution(resolution)

	// 3. Создаем запись, связанную с барбершопом и клиентом
	appt, err := uc.appointments.CreateForShopAndCustomer(ctx, in.shopID, customer.ID, &domain.Appointment{
		ShopID:     in.shopID,
		CustomerID: customer.ID,
		DateTime:   in.dateTime,
		Notes:      in.notes,
	})
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to create appointment for shop=%d, customer=%d: %v",
			in.shopID, customer.ID, err)
		uc.recordFailure(err)
		return nil, fmt.Errorf("%w: create appointment: %w", ErrBackend, err)
	}
	fillAppointment(appt, in, customer.ID)

	// 4. Получаем барбершоп и услугу для документа
	shop, err := uc.shops.GetByID(ctx, in.shopID)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get shop id=%d: %v", in.shopID, err)
		uc.recordFailure(err)
		return nil, fmt.Errorf("%w: get shop: %w", ErrBackend, err)
	}

	service, err := uc.services.GetByID(ctx, in.serviceID)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", in.serviceID, err)
		uc.recordFailure(err)
		return nil, fmt.Errorf("%w: get service: %w", ErrBackend, err)
	}

	resp := &Response{
		Bundle: &domain.AppointmentBundle{
			Customer:    customer,
			Appointment: appt,
			Service:     service,
			Shop:        shop,
		},
		Protocol:       domain.Protocol(appt.ID, appt.DateTime),
		CustomerReused: resolution != resolutionCreated,
	}

	uc.logger.Info("CreateAppointment: appointment id=%d created, protocol=%s", appt.ID, resp.Protocol)

	// 5. Экспорт документа (best effort)
	if uc.exporter != nil {
		result, err := uc.exporter.Export(ctx, resp.Bundle, in.format)
		if err != nil {
			uc.logger.Error("CreateAppointment: export failed for protocol=%s: %v", resp.Protocol, err)
			resp.ExportError = err
		} else {
			resp.Export = result
		}
	}

	uc.metrics.IncAppointment("success")
	return resp, nil
}

// fillAppointment дополняет ответ backend значениями из формы
func fillAppointment(appt *domain.Appointment, in *input, customerID int64) {
	if appt.DateTime.IsZero() {
		appt.DateTime = in.dateTime
	}
	if appt.Notes == "" {
		appt.Notes = in.notes
	}
	if appt.ShopID == 0 {
		appt.ShopID = in.shopID
	}
	if appt.CustomerID == 0 {
		appt.CustomerID = customerID
	}
}

func (uc *UseCase) recordFailure(err error) {
	var conflict *ConflictError
	if errors.As(err, &conflict) {
		uc.metrics.IncAppointment("conflict")
		return
	}
	uc.metrics.IncAppointment("backend_error")
}
