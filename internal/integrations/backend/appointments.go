package backend

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// AppointmentsAPI операции с записями (agendas)
type AppointmentsAPI struct {
	c *Client
}

func (a *AppointmentsAPI) List(ctx context.Context) ([]*domain.Appointment, error) {
	return a.list(ctx, "list appointments", pathAppointments)
}

func (a *AppointmentsAPI) ListByShop(ctx context.Context, shopID int64) ([]*domain.Appointment, error) {
	return a.list(ctx, "list shop appointments", byShop(pathAppointments, shopID))
}

func (a *AppointmentsAPI) ListByCustomer(ctx context.Context, customerID int64) ([]*domain.Appointment, error) {
	return a.list(ctx, "list customer appointments", byCustomer(customerID))
}

// ListByPeriod возвращает записи за период вместе с клиентом и барбершопом.
// Service в элементах не заполняется: backend не возвращает услугу записи.
func (a *AppointmentsAPI) ListByPeriod(ctx context.Context, from, to time.Time) ([]*domain.AppointmentBundle, error) {
	const op = "list appointments by period"
	dtos, err := a.fetch(ctx, op, byPeriod(from, to))
	if err != nil {
		return nil, err
	}
	bundles := make([]*domain.AppointmentBundle, 0, len(dtos))
	for _, d := range dtos {
		appt, err := appointmentFromDTO(d, a.c.loc)
		if err != nil {
			return nil, &Error{Op: op, StatusCode: http.StatusOK, Message: "invalid appointment in response", Err: err}
		}
		bundle := &domain.AppointmentBundle{Appointment: appt}
		if d.Cliente != nil {
			bundle.Customer = customerFromDTO(d.Cliente)
		}
		if d.Barbearia != nil {
			bundle.Shop = shopFromDTO(d.Barbearia)
		}
		bundles = append(bundles, bundle)
	}
	return bundles, nil
}

func (a *AppointmentsAPI) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	const op = "get appointment"
	body, err := a.c.do(ctx, op, http.MethodGet, byID(pathAppointments, id), nil)
	if err != nil {
		return nil, err
	}
	return a.decode(op, body)
}

func (a *AppointmentsAPI) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	return a.send(ctx, "create appointment", http.MethodPost, pathAppointments, appt)
}

// CreateForShop создает запись со связью только с барбершопом
func (a *AppointmentsAPI) CreateForShop(ctx context.Context, shopID int64, appt *domain.Appointment) (*domain.Appointment, error) {
	created, err := a.send(ctx, "create shop appointment", http.MethodPost, byShop(pathAppointments, shopID), appt)
	if err != nil {
		return nil, err
	}
	if created.ShopID == 0 {
		created.ShopID = shopID
	}
	return created, nil
}

// CreateForShopAndCustomer создает запись, связанную с барбершопом и клиентом
func (a *AppointmentsAPI) CreateForShopAndCustomer(ctx context.Context, shopID, customerID int64, appt *domain.Appointment) (*domain.Appointment, error) {
	created, err := a.send(ctx, "create shop customer appointment", http.MethodPost, byShopAndCustomer(shopID, customerID), appt)
	if err != nil {
		return nil, err
	}
	if created.ShopID == 0 {
		created.ShopID = shopID
	}
	if created.CustomerID == 0 {
		created.CustomerID = customerID
	}
	return created, nil
}

func (a *AppointmentsAPI) Update(ctx context.Context, id int64, appt *domain.Appointment) (*domain.Appointment, error) {
	return a.send(ctx, "update appointment", http.MethodPut, byID(pathAppointments, id), appt)
}

func (a *AppointmentsAPI) Delete(ctx context.Context, id int64) error {
	_, err := a.c.do(ctx, "delete appointment", http.MethodDelete, byID(pathAppointments, id), nil)
	return err
}

func (a *AppointmentsAPI) list(ctx context.Context, op, path string) ([]*domain.Appointment, error) {
	dtos, err := a.fetch(ctx, op, path)
	if err != nil {
		return nil, err
	}
	appts := make([]*domain.Appointment, 0, len(dtos))
	for _, d := range dtos {
		appt, err := appointmentFromDTO(d, a.c.loc)
		if err != nil {
			return nil, &Error{Op: op, StatusCode: http.StatusOK, Message: "invalid appointment in response", Err: err}
		}
		appts = append(appts, appt)
	}
	return appts, nil
}

func (a *AppointmentsAPI) fetch(ctx context.Context, op, path string) ([]*appointmentDTO, error) {
	body, err := a.c.do(ctx, op, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[appointmentDTO](a.c, op, body)
}

func (a *AppointmentsAPI) send(ctx context.Context, op, method, path string, appt *domain.Appointment) (*domain.Appointment, error) {
	body, err := a.c.do(ctx, op, method, path, appointmentToDTO(appt))
	if err != nil {
		return nil, err
	}
	return a.decode(op, body)
}

func (a *AppointmentsAPI) decode(op string, body []byte) (*domain.Appointment, error) {
	d, err := decodeOne[appointmentDTO](op, http.StatusOK, body)
	if err != nil {
		return nil, err
	}
	appt, err := appointmentFromDTO(d, a.c.loc)
	if err != nil {
		return nil, &Error{Op: op, StatusCode: http.StatusOK, Message: "invalid appointment in response", Err: err}
	}
	return appt, nil
}
