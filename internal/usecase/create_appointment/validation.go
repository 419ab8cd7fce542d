package create_appointment

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// validateRequest проверяет форму до любых обращений к backend
func validateRequest(req *Request, loc *time.Location) (*input, error) {
	if req == nil {
		return nil, &ValidationError{Field: "request", Reason: "is required"}
	}

	shopID, err := parseID("shopId", req.ShopID)
	if err != nil {
		return nil, err
	}

	serviceID, err := parseID("serviceId", req.ServiceID)
	if err != nil {
		return nil, err
	}

	rawDateTime := strings.TrimSpace(req.DateTime)
	if rawDateTime == "" {
		return nil, &ValidationError{Field: "datetime", Reason: "is required"}
	}
	dateTime, err := time.ParseInLocation(domain.LocalDateTimeFormat, domain.NormalizeFormDateTime(rawDateTime), loc)
	if err != nil {
		return nil, &ValidationError{Field: "datetime", Reason: "must be YYYY-MM-DDTHH:MM[:SS]"}
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, &ValidationError{Field: "customerName", Reason: "is required"}
	}

	customer, err := domain.NewCustomer(req.CustomerName, req.NationalID, req.Phone, req.Email, req.Address)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidNationalID):
			return nil, &ValidationError{Field: "nationalId", Reason: "must have exactly 11 digits"}
		case errors.Is(err, domain.ErrInvalidEmail):
			return nil, &ValidationError{Field: "email", Reason: "must look like name@domain.tld"}
		default:
			return nil, &ValidationError{Field: "customer", Reason: err.Error()}
		}
	}

	format, err := domain.ParseDocumentFormat(req.Format)
	if err != nil {
		return nil, &ValidationError{Field: "format", Reason: "must be html, csv or txt"}
	}

	notes := strings.TrimSpace(req.Notes)
	if notes == "" {
		notes = domain.DefaultAppointmentNotes
	}

	return &input{
		shopID:    shopID,
		serviceID: serviceID,
		dateTime:  dateTime,
		notes:     notes,
		customer:  customer,
		format:    format,
	}, nil
}

func parseID(field, value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, &ValidationError{Field: field, Reason: "is required"}
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, &ValidationError{Field: field, Reason: "must be a positive integer"}
	}
	return id, nil
}
