package exporter

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

const notAvailable = "N/A"

// documentView значения документа, уже отформатированные для вывода
type documentView struct {
	Protocol string
	IssuedAt string

	CustomerName       string
	CustomerNationalID string
	CustomerPhone      string
	CustomerEmail      string
	CustomerAddress    string

	ShopName    string
	ShopTaxID   string
	ShopPhone   string
	ShopEmail   string
	ShopAddress string

	DateTime    string
	ServiceName string
	Price       string // "R$ 45,00"
	PriceValue  string // "45,00"
	Duration    string
	Staff       string
	StaffList   []string
	Notes       string

	AppointmentID string
	CustomerID    string
	ShopID        string
}

func newDocumentView(bundle *domain.AppointmentBundle, protocol string, issuedAt time.Time, loc *time.Location) *documentView {
	customer := bundle.Customer
	if customer == nil {
		customer = &domain.Customer{}
	}
	shop := bundle.Shop
	if shop == nil {
		shop = &domain.Shop{}
	}
	appt := bundle.Appointment

	v := &documentView{
		Protocol: protocol,
		IssuedAt: issuedAt.In(loc).Format(domain.DisplayTimestamp),

		CustomerName:       orNA(customer.Name),
		CustomerNationalID: orNA(domain.FormatNationalID(customer.NationalID)),
		CustomerPhone:      orNA(customer.Phone),
		CustomerEmail:      orNA(customer.Email),
		CustomerAddress:    orNA(customer.Address),

		ShopName:    orNA(shop.Name),
		ShopTaxID:   orNA(shop.TaxID),
		ShopPhone:   orNA(shop.Phone),
		ShopEmail:   orNA(shop.Email),
		ShopAddress: orNA(shop.Address),

		DateTime:    notAvailable,
		ServiceName: notAvailable,
		Price:       notAvailable,
		PriceValue:  notAvailable,
		Duration:    notAvailable,
		Staff:       notAvailable,
		Notes:       orNA(appt.Notes),

		AppointmentID: idOrNA(appt.ID),
		CustomerID:    idOrNA(customer.ID),
		ShopID:        idOrNA(shop.ID),
	}

	if !appt.DateTime.IsZero() {
		v.DateTime = appt.DateTime.In(loc).Format(domain.DisplayDateTime)
	}

	if svc := bundle.Service; svc != nil {
		v.ServiceName = orNA(svc.Name)
		v.PriceValue = formatMoney(svc.Price())
		v.Price = "R$ " + v.PriceValue
		v.Duration = strconv.Itoa(svc.DurationMinutes()) + " minutos"
		v.StaffList = svc.StaffNames()
		if len(v.StaffList) > 0 {
			v.Staff = strings.Join(v.StaffList, ", ")
		}
	}

	return v
}

// formatMoney два знака после запятой, десятичный разделитель - запятая
func formatMoney(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}

func orNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return notAvailable
	}
	return value
}

func idOrNA(id int64) string {
	if id <= 0 {
		return notAvailable
	}
	return strconv.FormatInt(id, 10)
}
