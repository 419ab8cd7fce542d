package backend

import (
	"fmt"
	"net/url"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

const (
	pathShops        = "/barbearias"
	pathCustomers    = "/clientes"
	pathServices     = "/servicos"
	pathAppointments = "/agendas"
)

func byID(resource string, id int64) string {
	return fmt.Sprintf("%s/%d", resource, id)
}

func byShop(resource string, shopID int64) string {
	return fmt.Sprintf("%s/barbearia/%d", resource, shopID)
}

func byShopAndCustomer(shopID, customerID int64) string {
	return fmt.Sprintf("%s/barbearia/%d/cliente/%d", pathAppointments, shopID, customerID)
}

func byCustomer(customerID int64) string {
	return fmt.Sprintf("%s/cliente/%d", pathAppointments, customerID)
}

func byPeriod(from, to time.Time) string {
	q := url.Values{}
	q.Set("inicio", domain.FormatLocalDateTime(from))
	q.Set("fim", domain.FormatLocalDateTime(to))
	return pathAppointments + "/periodo?" + q.Encode()
}
