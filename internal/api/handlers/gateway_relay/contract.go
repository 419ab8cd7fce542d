package gateway_relay

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/integrations/gateway"
)

type GatewayClient interface {
	Fetch(ctx context.Context) (*gateway.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
