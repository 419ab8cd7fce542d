package gateway_relay

import (
	"encoding/json"

	"github.com/m04kA/SMC-BarberBooking/internal/integrations/gateway"
)

// RelayResponse ответ GET /api/gateway/test
type RelayResponse struct {
	Success    bool            `json:"success"`
	Status     int             `json:"status"`
	StatusText string          `json:"statusText"`
	Data       json.RawMessage `json:"data"`
}

func FromGatewayResult(res *gateway.Result) *RelayResponse {
	return &RelayResponse{
		Success:    res.OK(),
		Status:     res.StatusCode,
		StatusText: res.StatusText,
		Data:       res.Data,
	}
}
