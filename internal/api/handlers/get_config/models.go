package get_config

// RuntimeConfig настройки, которые форма получает от сервера
type RuntimeConfig struct {
	BaseURL      string
	GatewayURL   string
	SaveToServer bool
	StorageType  string
}

// ConfigResponse ответ GET /api/config
type ConfigResponse struct {
	BaseURL      string  `json:"BASE_URL"`
	APIGateway   *string `json:"API_GATEWAY"`
	SaveToServer bool    `json:"SAVE_TO_SERVER"`
	StorageType  string  `json:"STORAGE_TYPE"`
}

func FromRuntimeConfig(cfg RuntimeConfig) *ConfigResponse {
	resp := &ConfigResponse{
		BaseURL:      cfg.BaseURL,
		SaveToServer: cfg.SaveToServer,
		StorageType:  cfg.StorageType,
	}
	if cfg.GatewayURL != "" {
		gw := cfg.GatewayURL
		resp.APIGateway = &gw
	}
	return resp
}
