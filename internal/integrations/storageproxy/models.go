package storageproxy

// AppointmentRef ссылка на запись, к которой относится документ
type AppointmentRef struct {
	ID         int64  `json:"id,omitempty"`
	CustomerID int64  `json:"clienteId,omitempty"`
	ShopID     int64  `json:"barbeariaId,omitempty"`
	DateTime   string `json:"data,omitempty"`
}

// SaveRequest тело POST /api/agendamentos/exportar
type SaveRequest struct {
	Protocol    string         `json:"protocolo"`
	FileName    string         `json:"nomeArquivo"`
	Content     string         `json:"conteudo"`
	Appointment AppointmentRef `json:"agendamento"`
}

// SaveResponse ответ прокси
type SaveResponse struct {
	Success     bool   `json:"sucesso"`
	Protocol    string `json:"protocolo"`
	FileName    string `json:"nomeArquivo"`
	Path        string `json:"caminho"`
	URL         string `json:"url"`
	StorageType string `json:"storageType"`
	S3Error     string `json:"s3Error,omitempty"`
	Error       string `json:"erro,omitempty"`
}
