package exporter

import "github.com/m04kA/SMC-BarberBooking/internal/domain"

// Document отрендеренный документ подтверждения
type Document struct {
	Protocol    string
	FileName    string
	Format      domain.DocumentFormat
	ContentType string
	Content     string // без BOM, уходит в storage proxy
	Payload     []byte // то, что сохраняется локально (CSV/TXT с BOM)
}

// RemoteLocation куда storage proxy сохранил документ
type RemoteLocation struct {
	StorageType  string
	Path         string
	URL          string
	StorageError string // ошибка S3, если сработал fallback на файловую систему
}

// Result итог экспорта
type Result struct {
	Protocol    string
	FileName    string
	Format      domain.DocumentFormat
	LocalPath   string
	LocalURL    string
	Remote      *RemoteLocation // nil, если удаленное сохранение выключено или не удалось
	RemoteError string
}
