package models

import "time"

// AppointmentRef ссылка на запись, к которой относится документ
type AppointmentRef struct {
	ID         int64
	CustomerID int64
	ShopID     int64
	DateTime   string
}

// SaveRequest запрос на сохранение документа
type SaveRequest struct {
	Protocol    string
	FileName    string
	Content     string
	Appointment AppointmentRef
}

// SaveResult результат сохранения
type SaveResult struct {
	Protocol     string
	FileName     string
	Path         string
	URL          string
	StorageType  string
	StorageError string // ошибка основного хранилища, если использован fallback
	SavedAt      time.Time
}

// FileInfo элемент списка документов
type FileInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
	URL          string
	Protocol     string
}

// ListResult список документов
type ListResult struct {
	Bucket      string
	Prefix      string
	Total       int
	Files       []FileInfo
	IsTruncated bool
}

// Document документ с содержимым
type Document struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
	Content      string
	URL          string
	Protocol     string
}

// ProtocolResult документы одного протокола
type ProtocolResult struct {
	Protocol string
	Found    bool
	Total    int
	Files    []Document
}
