package documents

import "time"

// Типы хранилищ
const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

// Location где сохранен объект
type Location struct {
	Backend string
	Key     string
	Path    string // путь в ФС или s3://bucket/key
	URL     string
}

// ObjectInfo элемент списка объектов
type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
	URL          string
}

// Listing результат получения списка объектов
type Listing struct {
	Bucket    string
	Prefix    string
	Objects   []ObjectInfo
	Truncated bool
}

// Object объект вместе с содержимым
type Object struct {
	Key          string
	ContentType  string
	Size         int64
	LastModified time.Time
	URL          string
	Content      []byte
}
