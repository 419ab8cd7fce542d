package documents

import (
	"path"
	"regexp"
	"strings"
)

// DefaultPrefix префикс ключей документов записи
const DefaultPrefix = "agendamentos/"

var protocolInKey = regexp.MustCompile(`(AGD-[^/]+)/`)

// ObjectKey строит ключ <prefix><protocol>/<fileName>.
// protocol и fileName должны быть одиночными сегментами пути.
func ObjectKey(prefix, protocol, fileName string) (string, error) {
	if !safeSegment(protocol) || !safeSegment(fileName) {
		return "", ErrInvalidKey
	}
	return prefix + protocol + "/" + fileName, nil
}

// ValidateKey проверяет, что ключ относительный и не выходит за корень хранилища
func ValidateKey(key string) error {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, `\`) {
		return ErrInvalidKey
	}
	for _, segment := range strings.Split(key, "/") {
		if segment == ".." || segment == "." {
			return ErrInvalidKey
		}
	}
	if path.Clean(key) != strings.TrimSuffix(key, "/") {
		return ErrInvalidKey
	}
	return nil
}

// ProtocolFromKey извлекает протокол AGD-... из ключа, "" если его нет
func ProtocolFromKey(key string) string {
	m := protocolInKey.FindStringSubmatch(key)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

// ContentTypeFor MIME тип по расширению файла
func ContentTypeFor(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".html", ".htm":
		return "text/html; charset=utf-8"
	case ".csv":
		return "text/csv; charset=utf-8"
	case ".txt":
		return "text/plain; charset=utf-8"
	case ".json":
		return "application/json"
	default:
		return "application/octet-stream"
	}
}

func safeSegment(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || s == "." || s == ".." {
		return false
	}
	return !strings.ContainsAny(s, `/\`)
}
