package domain

import "strings"

// DocumentFormat is the rendering of a confirmation document.
type DocumentFormat string

const (
	FormatHTML DocumentFormat = "html"
	FormatCSV  DocumentFormat = "csv"
	FormatTXT  DocumentFormat = "txt"
)

// ParseDocumentFormat maps user input to a format; empty input means HTML.
func ParseDocumentFormat(value string) (DocumentFormat, error) {
	switch DocumentFormat(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatHTML:
		return FormatHTML, nil
	case FormatCSV:
		return FormatCSV, nil
	case FormatTXT:
		return FormatTXT, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// Extension returns the file extension without the dot.
func (f DocumentFormat) Extension() string {
	return string(f)
}

// ContentType returns the MIME type of the rendered document.
func (f DocumentFormat) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv;charset=utf-8"
	case FormatTXT:
		return "text/plain;charset=utf-8"
	default:
		return "text/html;charset=utf-8"
	}
}

// FileName returns <protocol>.<ext>.
func (f DocumentFormat) FileName(protocol string) string {
	return protocol + "." + f.Extension()
}
