package list_documents

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/service/documents/models"
)

const msgNoFilesForProtocol = "Nenhum arquivo encontrado para este protocolo"

type FileResponse struct {
	Key          string `json:"key"`
	Size         int64  `json:"tamanho"`
	LastModified string `json:"dataModificacao,omitempty"`
	URL          string `json:"url"`
	Protocol     string `json:"protocolo,omitempty"`
}

type ListResponse struct {
	Bucket      string         `json:"bucket,omitempty"`
	Prefix      string         `json:"prefix"`
	Total       int            `json:"total"`
	Files       []FileResponse `json:"arquivos"`
	IsTruncated bool           `json:"isTruncated"`
}

type DocumentResponse struct {
	Key          string `json:"key"`
	Size         int64  `json:"tamanho"`
	ContentType  string `json:"tipo"`
	LastModified string `json:"dataModificacao,omitempty"`
	Content      string `json:"conteudo"`
	URL          string `json:"url"`
	Protocol     string `json:"protocolo,omitempty"`
}

type ProtocolResponse struct {
	Protocol string             `json:"protocolo"`
	Found    bool               `json:"encontrado"`
	Total    int                `json:"total,omitempty"`
	Files    []DocumentResponse `json:"arquivos,omitempty"`
	Message  string             `json:"mensagem,omitempty"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func FromListResult(res *models.ListResult) *ListResponse {
	files := make([]FileResponse, 0, len(res.Files))
	for _, f := range res.Files {
		files = append(files, FileResponse{
			Key:          f.Key,
			Size:         f.Size,
			LastModified: formatTime(f.LastModified),
			URL:          f.URL,
			Protocol:     f.Protocol,
		})
	}
	return &ListResponse{
		Bucket:      res.Bucket,
		Prefix:      res.Prefix,
		Total:       res.Total,
		Files:       files,
		IsTruncated: res.IsTruncated,
	}
}

func FromDocument(doc *models.Document) *DocumentResponse {
	return &DocumentResponse{
		Key:          doc.Key,
		Size:         doc.Size,
		ContentType:  doc.ContentType,
		LastModified: formatTime(doc.LastModified),
		Content:      doc.Content,
		URL:          doc.URL,
		Protocol:     doc.Protocol,
	}
}

func FromProtocolResult(res *models.ProtocolResult) *ProtocolResponse {
	if !res.Found {
		return &ProtocolResponse{
			Protocol: res.Protocol,
			Found:    false,
			Message:  msgNoFilesForProtocol,
		}
	}
	files := make([]DocumentResponse, 0, len(res.Files))
	for i := range res.Files {
		files = append(files, *FromDocument(&res.Files[i]))
	}
	return &ProtocolResponse{
		Protocol: res.Protocol,
		Found:    true,
		Total:    res.Total,
		Files:    files,
	}
}
