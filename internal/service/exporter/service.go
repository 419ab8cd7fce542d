package exporter

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/storageproxy"
)

// Options настройки экспорта
type Options struct {
	SaveRemote bool           // отправлять документ в storage proxy
	Location   *time.Location // часовой пояс дат в документе
	Now        func() time.Time
}

// Service экспорт подтверждений записи в HTML/CSV/TXT
type Service struct {
	local      LocalSaver
	remote     RemoteSaver
	saveRemote bool
	loc        *time.Location
	now        func() time.Time
	metrics    MetricsRecorder
	logger     Logger
}

// NewService создает сервис экспорта; remote и metrics могут быть nil
func NewService(local LocalSaver, remote RemoteSaver, opts Options, metrics MetricsRecorder, logger Logger) *Service {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Service{
		local:      local,
		remote:     remote,
		saveRemote: opts.SaveRemote && remote != nil,
		loc:        loc,
		now:        now,
		metrics:    metrics,
		logger:     logger,
	}
}

// Render рендерит документ без сохранения
func (s *Service) Render(bundle *domain.AppointmentBundle, format domain.DocumentFormat) (*Document, error) {
	if bundle == nil || bundle.Appointment == nil {
		return nil, ErrIncompleteBundle
	}

	protocol := domain.Protocol(bundle.Appointment.ID, bundle.Appointment.DateTime)
	view := newDocumentView(bundle, protocol, s.now(), s.loc)

	content, payload, err := render(view, format)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", format, err)
	}

	return &Document{
		Protocol:    protocol,
		FileName:    format.FileName(protocol),
		Format:      format,
		ContentType: format.ContentType(),
		Content:     content,
		Payload:     payload,
	}, nil
}

// Export рендерит документ, сохраняет локально и (если включено) в storage proxy.
// Ошибка удаленного сохранения логируется и попадает только в Result.RemoteError.
func (s *Service) Export(ctx context.Context, bundle *domain.AppointmentBundle, format domain.DocumentFormat) (*Result, error) {
	// 1. Рендеринг
	doc, err := s.Render(bundle, format)
	if err != nil {
		s.metrics.IncExport(string(format), "error")
		protocol := ""
		if bundle != nil && bundle.Appointment != nil {
			protocol = domain.Protocol(bundle.Appointment.ID, bundle.Appointment.DateTime)
		}
		return nil, &ExportError{Stage: StageRender, Protocol: protocol, Err: err}
	}

	// 2. Локальное сохранение
	location, err := s.local.Put(ctx, doc.FileName, doc.Payload, doc.ContentType)
	if err != nil {
		s.metrics.IncExport(string(format), "error")
		return nil, &ExportError{Stage: StageLocalSave, Protocol: doc.Protocol, Err: err}
	}
	s.logger.Info("Export: document %s saved locally at %s", doc.FileName, location.Path)

	result := &Result{
		Protocol:  doc.Protocol,
		FileName:  doc.FileName,
		Format:    doc.Format,
		LocalPath: location.Path,
		LocalURL:  location.URL,
	}

	// 3. Удаленное сохранение (best effort)
	if s.saveRemote {
		s.saveRemotely(ctx, bundle, doc, result)
	}

	s.metrics.IncExport(string(format), "success")
	return result, nil
}

func (s *Service) saveRemotely(ctx context.Context, bundle *domain.AppointmentBundle, doc *Document, result *Result) {
	ref := storageproxy.AppointmentRef{
		ID:       bundle.Appointment.ID,
		DateTime: domain.FormatLocalDateTime(bundle.Appointment.DateTime),
	}
	if bundle.Customer != nil {
		ref.CustomerID = bundle.Customer.ID
	}
	if bundle.Shop != nil {
		ref.ShopID = bundle.Shop.ID
	}

	resp, err := s.remote.SaveDocument(ctx, &storageproxy.SaveRequest{
		Protocol:    doc.Protocol,
		FileName:    doc.FileName,
		Content:     doc.Content,
		Appointment: ref,
	})
	if err != nil {
		s.metrics.IncRemoteSave("error")
		s.logger.Warn("Export: remote save failed for %s, keeping local copy only: %v", doc.FileName, err)
		result.RemoteError = err.Error()
		return
	}

	s.metrics.IncRemoteSave("success")
	result.Remote = &RemoteLocation{
		StorageType:  resp.StorageType,
		Path:         resp.Path,
		URL:          resp.URL,
		StorageError: resp.S3Error,
	}
}
