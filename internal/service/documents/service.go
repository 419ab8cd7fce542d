package documents

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	storage "github.com/m04kA/SMC-BarberBooking/internal/infra/storage/documents"
	"github.com/m04kA/SMC-BarberBooking/internal/infra/storage/exports"
	"github.com/m04kA/SMC-BarberBooking/internal/service/documents/models"
)

const (
	DefaultMaxKeys = 100
	MaxKeysLimit   = 1000
)

// Service storage proxy: сохраняет документы записи и отдает их список
type Service struct {
	primary  ObjectStore
	fallback ObjectStore
	registry ExportRegistry
	metrics  MetricsRecorder
	logger   Logger
	now      func() time.Time
}

// NewService создает сервис документов.
// fallback и registry могут быть nil.
func NewService(primary, fallback ObjectStore, registry ExportRegistry, metrics MetricsRecorder, logger Logger) *Service {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Service{
		primary:  primary,
		fallback: fallback,
		registry: registry,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
	}
}

// StorageType тип основного хранилища
func (s *Service) StorageType() string {
	return s.primary.Name()
}

// Save сохраняет документ в основное хранилище, при ошибке в резервное
func (s *Service) Save(ctx context.Context, req *models.SaveRequest) (*models.SaveResult, error) {
	// 1. Валидация
	protocol := strings.TrimSpace(req.Protocol)
	fileName := strings.TrimSpace(req.FileName)
	switch {
	case protocol == "":
		return nil, fmt.Errorf("%w: protocolo is required", ErrInvalidInput)
	case fileName == "":
		return nil, fmt.Errorf("%w: nomeArquivo is required", ErrInvalidInput)
	case req.Content == "":
		return nil, fmt.Errorf("%w: conteudo is required", ErrInvalidInput)
	}

	key, err := storage.ObjectKey(storage.DefaultPrefix, protocol, fileName)
	if err != nil {
		s.logger.Warn("SaveDocument: unsafe key protocol=%q file=%q", protocol, fileName)
		return nil, fmt.Errorf("%w: %w: %v", ErrInvalidInput, ErrUnsafeName, err)
	}
	contentType := storage.ContentTypeFor(fileName)
	content := []byte(req.Content)

	// 2. Основное хранилище
	var storageError string
	loc, err := s.primary.Put(ctx, key, content, contentType)
	if err != nil {
		s.metrics.IncStorageSave(s.primary.Name(), "error")
		if s.fallback == nil {
			s.logger.Error("SaveDocument: %s put failed for key=%s: %v", s.primary.Name(), key, err)
			return nil, fmt.Errorf("%w: %w", ErrStorage, err)
		}

		// 3. Резервное хранилище
		s.logger.Warn("SaveDocument: %s put failed for key=%s, falling back to %s: %v",
			s.primary.Name(), key, s.fallback.Name(), err)
		storageError = err.Error()
		loc, err = s.fallback.Put(ctx, key, content, contentType)
		if err != nil {
			s.metrics.IncStorageSave(s.fallback.Name(), "error")
			s.logger.Error("SaveDocument: fallback put failed for key=%s: %v", key, err)
			return nil, fmt.Errorf("%w: %w", ErrStorage, err)
		}
		s.metrics.IncStorageSave(s.fallback.Name(), "success")
	} else {
		s.metrics.IncStorageSave(s.primary.Name(), "success")
	}

	s.logger.Info("SaveDocument: saved protocol=%s to %s path=%s", protocol, loc.Backend, loc.Path)

	result := &models.SaveResult{
		Protocol:     protocol,
		FileName:     fileName,
		Path:         loc.Path,
		URL:          loc.URL,
		StorageType:  loc.Backend,
		StorageError: storageError,
		SavedAt:      s.now(),
	}

	// 4. Реестр (best-effort)
	s.register(ctx, req, result)

	return result, nil
}

func (s *Service) register(ctx context.Context, req *models.SaveRequest, res *models.SaveResult) {
	if s.registry == nil {
		return
	}

	rec := &domain.ExportRecord{
		Protocol:      res.Protocol,
		FileName:      res.FileName,
		StorageType:   res.StorageType,
		Path:          res.Path,
		URL:           res.URL,
		StorageError:  optionalString(res.StorageError),
		AppointmentID: optionalID(req.Appointment.ID),
		CustomerID:    optionalID(req.Appointment.CustomerID),
		ShopID:        optionalID(req.Appointment.ShopID),
		AppointmentAt: optionalString(req.Appointment.DateTime),
	}
	if _, err := s.registry.Create(ctx, rec); err != nil {
		s.logger.Warn("SaveDocument: failed to register protocol=%s: %v", res.Protocol, err)
	}
}

// List возвращает список документов по префиксу из обоих хранилищ
func (s *Service) List(ctx context.Context, prefix string, maxKeys int) (*models.ListResult, error) {
	if prefix == "" {
		prefix = storage.DefaultPrefix
	}
	if err := storage.ValidateKey(prefix); err != nil {
		return nil, fmt.Errorf("%w: invalid prefix %q", ErrInvalidInput, prefix)
	}
	if maxKeys <= 0 {
		maxKeys = DefaultMaxKeys
	}
	if maxKeys > MaxKeysLimit {
		maxKeys = MaxKeysLimit
	}

	listing, _, err := s.listAll(ctx, "ListDocuments", prefix, maxKeys)
	if err != nil {
		s.logger.Error("ListDocuments: prefix=%s: %v", prefix, err)
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	files := make([]models.FileInfo, 0, len(listing.Objects))
	for _, obj := range listing.Objects {
		files = append(files, models.FileInfo{
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
			URL:          obj.URL,
			Protocol:     storage.ProtocolFromKey(obj.Key),
		})
	}

	return &models.ListResult{
		Bucket:      listing.Bucket,
		Prefix:      prefix,
		Total:       len(files),
		Files:       files,
		IsTruncated: listing.Truncated,
	}, nil
}

// Get возвращает документ по ключу, сначала из основного хранилища
func (s *Service) Get(ctx context.Context, key string) (*models.Document, error) {
	if err := storage.ValidateKey(key); err != nil {
		return nil, fmt.Errorf("%w: invalid key %q", ErrInvalidInput, key)
	}

	var lastErr error
	for _, store := range s.stores() {
		obj, err := store.Get(ctx, key)
		if err == nil {
			return toDocument(obj), nil
		}
		if !errors.Is(err, storage.ErrObjectNotFound) {
			s.logger.Error("GetDocument: %s key=%s: %v", store.Name(), key, err)
			lastErr = err
		}
	}
	if lastErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, lastErr)
	}
	return nil, fmt.Errorf("%w: %s", ErrDocumentNotFound, key)
}

// GetByProtocol возвращает все документы протокола
func (s *Service) GetByProtocol(ctx context.Context, protocol string) (*models.ProtocolResult, error) {
	protocol = strings.TrimSpace(protocol)
	if _, err := storage.ObjectKey(storage.DefaultPrefix, protocol, "x"); err != nil {
		return nil, fmt.Errorf("%w: invalid protocolo %q", ErrInvalidInput, protocol)
	}

	listing, owners, err := s.listAll(ctx, "GetByProtocol", storage.DefaultPrefix+protocol+"/", MaxKeysLimit)
	if err != nil {
		s.logger.Error("GetByProtocol: protocol=%s: %v", protocol, err)
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	result := &models.ProtocolResult{Protocol: protocol, Files: []models.Document{}}
	for _, info := range listing.Objects {
		obj, err := owners[info.Key].Get(ctx, info.Key)
		if err != nil {
			s.logger.Warn("GetByProtocol: skip key=%s: %v", info.Key, err)
			continue
		}
		result.Files = append(result.Files, *toDocument(obj))
	}
	result.Total = len(result.Files)
	result.Found = result.Total > 0

	return result, nil
}

// stores основное хранилище и резервное, если оно задано
func (s *Service) stores() []ObjectStore {
	if s.fallback == nil {
		return []ObjectStore{s.primary}
	}
	return []ObjectStore{s.primary, s.fallback}
}

// listAll объединяет листинги хранилищ без повторов ключей.
// Ключ принадлежит первому хранилищу, в котором он найден.
// Ошибка возвращается, только если не ответило ни одно хранилище.
func (s *Service) listAll(ctx context.Context, op, prefix string, maxKeys int) (*storage.Listing, map[string]ObjectStore, error) {
	merged := &storage.Listing{Prefix: prefix, Objects: []storage.ObjectInfo{}}
	owners := make(map[string]ObjectStore)

	var lastErr error
	answered := 0
	for _, store := range s.stores() {
		listing, err := store.List(ctx, prefix, maxKeys)
		if err != nil {
			s.logger.Warn("%s: %s list prefix=%s: %v", op, store.Name(), prefix, err)
			lastErr = err
			continue
		}
		answered++
		if merged.Bucket == "" {
			merged.Bucket = listing.Bucket
		}
		merged.Truncated = merged.Truncated || listing.Truncated
		for _, obj := range listing.Objects {
			if _, seen := owners[obj.Key]; seen {
				continue
			}
			if len(merged.Objects) >= maxKeys {
				merged.Truncated = true
				break
			}
			owners[obj.Key] = store
			merged.Objects = append(merged.Objects, obj)
		}
	}
	if answered == 0 {
		return nil, nil, lastErr
	}
	return merged, owners, nil
}

// History возвращает записи реестра по протоколу
func (s *Service) History(ctx context.Context, protocol string) ([]*domain.ExportRecord, error) {
	if s.registry == nil {
		return nil, ErrRegistryDisabled
	}
	protocol = strings.TrimSpace(protocol)
	if protocol == "" {
		return nil, fmt.Errorf("%w: protocolo is required", ErrInvalidInput)
	}

	records, err := s.registry.ListByProtocol(ctx, protocol)
	if err != nil {
		s.logger.Error("History: protocol=%s: %v", protocol, err)
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return records, nil
}

// HistoryRecord возвращает одну запись реестра по ID
func (s *Service) HistoryRecord(ctx context.Context, id int64) (*domain.ExportRecord, error) {
	if s.registry == nil {
		return nil, ErrRegistryDisabled
	}
	if id <= 0 {
		return nil, fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	rec, err := s.registry.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, exports.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: record id=%d", ErrDocumentNotFound, id)
		}
		s.logger.Error("HistoryRecord: id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return rec, nil
}

func toDocument(obj *storage.Object) *models.Document {
	return &models.Document{
		Key:          obj.Key,
		Size:         obj.Size,
		ContentType:  obj.ContentType,
		LastModified: obj.LastModified,
		Content:      string(obj.Content),
		URL:          obj.URL,
		Protocol:     storage.ProtocolFromKey(obj.Key),
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalID(id int64) *int64 {
	if id <= 0 {
		return nil
	}
	return &id
}
