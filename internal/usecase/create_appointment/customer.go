package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/integrations/backend"
)

// CustomerLookupPolicy поведение при ошибке поиска клиента перед созданием
type CustomerLookupPolicy int

const (
	// ProceedOnLookupFailure логирует ошибку поиска и переходит к созданию клиента;
	// дубль CPF при этом разрешается повторным поиском
	ProceedOnLookupFailure CustomerLookupPolicy = iota

	// AbortOnLookupFailure прерывает запись с ошибкой backend
	AbortOnLookupFailure
)

func (p CustomerLookupPolicy) String() string {
	switch p {
	case AbortOnLookupFailure:
		return "abort"
	default:
		return "proceed"
	}
}

// ParseCustomerLookupPolicy разбирает значение из конфигурации
func ParseCustomerLookupPolicy(value string) (CustomerLookupPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "proceed":
		return ProceedOnLookupFailure, nil
	case "abort":
		return AbortOnLookupFailure, nil
	default:
		return ProceedOnLookupFailure, fmt.Errorf("create_appointment: unknown lookup policy %q", value)
	}
}

// Результаты получения клиента (метка метрики)
const (
	resolutionCreated        = "created"
	resolutionReused         = "reused"
	resolutionConflictReused = "conflict_reused"
)

// nationalIDConflictMarker признак дубля CPF в сообщении backend
const nationalIDConflictMarker = "CPF"

// resolveCustomer находит клиента барбершопа по CPF или создает нового.
// Найденный клиент используется как есть, без обновления данных.
func (uc *UseCase) resolveCustomer(ctx context.Context, shopID int64, candidate *domain.Customer) (*domain.Customer, string, error) {
	// Без CPF дедупликация невозможна
	if !candidate.HasNationalID() {
		created, err := uc.customers.CreateForShop(ctx, shopID, candidate)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create customer for shop=%d: %v", shopID, err)
			return nil, "", fmt.Errorf("%w: create customer: %w", ErrBackend, err)
		}
		return created, resolutionCreated, nil
	}

	// 1. Ищем клиента среди клиентов барбершопа
	existing, err := uc.findByNationalID(ctx, shopID, candidate.NationalID)
	switch {
	case err != nil && uc.lookupPolicy == AbortOnLookupFailure:
		uc.logger.Error("CreateAppointment: customer lookup failed for shop=%d: %v", shopID, err)
		return nil, "", fmt.Errorf("%w: lookup customers: %w", ErrBackend, err)
	case err != nil:
		uc.logger.Warn("CreateAppointment: customer lookup failed for shop=%d, proceeding to create: %v", shopID, err)
	case existing != nil:
		uc.logger.Info("CreateAppointment: reusing customer id=%d for shop=%d", existing.ID, shopID)
		return existing, resolutionReused, nil
	}

	// 2. Создаем клиента
	created, err := uc.customers.CreateForShop(ctx, shopID, candidate)
	if err == nil {
		return created, resolutionCreated, nil
	}
	if !isNationalIDConflict(err) {
		uc.logger.Error("CreateAppointment: failed to create customer for shop=%d: %v", shopID, err)
		return nil, "", fmt.Errorf("%w: create customer: %w", ErrBackend, err)
	}

	// 3. Backend сообщил о дубле CPF - повторяем поиск
	uc.logger.Warn("CreateAppointment: national id already registered for shop=%d, retrying lookup", shopID)
	existing, lookupErr := uc.findByNationalID(ctx, shopID, candidate.NationalID)
	if lookupErr != nil {
		uc.logger.Error("CreateAppointment: retry lookup failed for shop=%d: %v", shopID, lookupErr)
		return nil, "", fmt.Errorf("%w: retry lookup customers: %w", ErrBackend, lookupErr)
	}
	if existing == nil {
		return nil, "", &ConflictError{
			ShopID:     shopID,
			NationalID: candidate.NationalID,
			Message:    backend.Message(err),
		}
	}

	uc.logger.Info("CreateAppointment: reusing customer id=%d after conflict for shop=%d", existing.ID, shopID)
	return existing, resolutionConflictReused, nil
}

// findByNationalID линейный поиск по нормализованному CPF; nil, если не найден
func (uc *UseCase) findByNationalID(ctx context.Context, shopID int64, nationalID string) (*domain.Customer, error) {
	customers, err := uc.customers.ListByShop(ctx, shopID)
	if err != nil {
		return nil, err
	}
	for _, c := range customers {
		if c == nil {
			continue
		}
		normalized, err := domain.NormalizeNationalID(c.NationalID)
		if err != nil || normalized == "" {
			continue
		}
		if normalized == nationalID {
			return c, nil
		}
	}
	return nil, nil
}

// isNationalIDConflict сообщает, что backend отклонил клиента из-за существующего CPF
func isNationalIDConflict(err error) bool {
	var be *backend.Error
	if !errors.As(err, &be) || be.StatusCode == 0 {
		return false
	}
	return strings.Contains(strings.ToUpper(be.Message), nationalIDConflictMarker)
}
