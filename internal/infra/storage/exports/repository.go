package exports

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/psqlbuilder"
)

const tableExportedDocuments = "exported_documents"

var recordColumns = []string{
	"id",
	"protocol",
	"file_name",
	"storage_type",
	"path",
	"url",
	"storage_error",
	"appointment_id",
	"customer_id",
	"shop_id",
	"appointment_at",
	"created_at",
}

// Repository реестр сохраненных документов в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет запись о сохраненном документе
func (r *Repository) Create(ctx context.Context, rec *domain.ExportRecord) (*domain.ExportRecord, error) {
	query, args, err := insertQuery(rec)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&rec.ID, &rec.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return rec, nil
}

// GetByID возвращает запись реестра по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ExportRecord, error) {
	query, args, err := selectByIDQuery(id)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rec, err := scanRecord(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, fmt.Errorf("%w: GetByID: %v", ErrScanRow, err)
	}
	return rec, nil
}

// ListByProtocol возвращает все сохранения документа с протоколом, от новых к старым
func (r *Repository) ListByProtocol(ctx context.Context, protocol string) ([]*domain.ExportRecord, error) {
	query, args, err := psqlbuilder.Select(recordColumns...).
		From(tableExportedDocuments).
		Where(squirrel.Eq{"protocol": protocol}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProtocol - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProtocol - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]*domain.ExportRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByProtocol: %v", ErrScanRow, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByProtocol - iterate rows: %v", ErrScanRow, err)
	}

	return records, nil
}

func selectByIDQuery(id int64) (string, []interface{}, error) {
	return psqlbuilder.Select(recordColumns...).
		From(tableExportedDocuments).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

func insertQuery(rec *domain.ExportRecord) (string, []interface{}, error) {
	return psqlbuilder.Insert(tableExportedDocuments).
		Columns(
			"protocol",
			"file_name",
			"storage_type",
			"path",
			"url",
			"storage_error",
			"appointment_id",
			"customer_id",
			"shop_id",
			"appointment_at",
		).
		Values(
			rec.Protocol,
			rec.FileName,
			rec.StorageType,
			rec.Path,
			rec.URL,
			rec.StorageError,
			rec.AppointmentID,
			rec.CustomerID,
			rec.ShopID,
			rec.AppointmentAt,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row rowScanner) (*domain.ExportRecord, error) {
	var (
		rec           domain.ExportRecord
		storageError  sql.NullString
		appointmentID sql.NullInt64
		customerID    sql.NullInt64
		shopID        sql.NullInt64
		appointmentAt sql.NullString
	)

	err := row.Scan(
		&rec.ID,
		&rec.Protocol,
		&rec.FileName,
		&rec.StorageType,
		&rec.Path,
		&rec.URL,
		&storageError,
		&appointmentID,
		&customerID,
		&shopID,
		&appointmentAt,
		&rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if storageError.Valid {
		rec.StorageError = &storageError.String
	}
	if appointmentID.Valid {
		rec.AppointmentID = &appointmentID.Int64
	}
	if customerID.Valid {
		rec.CustomerID = &customerID.Int64
	}
	if shopID.Valid {
		rec.ShopID = &shopID.Int64
	}
	if appointmentAt.Valid {
		rec.AppointmentAt = &appointmentAt.String
	}

	return &rec, nil
}
