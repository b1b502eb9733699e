package workbooks

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements WorkbooksRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new workbook record.
func (r *PGRepo) Create(ctx context.Context, wb Workbook) error {
	const query = `
INSERT INTO workbooks (
    id,
    file_name,
    mime_type,
    size_bytes,
    storage_provider,
    storage_key,
    sheet_count,
    request_count,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	storageProvider := wb.StorageProvider
	if storageProvider == "" {
		storageProvider = "local"
	}

	var storageKey sql.NullString
	if wb.StorageKey != "" {
		storageKey = sql.NullString{String: wb.StorageKey, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		wb.ID,
		wb.FileName,
		wb.MimeType,
		wb.SizeBytes,
		storageProvider,
		storageKey,
		wb.SheetCount,
		wb.RequestCount,
		wb.CreatedAt,
	)
	return err
}

// GetByID fetches a workbook by id.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Workbook, error) {
	const query = `
SELECT id, file_name, mime_type, size_bytes, storage_provider, storage_key, sheet_count, request_count, created_at
FROM workbooks
WHERE id = $1
LIMIT 1`
	var wb Workbook
	var storageProvider sql.NullString
	var storageKey sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&wb.ID,
		&wb.FileName,
		&wb.MimeType,
		&wb.SizeBytes,
		&storageProvider,
		&storageKey,
		&wb.SheetCount,
		&wb.RequestCount,
		&wb.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Workbook{}, ErrNotFound
		}
		return Workbook{}, err
	}
	if storageProvider.Valid {
		wb.StorageProvider = storageProvider.String
	}
	if storageKey.Valid {
		wb.StorageKey = storageKey.String
	}
	return wb, nil
}

// List returns workbooks ordered newest-first.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Workbook, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT id, file_name, mime_type, size_bytes, storage_provider, storage_key, sheet_count, request_count, created_at
FROM workbooks
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Workbook
	for rows.Next() {
		var wb Workbook
		var storageProvider sql.NullString
		var storageKey sql.NullString
		if err := rows.Scan(
			&wb.ID,
			&wb.FileName,
			&wb.MimeType,
			&wb.SizeBytes,
			&storageProvider,
			&storageKey,
			&wb.SheetCount,
			&wb.RequestCount,
			&wb.CreatedAt,
		); err != nil {
			return nil, err
		}
		if storageProvider.Valid {
			wb.StorageProvider = storageProvider.String
		}
		if storageKey.Valid {
			wb.StorageKey = storageKey.String
		}
		out = append(out, wb)
	}
	return out, rows.Err()
}

var _ WorkbooksRepo = (*PGRepo)(nil)
