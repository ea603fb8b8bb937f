package files

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dpetrovs/filebox/internal/common"
	"github.com/dpetrovs/filebox/internal/dbx"
	"github.com/dpetrovs/filebox/internal/server/models"
	"github.com/google/uuid"
)

// PostgresRepository implements the owner index over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Upsert inserts the record or, when the (owner, filename) pair already
// exists, refreshes its storage key. created_at keeps the first upload time
// so listings stay in first-seen order.
func (r *PostgresRepository) Upsert(ctx context.Context, record *models.FileRecord) error {
	record.ID = uuid.NewString()
	record.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO files (id, owner, filename, storage_key, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (owner, filename)
		DO UPDATE SET storage_key = EXCLUDED.storage_key;
	`

	if _, err := r.db.ExecContext(ctx, query,
		record.ID, record.Owner, record.Filename, record.StorageKey, record.CreatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, owner string) ([]*models.FileRecord, error) {
	query := `
		SELECT id, owner, filename, storage_key FROM files
		WHERE owner = $1
		ORDER BY created_at, filename
	`

	rows, err := r.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.FileRecord
	for rows.Next() {
		var item models.FileRecord
		if err := rows.Scan(&item.ID, &item.Owner, &item.Filename, &item.StorageKey); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByOwnerAndName(ctx context.Context, owner, filename string) (*models.FileRecord, error) {
	query := `
		SELECT id, owner, filename, storage_key FROM files
		WHERE owner = $1 AND filename = $2
	`

	record := &models.FileRecord{}
	err := r.db.QueryRowContext(ctx, query, owner, filename).
		Scan(&record.ID, &record.Owner, &record.Filename, &record.StorageKey)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return record, nil
}
