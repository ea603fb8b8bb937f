package shares

import (
	"context"
	"fmt"
	"time"

	"github.com/dpetrovs/filebox/internal/dbx"
	"github.com/dpetrovs/filebox/internal/server/models"
	"github.com/google/uuid"
)

// PostgresRepository implements grant storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, share *models.Share) error {
	share.ID = uuid.NewString()
	share.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO shares (id, grantor, grantee, storage_key, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	if _, err := r.db.ExecContext(ctx, query,
		share.ID, share.Grantor, share.Grantee, share.StorageKey, share.CreatedAt); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) ListByGrantee(ctx context.Context, grantee string) ([]*models.Share, error) {
	query := `
		SELECT id, grantor, grantee, storage_key FROM shares
		WHERE grantee = $1
		ORDER BY created_at, id
	`

	rows, err := r.db.QueryContext(ctx, query, grantee)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Share
	for rows.Next() {
		var item models.Share
		if err := rows.Scan(&item.ID, &item.Grantor, &item.Grantee, &item.StorageKey); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
