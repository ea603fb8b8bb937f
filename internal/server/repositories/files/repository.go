package files

import (
	"context"

	"github.com/dpetrovs/filebox/internal/server/models"
)

type Repository interface {
	// Upsert records (owner, filename, storage_key), replacing the key on
	// repeated uploads of the same logical file.
	Upsert(ctx context.Context, record *models.FileRecord) error
	// ListByOwner returns the owner's records in first-upload order.
	ListByOwner(ctx context.Context, owner string) ([]*models.FileRecord, error)
	// GetByOwnerAndName returns common.ErrorNotFound when the owner has no
	// file with that logical name.
	GetByOwnerAndName(ctx context.Context, owner, filename string) (*models.FileRecord, error)
}
