package shares

import (
	"context"

	"github.com/dpetrovs/filebox/internal/server/models"
)

type Repository interface {
	// Create inserts a grant. Re-sharing the same file with the same grantee
	// inserts another row; dedup is not this layer's problem.
	Create(ctx context.Context, share *models.Share) error
	// ListByGrantee returns grants made to the user in grant order.
	ListByGrantee(ctx context.Context, grantee string) ([]*models.Share, error)
}
