// Package services contains server-side business logic. This file implements
// UserService, which handles account creation and credential checks.
package services

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dpetrovs/filebox/internal/common"
	"github.com/dpetrovs/filebox/internal/dbx"
	"github.com/dpetrovs/filebox/internal/server/models"
	"github.com/dpetrovs/filebox/internal/server/repositories/repomanager"
)

// UserService provides account operations:
//   - Register: create a user, enforcing username uniqueness
//   - Login: verify a username/password pair
//
// Passwords are stored and compared verbatim; the protocol carries no
// hashed credentials.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewUserService constructs a UserService over the given DB and repositories.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager) *UserService {
	return &UserService{db: db, repomanager: m}
}

// Register creates a new account. The existence check and the insert run in
// one transaction so two concurrent registrations of the same name cannot
// both succeed. Returns common.ErrorDuplicate when the username is taken.
func (s *UserService) Register(ctx context.Context, username, password string) (*models.User, error) {
	var created *models.User

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		_, err := repo.GetByUsername(ctx, username)
		if err == nil {
			return common.ErrorDuplicate
		}
		if !errors.Is(err, common.ErrorNotFound) {
			return fmt.Errorf("error checking username: %w", err)
		}

		created, err = repo.Create(ctx, &models.User{UserName: username, Password: password})
		if err != nil {
			return fmt.Errorf("error creating user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login verifies the credentials. It returns common.ErrorUnauthorized both
// for an unknown username and for a wrong password.
func (s *UserService) Login(ctx context.Context, username, password string) error {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorUnauthorized
		}
		return common.ErrorInternal
	}

	if subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) != 1 {
		return common.ErrorUnauthorized
	}
	return nil
}
