package repomanager

import (
	"context"
	"database/sql"

	"github.com/dpetrovs/filebox/internal/dbx"
	"github.com/dpetrovs/filebox/internal/server/repositories/files"
	"github.com/dpetrovs/filebox/internal/server/repositories/shares"
	"github.com/dpetrovs/filebox/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Files(db dbx.DBTX) files.Repository
	Shares(db dbx.DBTX) shares.Repository
}
