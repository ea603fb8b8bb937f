package services

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/dpetrovs/filebox/internal/server/objstore"
	"github.com/dpetrovs/filebox/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

var testSchema = []string{
	`CREATE TABLE users (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE files (
		id TEXT PRIMARY KEY,
		owner TEXT NOT NULL,
		filename TEXT NOT NULL,
		storage_key TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		UNIQUE (owner, filename)
	)`,
	`CREATE TABLE shares (
		id TEXT PRIMARY KEY,
		grantor TEXT NOT NULL,
		grantee TEXT NOT NULL,
		storage_key TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,
}

// setupDB opens a per-test in-memory database with the server schema.
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	for _, stmt := range testSchema {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	return db
}

type testEnv struct {
	db    *sql.DB
	store *objstore.MemStore
	files *FileService
	users *UserService
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	db := setupDB(t)
	rm := repomanager.NewPostgresRepositoryManager()
	store := objstore.NewMemStore()
	return &testEnv{
		db:    db,
		store: store,
		files: NewFileService(db, rm, store),
		users: NewUserService(db, rm),
	}
}
