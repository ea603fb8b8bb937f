package files

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dpetrovs/filebox/internal/common"
	"github.com/dpetrovs/filebox/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestUpsert_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+files\s*\(id,\s*owner,\s*filename,\s*storage_key,\s*created_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)\s*ON\s+CONFLICT\s*\(owner,\s*filename\)\s*DO\s+UPDATE\s+SET\s+storage_key\s*=\s*EXCLUDED.storage_key;\s*$`

	mock.ExpectExec(q).
		WithArgs(sqlmock.AnyArg(), "alice", "a.txt", "[alice] - a.txt", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rec := &models.FileRecord{Owner: "alice", Filename: "a.txt", StorageKey: "[alice] - a.txt"}
	if err := repo.Upsert(context.Background(), rec); err != nil {
		t.Fatalf("Upsert error: %v", err)
	}
}

func TestUpsert_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^\s*INSERT\s+INTO\s+files`).
		WithArgs(sqlmock.AnyArg(), "alice", "a.txt", "[alice] - a.txt", sqlmock.AnyArg()).
		WillReturnError(errors.New("db down"))

	rec := &models.FileRecord{Owner: "alice", Filename: "a.txt", StorageKey: "[alice] - a.txt"}
	err := repo.Upsert(context.Background(), rec)
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestListByOwner_ReturnsRowsInOrder(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+id,\s*owner,\s*filename,\s*storage_key\s+FROM\s+files\s+WHERE\s+owner\s*=\s*\$1\s+ORDER\s+BY\s+created_at,\s*filename\s*$`

	rows := sqlmock.NewRows([]string{"id", "owner", "filename", "storage_key"}).
		AddRow("f-1", "alice", "a.txt", "[alice] - a.txt").
		AddRow("f-2", "alice", "b.txt", "[alice] - b.txt")
	mock.ExpectQuery(q).WithArgs("alice").WillReturnRows(rows)

	got, err := repo.ListByOwner(context.Background(), "alice")
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(got) != 2 || got[0].Filename != "a.txt" || got[1].Filename != "b.txt" {
		t.Fatalf("unexpected records: %+v", got)
	}
}

func TestListByOwner_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "owner", "filename", "storage_key"})
	mock.ExpectQuery(`(?s)^\s*SELECT\s+id,\s*owner,\s*filename`).WithArgs("ghost").WillReturnRows(rows)

	got, err := repo.ListByOwner(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("ListByOwner error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no records, got %+v", got)
	}
}

func TestGetByOwnerAndName_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+id,\s*owner,\s*filename,\s*storage_key\s+FROM\s+files\s+WHERE\s+owner\s*=\s*\$1\s+AND\s+filename\s*=\s*\$2\s*$`

	rows := sqlmock.NewRows([]string{"id", "owner", "filename", "storage_key"}).
		AddRow("f-1", "alice", "a.txt", "[alice] - a.txt")
	mock.ExpectQuery(q).WithArgs("alice", "a.txt").WillReturnRows(rows)

	got, err := repo.GetByOwnerAndName(context.Background(), "alice", "a.txt")
	if err != nil {
		t.Fatalf("GetByOwnerAndName error: %v", err)
	}
	if got.StorageKey != "[alice] - a.txt" {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestGetByOwnerAndName_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^\s*SELECT\s+id,\s*owner,\s*filename`).
		WithArgs("alice", "ghost.txt").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByOwnerAndName(context.Background(), "alice", "ghost.txt")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}
