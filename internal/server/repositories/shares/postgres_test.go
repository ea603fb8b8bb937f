package shares

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
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

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+shares\s*\(id,\s*grantor,\s*grantee,\s*storage_key,\s*created_at\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)\s*$`

	mock.ExpectExec(q).
		WithArgs(sqlmock.AnyArg(), "alice", "bob", "[alice] - report.pdf", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s := &models.Share{Grantor: "alice", Grantee: "bob", StorageKey: "[alice] - report.pdf"}
	if err := repo.Create(context.Background(), s); err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if s.ID == "" {
		t.Fatal("Create must assign an id")
	}
}

func TestCreate_AllowsDuplicates(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*INSERT\s+INTO\s+shares`

	mock.ExpectExec(q).
		WithArgs(sqlmock.AnyArg(), "alice", "bob", "[alice] - report.pdf", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q).
		WithArgs(sqlmock.AnyArg(), "alice", "bob", "[alice] - report.pdf", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s1 := &models.Share{Grantor: "alice", Grantee: "bob", StorageKey: "[alice] - report.pdf"}
	s2 := &models.Share{Grantor: "alice", Grantee: "bob", StorageKey: "[alice] - report.pdf"}
	if err := repo.Create(context.Background(), s1); err != nil {
		t.Fatalf("first Create error: %v", err)
	}
	if err := repo.Create(context.Background(), s2); err != nil {
		t.Fatalf("second Create error: %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^\s*INSERT\s+INTO\s+shares`).
		WithArgs(sqlmock.AnyArg(), "alice", "bob", "[alice] - report.pdf", sqlmock.AnyArg()).
		WillReturnError(errors.New("db down"))

	s := &models.Share{Grantor: "alice", Grantee: "bob", StorageKey: "[alice] - report.pdf"}
	err := repo.Create(context.Background(), s)
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestListByGrantee(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^\s*SELECT\s+id,\s*grantor,\s*grantee,\s*storage_key\s+FROM\s+shares\s+WHERE\s+grantee\s*=\s*\$1\s+ORDER\s+BY\s+created_at,\s*id\s*$`

	rows := sqlmock.NewRows([]string{"id", "grantor", "grantee", "storage_key"}).
		AddRow("s-1", "alice", "bob", "[alice] - report.pdf").
		AddRow("s-2", "carol", "bob", "[carol] - notes.txt")
	mock.ExpectQuery(q).WithArgs("bob").WillReturnRows(rows)

	got, err := repo.ListByGrantee(context.Background(), "bob")
	if err != nil {
		t.Fatalf("ListByGrantee error: %v", err)
	}
	if len(got) != 2 || got[0].Grantor != "alice" || got[1].Grantor != "carol" {
		t.Fatalf("unexpected shares: %+v", got)
	}
}

func TestListByGrantee_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "grantor", "grantee", "storage_key"})
	mock.ExpectQuery(`(?s)^\s*SELECT\s+id,\s*grantor`).WithArgs("nobody").WillReturnRows(rows)

	got, err := repo.ListByGrantee(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("ListByGrantee error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no shares, got %+v", got)
	}
}
