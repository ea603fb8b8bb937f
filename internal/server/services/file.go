package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dpetrovs/filebox/internal/common"
	"github.com/dpetrovs/filebox/internal/server/models"
	"github.com/dpetrovs/filebox/internal/server/objstore"
	"github.com/dpetrovs/filebox/internal/server/repositories/repomanager"
	"github.com/dpetrovs/filebox/internal/server/storagekey"
)

// listingTimeFormat is the timestamp layout used in listing lines.
const listingTimeFormat = "2006/01/02 15:04:05"

// FileService implements upload, listing, download and sharing of files.
// Blobs live in the object store under derived keys; the owner index and the
// sharing grants live in the database.
type FileService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	store       objstore.ObjectStore
}

// NewFileService constructs a FileService over the given DB, repositories
// and object store.
func NewFileService(db *sql.DB, m repomanager.RepositoryManager, store objstore.ObjectStore) *FileService {
	return &FileService{db: db, repomanager: m, store: store}
}

// Upload stores content under the derived key for (filename, owner),
// overwriting any previous upload of the same logical file. The owner-index
// write and the blob write are two independent operations: when the second
// fails the first is not rolled back.
func (s *FileService) Upload(ctx context.Context, filename, owner string, content []byte) error {
	key := storagekey.Encode(filename, owner)

	record := &models.FileRecord{Owner: owner, Filename: filename, StorageKey: key}
	if err := s.repomanager.Files(s.db).Upsert(ctx, record); err != nil {
		return fmt.Errorf("error saving file record: %w", err)
	}

	if err := s.store.Put(ctx, key, content, owner); err != nil {
		return fmt.Errorf("error writing object: %w", err)
	}

	return nil
}

// List returns the user's visible files, owned first and then shared with
// them, one line per file:
//
//	<filename> <size> <YYYY/MM/DD HH:MM:SS> <owner>
//
// Lines are joined with '\n' without a trailing newline; an empty view
// yields an empty string. Index rows whose blob has vanished are skipped
// (uploads are not transactional across the two stores).
func (s *FileService) List(ctx context.Context, user string) (string, error) {
	owned, err := s.repomanager.Files(s.db).ListByOwner(ctx, user)
	if err != nil {
		return "", fmt.Errorf("error listing files: %w", err)
	}

	grants, err := s.repomanager.Shares(s.db).ListByGrantee(ctx, user)
	if err != nil {
		return "", fmt.Errorf("error listing shares: %w", err)
	}

	var lines []string

	for _, record := range owned {
		line, err := s.formatLine(ctx, record.StorageKey, record.Filename, record.Owner)
		if err != nil {
			if errors.Is(err, objstore.ErrNotFound) {
				continue
			}
			return "", err
		}
		lines = append(lines, line)
	}

	seen := make(map[string]struct{}, len(grants))
	for _, grant := range grants {
		// Duplicate grants are allowed in storage; show each file once.
		if _, ok := seen[grant.StorageKey]; ok {
			continue
		}
		seen[grant.StorageKey] = struct{}{}

		filename, err := storagekey.Decode(grant.StorageKey, grant.Grantor)
		if err != nil {
			continue
		}
		line, err := s.formatLine(ctx, grant.StorageKey, filename, grant.Grantor)
		if err != nil {
			if errors.Is(err, objstore.ErrNotFound) {
				continue
			}
			return "", err
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n"), nil
}

func (s *FileService) formatLine(ctx context.Context, key, filename, owner string) (string, error) {
	info, err := s.store.Head(ctx, key)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %d %s %s",
		filename, info.Size, info.LastModified.Format(listingTimeFormat), owner), nil
}

// Download returns the file's raw bytes when user owns it or holds a sharing
// grant for it, and common.ErrorNotOwner otherwise. Ownership is checked
// against the owner recorded in the blob's metadata, not just the key shape.
func (s *FileService) Download(ctx context.Context, filename, user string) ([]byte, error) {
	ownKey := storagekey.Encode(filename, user)

	info, err := s.store.Head(ctx, ownKey)
	if err == nil && info.Owner == user {
		return s.store.Get(ctx, ownKey)
	}
	if err != nil && !errors.Is(err, objstore.ErrNotFound) {
		return nil, err
	}

	grants, err := s.repomanager.Shares(s.db).ListByGrantee(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("error listing shares: %w", err)
	}
	for _, grant := range grants {
		name, err := storagekey.Decode(grant.StorageKey, grant.Grantor)
		if err != nil || name != filename {
			continue
		}
		return s.store.Get(ctx, grant.StorageKey)
	}

	return nil, common.ErrorNotOwner
}

// Share grants grantee read access to grantor's file. It fails with
// common.ErrorNotFound when the grantee has no account and with
// common.ErrorNotOwner when the grantor does not own the file. Repeated
// grants insert repeated rows.
func (s *FileService) Share(ctx context.Context, grantor, grantee, filename string) error {
	if _, err := s.repomanager.Users(s.db).GetByUsername(ctx, grantee); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error checking grantee: %w", err)
	}

	record, err := s.repomanager.Files(s.db).GetByOwnerAndName(ctx, grantor, filename)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotOwner
		}
		return fmt.Errorf("error checking ownership: %w", err)
	}

	share := &models.Share{Grantor: grantor, Grantee: grantee, StorageKey: record.StorageKey}
	if err := s.repomanager.Shares(s.db).Create(ctx, share); err != nil {
		return fmt.Errorf("error creating share: %w", err)
	}
	return nil
}
