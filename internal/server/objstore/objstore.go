// Package objstore abstracts the blob backend that holds file contents.
// Keys are derived storage keys (see storagekey); the owner travels as
// per-object metadata so ownership checks need only a Head call.
package objstore

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get and Head when no object exists at the key.
var ErrNotFound = errors.New("object not found")

// OwnerMetadataKey is the per-object metadata key carrying the owner username.
const OwnerMetadataKey = "owner"

// ObjectInfo describes a stored blob without its content.
type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
	// Owner is taken from per-object metadata and may be empty for objects
	// written outside this service.
	Owner string
}

// ObjectStore is the minimal blob-store surface the file service needs.
// Put overwrites any existing object at the same key.
type ObjectStore interface {
	Put(ctx context.Context, key string, content []byte, owner string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Head(ctx context.Context, key string) (*ObjectInfo, error)
	List(ctx context.Context) ([]*ObjectInfo, error)
}
