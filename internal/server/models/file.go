package models

import "time"

// FileRecord is the owner-index row for an uploaded file. The bytes
// themselves live in object storage under StorageKey; this row lets the
// server list a user's files without scanning the whole bucket.
type FileRecord struct {
	ID string
	// Owner is the username that uploaded the file.
	Owner string
	// Filename is the logical name, unique per owner.
	Filename string
	// StorageKey is the derived object-storage key (see storagekey.Encode).
	StorageKey string
	CreatedAt  time.Time
}
