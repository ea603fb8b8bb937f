package models

import "time"

// Share grants one user read access to another user's file. Grants are
// additive only; there is no revocation and duplicates are allowed (the
// table carries no unique constraint on purpose).
type Share struct {
	ID string
	// Grantor owns the file.
	Grantor string
	// Grantee receives read access.
	Grantee string
	// StorageKey is the derived key of the shared file.
	StorageKey string
	CreatedAt  time.Time
}
