// Package common defines sentinel errors shared by client and server layers
// of Filebox. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// ErrorNotOwner means the requesting user neither owns the file nor
	// holds a sharing grant for it.
	ErrorNotOwner = errors.New("not the owner")

	// ErrorDuplicate means a record with the same natural key already exists.
	ErrorDuplicate = errors.New("already exists")
)
