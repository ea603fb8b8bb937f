// Package models defines server-side data models persisted in the database.
package models

import "time"

// User is an account. Passwords are stored and compared verbatim: the wire
// protocol has no notion of hashed credentials and a faithful server keeps
// that behavior. See DESIGN.md before deploying this anywhere real.
type User struct {
	ID        string
	UserName  string
	Password  string
	CreatedAt time.Time
}
