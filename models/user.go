package models

import "time"

// User represents a registered account. It carries identity attributes and
// the bcrypt credential hash.
// The hash must never cross a trust boundary: it is excluded from JSON and
// only the auth service is allowed to compare against it.
type User struct {
	// UserID is the internal unique identifier of the user.
	// Immutable after creation; required on every scoped data operation.
	UserID int64 `json:"-"`

	// Username is the unique, case-sensitive login identifier.
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password, salt and cost
	// parameters embedded. Plaintext is never persisted.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
