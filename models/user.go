package models

import "time"

// User represents an account entity used for authentication, page ownership,
// and sharing. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Password carries the plain-text password on inbound register/login
	// requests only. It is never persisted and never serialised back out.
	Password string `json:"password,omitempty"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// Never exposed via JSON.
	PasswordHash string `json:"-"`

	// OAuthSubject is the subject identifier assigned by an external OAuth
	// provider, empty for accounts created via plain registration.
	OAuthSubject string `json:"-"`

	// Banned marks accounts that are blocked from logging in.
	// Set and cleared through the admin API.
	Banned bool `json:"banned,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
