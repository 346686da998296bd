// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken represents a long-lived, authorized user session.
// It is used to obtain a new Access Token after the old one expires, without requiring credentials.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this specific refresh token record.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // Stores a SHA-256 hash of the raw refresh token for secure comparison in the database.
	ExpiresAt time.Time // The exact time when this refresh token will expire and become invalid.
	CreatedAt time.Time // Timestamp of when this session was created (i.e., when the user logged in).
}

// PasswordResetToken represents a single-use token for the password recovery flow.
type PasswordResetToken struct {
	ID        uuid.UUID  // The unique ID for this reset token record.
	UserID    uuid.UUID  // Links this token to the User requesting the reset.
	TokenHash string     // Stores a SHA-256 hash of the raw token sent to the user.
	ExpiresAt time.Time  // The exact time when this token becomes invalid.
	UsedAt    *time.Time // When the token was consumed. Nil while still usable.
	CreatedAt time.Time  // Timestamp of when the reset was requested.
}
