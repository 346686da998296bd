// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"tangoshop/internal/domain/entity"
)

// ErrResetTokenNotFound is returned when a password reset token is not found.
var ErrResetTokenNotFound = errors.New("password reset token not found")

// PasswordResetTokenRepository defines the interface for password recovery token persistence.
type PasswordResetTokenRepository interface {
	// Create persists a new password reset token.
	Create(ctx context.Context, token *entity.PasswordResetToken) error

	// FindByHash retrieves a reset token record by its securely stored hash.
	FindByHash(ctx context.Context, tokenHash string) (*entity.PasswordResetToken, error)

	// MarkUsed stamps the token as consumed so it cannot be replayed.
	MarkUsed(ctx context.Context, tokenHash string) error

	// DeleteExpired removes all expired reset tokens from the database.
	DeleteExpired(ctx context.Context) error
}
