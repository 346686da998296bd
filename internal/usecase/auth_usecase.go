// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"tangoshop/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterResellerInput defines the data required to register a reseller account.
type RegisterResellerInput struct {
	Email              string
	Password           string
	FirstName          string
	LastName           string
	Phone              string
	Website            string
	MarkupType         entity.MarkupType
	DefaultMarkupValue float64
}

// RegisterSupplierInput defines the data required to register a supplier account.
type RegisterSupplierInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	Phone       string
	CompanyName string
	Description string
	Address     string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
	FCMToken string
}

// RefreshTokenInput carries the raw refresh token presented by the client.
type RefreshTokenInput struct {
	RefreshToken string
}

// ForgotPasswordInput starts the password recovery flow.
type ForgotPasswordInput struct {
	Email string
}

// ResetPasswordInput consumes a recovery token and sets a new password.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// TokenPairOutput returns a rotated token pair.
type TokenPairOutput struct {
	AccessToken  string
	RefreshToken string
}

// ForgotPasswordOutput returns the single-use recovery token. Delivering it
// to the user (email, SMS) is the caller's concern.
type ForgotPasswordOutput struct {
	ResetToken string
}

// AuthUsecase defines the interface for authentication and account lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	RegisterReseller(ctx context.Context, input *RegisterResellerInput) (*RegisterOutput, error)
	RegisterSupplier(ctx context.Context, input *RegisterSupplierInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Logout(ctx context.Context, refreshToken string) error
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*TokenPairOutput, error)
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) (*ForgotPasswordOutput, error)
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
