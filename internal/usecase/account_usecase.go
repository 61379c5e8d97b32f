// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"forkful/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to register a new account.
type SignupInput struct {
	Username string
	Password string
	Bio      *string
	ImageURL *string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string
	Password string
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Signup validates and persists a new account. The password is checked
	// before anything is written; uniqueness failures surface as validation errors.
	Signup(ctx context.Context, input *SignupInput) (*entity.User, error)

	// Login verifies the credentials and returns the matching user.
	Login(ctx context.Context, input *LoginInput) (*entity.User, error)

	// CurrentUser resolves a session's user id back to the full account.
	CurrentUser(ctx context.Context, userID int) (*entity.User, error)

	// DeleteAccount removes the account with its recipes and sessions.
	// Not exposed over HTTP; it backs the explicit cascade contract.
	DeleteAccount(ctx context.Context, userID int) error
}
