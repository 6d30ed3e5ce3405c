// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"tavern/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username  string  `json:"username" validate:"required"`
	Password  string  `json:"password" validate:"required"`
	Email     string  `json:"email" validate:"omitempty,email"`
	Photo     []byte  `json:"photo"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AuthenticateInput defines the data required for a login attempt.
type AuthenticateInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordInput defines the data required to rotate a credential.
type ChangePasswordInput struct {
	Username    string `json:"username" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's identifier.
type RegisterOutput struct {
	UserID int64 `json:"userId"`
}

// AuthenticateOutput returns the authenticated user record with the
// refreshed last-access timestamp.
type AuthenticateOutput struct {
	User *entity.User
}

// ChangePasswordOutput returns the number of records the rotation touched.
type ChangePasswordOutput struct {
	Affected int64 `json:"affected"`
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Authenticate(ctx context.Context, input *AuthenticateInput) (*AuthenticateOutput, error)
	ChangePassword(ctx context.Context, input *ChangePasswordInput) (*ChangePasswordOutput, error)
	ListUsers(ctx context.Context) ([]*entity.User, error)
	GetUserByID(ctx context.Context, id int64) (*entity.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entity.User, error)
}
