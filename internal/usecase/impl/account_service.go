// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "tavern/internal/delivery/context"
	"tavern/internal/domain/entity"
	domainerrors "tavern/internal/domain/errors"
	"tavern/internal/domain/repository"
	"tavern/internal/domain/service"
	"tavern/internal/usecase"

	"github.com/pkg/errors"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.CredentialHasher
	logger    *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	hasher service.CredentialHasher,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new user account with a freshly derived credential
// pair. The plaintext password is discarded after derivation and never
// appears in a log field.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if input.Username == "" || input.Password == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "username and password are required")
	}

	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	var registered *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// Optimistic pre-check only; the store's uniqueness constraint is
		// the authoritative guard against concurrent registration.
		taken, err := userRepo.Exists(ctx, input.Username)
		if err != nil {
			return errors.Wrap(err, "failed to check username availability")
		}
		if taken {
			return errors.Wrap(domainerrors.ErrDuplicateUsername, "registration rejected")
		}

		hash, salt, err := srv.hasher.Derive(input.Password)
		if err != nil {
			srv.log(ctx).Error("Failed to derive credential during registration", slog.Any("error", err))

			return errors.Wrap(domainerrors.ErrCredentialDerivation, "failed to derive credential")
		}

		newUser := &entity.User{
			Username:     input.Username,
			PasswordHash: hash,
			PasswordSalt: salt,
			Email:        input.Email,
			Photo:        input.Photo,
			Latitude:     input.Latitude,
			Longitude:    input.Longitude,
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrDuplicateUsername) {
				// The pre-check passed but the constraint caught a
				// concurrent insert of the same canonical username.
				return errors.Wrap(domainerrors.ErrDuplicateUsername, "registration rejected by uniqueness constraint")
			}

			return errors.Wrap(err, "failed to create user during registration")
		}

		registered = newUser

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("userID", registered.ID))

	return &usecase.RegisterOutput{UserID: registered.ID}, nil
}

// Authenticate validates a login attempt and records the access time on success.
func (srv *accountService) Authenticate(ctx context.Context, input *usecase.AuthenticateInput) (*usecase.AuthenticateOutput, error) {
	srv.log(ctx).Debug("Starting authentication", slog.String("username", input.Username))

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "authentication failed")
		}

		return nil, errors.Wrap(err, "failed to load user for authentication")
	}

	// Check the credential outside any transaction (key derivation is CPU-bound).
	if !srv.hasher.Verify(input.Password, user.PasswordHash, user.PasswordSalt) {
		srv.log(ctx).Warn("Authentication failed", slog.String("username", input.Username), slog.Any("error", domainerrors.ErrInvalidPassword))

		return nil, errors.Wrap(domainerrors.ErrInvalidPassword, "authentication failed")
	}

	now := time.Now()
	if _, err := srv.userRepo.UpdateLastAccess(ctx, user.ID, now); err != nil {
		return nil, errors.Wrap(err, "failed to record access time")
	}
	user.LastAccessAt = &now

	srv.log(ctx).Debug("User authenticated", slog.Int64("userID", user.ID))

	return &usecase.AuthenticateOutput{User: user}, nil
}

// ChangePassword derives a fresh hash/salt pair for the account and
// persists both fields together.
func (srv *accountService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) (*usecase.ChangePasswordOutput, error) {
	if input.NewPassword == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "new password is required")
	}

	srv.log(ctx).Info("Changing password", slog.String("username", input.Username))

	var affected int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByUsername(ctx, input.Username)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "password change rejected")
			}

			return errors.Wrap(err, "failed to load user for password change")
		}

		hash, salt, err := srv.hasher.Derive(input.NewPassword)
		if err != nil {
			srv.log(ctx).Error("Failed to derive credential during password change", slog.Any("error", err))

			return errors.Wrap(domainerrors.ErrCredentialDerivation, "failed to derive credential")
		}

		affected, err = userRepo.UpdateCredentials(ctx, user.ID, hash, salt)
		if err != nil {
			return errors.Wrap(err, "failed to persist rotated credential")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Password change failed", slog.String("username", input.Username), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Password changed", slog.String("username", input.Username), slog.Int64("affected", affected))

	return &usecase.ChangePasswordOutput{Affected: affected}, nil
}

// ListUsers returns every account in insertion order.
func (srv *accountService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	// Single query operation - use direct repository instance
	users, err := srv.userRepo.ListAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetUserByID retrieves a single account by identifier.
func (srv *accountService) GetUserByID(ctx context.Context, id int64) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return user, nil
}

// GetUserByUsername retrieves a single account by username, case-insensitively.
func (srv *accountService) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return user, nil
}
