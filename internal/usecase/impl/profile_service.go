package impl

import (
	"context"
	"log/slog"

	deliverycontext "tavern/internal/delivery/context"
	domainerrors "tavern/internal/domain/errors"
	"tavern/internal/domain/repository"
	"tavern/internal/usecase"

	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpdateLocation persists a new coordinate pair for the user. Only the
// latitude and longitude columns are written.
func (srv *profileService) UpdateLocation(ctx context.Context, userID int64, input *usecase.UpdateLocationInput) (int64, error) {
	if err := srv.ensureUserExists(ctx, userID); err != nil {
		return 0, err
	}

	affected, err := srv.userRepo.UpdateLocation(ctx, userID, input.Latitude, input.Longitude)
	if err != nil {
		return 0, errors.Wrap(err, "failed to update location")
	}

	srv.log(ctx).Debug("Location updated",
		slog.Int64("userID", userID),
		slog.Float64("latitude", input.Latitude),
		slog.Float64("longitude", input.Longitude),
	)

	return affected, nil
}

// UpdateEmail persists a new email address for the user.
func (srv *profileService) UpdateEmail(ctx context.Context, userID int64, input *usecase.UpdateEmailInput) (int64, error) {
	if err := srv.ensureUserExists(ctx, userID); err != nil {
		return 0, err
	}

	affected, err := srv.userRepo.UpdateEmail(ctx, userID, input.Email)
	if err != nil {
		return 0, errors.Wrap(err, "failed to update email")
	}

	srv.log(ctx).Debug("Email updated", slog.Int64("userID", userID))

	return affected, nil
}

// UpdatePhoto persists a new photo blob for the user.
func (srv *profileService) UpdatePhoto(ctx context.Context, userID int64, input *usecase.UpdatePhotoInput) (int64, error) {
	if err := srv.ensureUserExists(ctx, userID); err != nil {
		return 0, err
	}

	affected, err := srv.userRepo.UpdatePhoto(ctx, userID, input.Photo)
	if err != nil {
		return 0, errors.Wrap(err, "failed to update photo")
	}

	srv.log(ctx).Debug("Photo updated", slog.Int64("userID", userID), slog.Int("photoBytes", len(input.Photo)))

	return affected, nil
}

// ensureUserExists resolves the user before a partial update so a missing
// account surfaces as a not-found error instead of a silent zero-row write.
func (srv *profileService) ensureUserExists(ctx context.Context, userID int64) error {
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "profile update rejected")
		}

		return errors.Wrap(err, "failed to load user for profile update")
	}

	return nil
}
