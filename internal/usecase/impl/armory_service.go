package impl

import (
	"context"
	"log/slog"

	deliverycontext "tavern/internal/delivery/context"
	"tavern/internal/domain/entity"
	domainerrors "tavern/internal/domain/errors"
	"tavern/internal/domain/repository"
	"tavern/internal/usecase"

	"github.com/pkg/errors"
)

// armoryService implements the ArmoryUsecase interface.
type armoryService struct {
	txManager  repository.TransactionManager
	armoryRepo repository.ArmoryRepository
	userRepo   repository.UserRepository
	logger     *slog.Logger
}

// NewArmoryService is the constructor for armoryService.
func NewArmoryService(
	txManager repository.TransactionManager,
	armoryRepo repository.ArmoryRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.ArmoryUsecase {
	return &armoryService{
		txManager:  txManager,
		armoryRepo: armoryRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (srv *armoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCharacter creates a character owned by an existing user.
func (srv *armoryService) CreateCharacter(ctx context.Context, input *usecase.CreateCharacterInput) (int64, error) {
	if _, err := srv.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return 0, errors.Wrap(domainerrors.ErrUserNotFound, "character creation rejected")
		}

		return 0, errors.Wrap(err, "failed to load character owner")
	}

	character := &entity.Character{
		Name:   input.Name,
		UserID: input.UserID,
	}

	if err := srv.armoryRepo.CreateCharacter(ctx, character); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return 0, errors.Wrap(domainerrors.ErrUserNotFound, "character creation rejected")
		}

		return 0, errors.Wrap(err, "failed to create character")
	}

	srv.log(ctx).Debug("Character created", slog.Int64("characterID", character.ID), slog.Int64("userID", input.UserID))

	return character.ID, nil
}

// AttachWeapon equips a character with a weapon. A character can hold at
// most one weapon, and a weapon that deals no damage is rejected.
func (srv *armoryService) AttachWeapon(ctx context.Context, input *usecase.AttachWeaponInput) (int64, error) {
	if input.Damage == 0 {
		return 0, errors.Wrap(domainerrors.ErrValidationFailed, "weapon damage must be non-zero")
	}

	var weaponID int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		armoryRepo := repoFactory.ArmoryRepo()

		if _, err := armoryRepo.FindCharacterByID(ctx, input.CharacterID); err != nil {
			if errors.Is(err, repository.ErrCharacterNotFound) {
				return errors.Wrap(domainerrors.ErrCharacterNotFound, "weapon attachment rejected")
			}

			return errors.Wrap(err, "failed to load character for weapon attachment")
		}

		// Optimistic pre-check; the unique index on the weapon's character
		// reference is the authoritative one-weapon-per-character guard.
		if _, err := armoryRepo.FindWeaponByCharacterID(ctx, input.CharacterID); err == nil {
			return errors.Wrap(domainerrors.ErrWeaponAlreadyAttached, "weapon attachment rejected")
		} else if !errors.Is(err, repository.ErrWeaponNotFound) {
			return errors.Wrap(err, "failed to check existing weapon")
		}

		weapon := &entity.Weapon{
			Name:        input.Name,
			Damage:      input.Damage,
			CharacterID: input.CharacterID,
		}

		if err := armoryRepo.CreateWeapon(ctx, weapon); err != nil {
			if errors.Is(err, repository.ErrWeaponConflict) {
				return errors.Wrap(domainerrors.ErrWeaponAlreadyAttached, "weapon attachment rejected by uniqueness constraint")
			}
			if errors.Is(err, repository.ErrCharacterNotFound) {
				return errors.Wrap(domainerrors.ErrCharacterNotFound, "weapon attachment rejected")
			}

			return errors.Wrap(err, "failed to create weapon")
		}

		weaponID = weapon.ID

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Weapon attachment failed", slog.Int64("characterID", input.CharacterID), slog.Any("error", err))

		return 0, err
	}

	srv.log(ctx).Debug("Weapon attached", slog.Int64("weaponID", weaponID), slog.Int64("characterID", input.CharacterID))

	return weaponID, nil
}
