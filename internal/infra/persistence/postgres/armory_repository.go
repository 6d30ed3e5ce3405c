package postgres

import (
	"context"

	"tavern/internal/domain/entity"
	domainerrors "tavern/internal/domain/errors"
	"tavern/internal/domain/repository"
	"tavern/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// armoryRepository implements the repository.ArmoryRepository interface using GORM.
type armoryRepository struct {
	db *gorm.DB
}

// NewArmoryRepository is the constructor for armoryRepository.
func NewArmoryRepository(db *gorm.DB) repository.ArmoryRepository {
	return &armoryRepository{db: db}
}

// CreateCharacter persists a new character and assigns its ID.
func (repo *armoryRepository) CreateCharacter(ctx context.Context, character *entity.Character) error {
	characterM := fromCharacterDomain(character)

	if err := repo.db.WithContext(ctx).Create(characterM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required character information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create character")
	}

	character.ID = characterM.ID
	character.CreatedAt = characterM.CreatedAt
	character.UpdatedAt = characterM.UpdatedAt

	return nil
}

// FindCharacterByID retrieves a character by its unique ID.
func (repo *armoryRepository) FindCharacterByID(ctx context.Context, id int64) (*entity.Character, error) {
	var characterM model.CharacterModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&characterM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCharacterNotFound
		}

		return nil, errors.Wrap(err, "failed to find character by id")
	}

	return toCharacterDomain(&characterM), nil
}

// FindWeaponByCharacterID retrieves the weapon attached to a character.
func (repo *armoryRepository) FindWeaponByCharacterID(ctx context.Context, characterID int64) (*entity.Weapon, error) {
	var weaponM model.WeaponModel
	err := repo.db.WithContext(ctx).
		Where("character_id = ?", characterID).
		First(&weaponM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWeaponNotFound
		}

		return nil, errors.Wrap(err, "failed to find weapon by character id")
	}

	return toWeaponDomain(&weaponM), nil
}

// CreateWeapon attaches a weapon to a character. The unique index on
// character_id enforces the one-weapon rule at the store level.
func (repo *armoryRepository) CreateWeapon(ctx context.Context, weapon *entity.Weapon) error {
	weaponM := fromWeaponDomain(weapon)

	if err := repo.db.WithContext(ctx).Create(weaponM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrWeaponConflict
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCharacterNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create weapon")
	}

	weapon.ID = weaponM.ID
	weapon.CreatedAt = weaponM.CreatedAt
	weapon.UpdatedAt = weaponM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toCharacterDomain converts a GORM CharacterModel to a domain Character entity.
func toCharacterDomain(data *model.CharacterModel) *entity.Character {
	if data == nil {
		return nil
	}

	return &entity.Character{
		ID:        data.ID,
		Name:      data.Name,
		UserID:    data.UserID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCharacterDomain converts a domain Character entity to a GORM CharacterModel.
func fromCharacterDomain(data *entity.Character) *model.CharacterModel {
	if data == nil {
		return nil
	}

	return &model.CharacterModel{
		ID:     data.ID,
		Name:   data.Name,
		UserID: data.UserID,
	}
}

// toWeaponDomain converts a GORM WeaponModel to a domain Weapon entity.
func toWeaponDomain(data *model.WeaponModel) *entity.Weapon {
	if data == nil {
		return nil
	}

	return &entity.Weapon{
		ID:          data.ID,
		Name:        data.Name,
		Damage:      data.Damage,
		CharacterID: data.CharacterID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromWeaponDomain converts a domain Weapon entity to a GORM WeaponModel.
func fromWeaponDomain(data *entity.Weapon) *model.WeaponModel {
	if data == nil {
		return nil
	}

	return &model.WeaponModel{
		ID:          data.ID,
		Name:        data.Name,
		Damage:      data.Damage,
		CharacterID: data.CharacterID,
	}
}
