package repository

import (
	"context"
	"errors"

	"tavern/internal/domain/entity"
)

// ErrCharacterNotFound is returned when a character lookup finds nothing.
var ErrCharacterNotFound = errors.New("character not found")

// ErrWeaponNotFound is returned when a weapon lookup finds nothing.
var ErrWeaponNotFound = errors.New("weapon not found")

// ErrWeaponConflict is returned when a character already carries a weapon.
var ErrWeaponConflict = errors.New("character already carries a weapon")

// ArmoryRepository persists characters and their attached weapons.
type ArmoryRepository interface {
	// CreateCharacter persists a new character and assigns its ID.
	CreateCharacter(ctx context.Context, character *entity.Character) error

	// FindCharacterByID retrieves a character by its unique ID.
	FindCharacterByID(ctx context.Context, id int64) (*entity.Character, error)

	// FindWeaponByCharacterID retrieves the weapon attached to a
	// character. Returns ErrWeaponNotFound when none is attached.
	FindWeaponByCharacterID(ctx context.Context, characterID int64) (*entity.Weapon, error)

	// CreateWeapon attaches a weapon to a character. Returns
	// ErrWeaponConflict when the one-weapon-per-character constraint
	// rejects the insert.
	CreateWeapon(ctx context.Context, weapon *entity.Weapon) error
}
