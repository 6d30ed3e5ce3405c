package usecase

import "context"

// CreateCharacterInput defines the data required to create a character.
type CreateCharacterInput struct {
	Name   string `json:"name" validate:"required"`
	UserID int64  `json:"userId" validate:"required"`
}

// AttachWeaponInput defines the data required to attach a weapon.
type AttachWeaponInput struct {
	Name        string `json:"name" validate:"required"`
	Damage      int    `json:"damage"`
	CharacterID int64  `json:"characterId" validate:"required"`
}

// ArmoryUsecase covers the character/weapon equipment side-feature.
type ArmoryUsecase interface {
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (int64, error)
	AttachWeapon(ctx context.Context, input *AttachWeaponInput) (int64, error)
}
