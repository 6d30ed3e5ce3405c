package impl

import (
	"context"
	"testing"

	"tavern/internal/domain/entity"
	domainerrors "tavern/internal/domain/errors"
	"tavern/internal/domain/repository"
	mockRepo "tavern/internal/mocks/repository"
	"tavern/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// armoryServiceFixtures holds all test dependencies for armory service tests.
type armoryServiceFixtures struct {
	t          *testing.T
	service    usecase.ArmoryUsecase
	txManager  *mockRepo.MockTransactionManager
	armoryRepo *mockRepo.MockArmoryRepository
	userRepo   *mockRepo.MockUserRepository
}

func createTestArmoryService(t *testing.T) armoryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	armoryRepo := mockRepo.NewMockArmoryRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewArmoryService(txManager, armoryRepo, userRepo, newDiscardLogger())

	return armoryServiceFixtures{
		t:          t,
		service:    service,
		txManager:  txManager,
		armoryRepo: armoryRepo,
		userRepo:   userRepo,
	}
}

func (f armoryServiceFixtures) onExecute(ctx context.Context, returnErr error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)

			_ = fn(factory)
		}).
		Return(returnErr)
}

func TestArmoryService_CreateCharacter_Success(t *testing.T) {
	fx := createTestArmoryService(t)

	ctx := context.Background()
	input := &usecase.CreateCharacterInput{
		Name:   "Strider",
		UserID: 7,
	}

	fx.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.User{ID: 7}, nil)
	fx.armoryRepo.EXPECT().
		CreateCharacter(ctx, mock.AnythingOfType("*entity.Character")).
		Run(func(ctx context.Context, character *entity.Character) {
			assert.Equal(t, "Strider", character.Name)
			assert.Equal(t, int64(7), character.UserID)
			character.ID = 3
		}).
		Return(nil)

	characterID, err := fx.service.CreateCharacter(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(3), characterID)
}

func TestArmoryService_CreateCharacter_OwnerMissing(t *testing.T) {
	fx := createTestArmoryService(t)

	ctx := context.Background()
	input := &usecase.CreateCharacterInput{
		Name:   "Strider",
		UserID: 42,
	}

	fx.userRepo.EXPECT().FindByID(ctx, int64(42)).Return(nil, repository.ErrUserNotFound)

	characterID, err := fx.service.CreateCharacter(ctx, input)

	assert.Error(t, err)
	assert.Zero(t, characterID)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestArmoryService_AttachWeapon_Success(t *testing.T) {
	fx := createTestArmoryService(t)

	ctx := context.Background()
	input := &usecase.AttachWeaponInput{
		Name:        "Anduril",
		Damage:      42,
		CharacterID: 3,
	}

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		txArmoryRepo := mockRepo.NewMockArmoryRepository(t)
		factory.EXPECT().ArmoryRepo().Return(txArmoryRepo)

		txArmoryRepo.EXPECT().FindCharacterByID(ctx, int64(3)).Return(&entity.Character{ID: 3}, nil)
		txArmoryRepo.EXPECT().FindWeaponByCharacterID(ctx, int64(3)).Return(nil, repository.ErrWeaponNotFound)
		txArmoryRepo.EXPECT().
			CreateWeapon(ctx, mock.AnythingOfType("*entity.Weapon")).
			Run(func(ctx context.Context, weapon *entity.Weapon) {
				assert.Equal(t, "Anduril", weapon.Name)
				assert.Equal(t, 42, weapon.Damage)
				weapon.ID = 9
			}).
			Return(nil)
	})

	weaponID, err := fx.service.AttachWeapon(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(9), weaponID)
}

func TestArmoryService_AttachWeapon_ZeroDamage(t *testing.T) {
	fx := createTestArmoryService(t)

	ctx := context.Background()
	input := &usecase.AttachWeaponInput{
		Name:        "Foam Sword",
		Damage:      0,
		CharacterID: 3,
	}

	weaponID, err := fx.service.AttachWeapon(ctx, input)

	assert.Error(t, err)
	assert.Zero(t, weaponID)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestArmoryService_AttachWeapon_CharacterMissing(t *testing.T) {
	fx := createTestArmoryService(t)

	ctx := context.Background()
	input := &usecase.AttachWeaponInput{
		Name:        "Anduril",
		Damage:      42,
		CharacterID: 99,
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrCharacterNotFound, "weapon attachment rejected"), func(factory *mockRepo.MockRepositoryFactory) {
		txArmoryRepo := mockRepo.NewMockArmoryRepository(t)
		factory.EXPECT().ArmoryRepo().Return(txArmoryRepo)

		txArmoryRepo.EXPECT().FindCharacterByID(ctx, int64(99)).Return(nil, repository.ErrCharacterNotFound)
	})

	weaponID, err := fx.service.AttachWeapon(ctx, input)

	assert.Error(t, err)
	assert.Zero(t, weaponID)
	assert.True(t, errors.Is(err, domainerrors.ErrCharacterNotFound))
}

func TestArmoryService_AttachWeapon_AlreadyArmed(t *testing.T) {
	fx := createTestArmoryService(t)

	ctx := context.Background()
	input := &usecase.AttachWeaponInput{
		Name:        "Anduril",
		Damage:      42,
		CharacterID: 3,
	}

	existingWeapon := &entity.Weapon{ID: 9, Name: "Sting", CharacterID: 3}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrWeaponAlreadyAttached, "weapon attachment rejected"), func(factory *mockRepo.MockRepositoryFactory) {
		txArmoryRepo := mockRepo.NewMockArmoryRepository(t)
		factory.EXPECT().ArmoryRepo().Return(txArmoryRepo)

		txArmoryRepo.EXPECT().FindCharacterByID(ctx, int64(3)).Return(&entity.Character{ID: 3}, nil)
		txArmoryRepo.EXPECT().FindWeaponByCharacterID(ctx, int64(3)).Return(existingWeapon, nil)
	})

	weaponID, err := fx.service.AttachWeapon(ctx, input)

	assert.Error(t, err)
	assert.Zero(t, weaponID)
	assert.True(t, errors.Is(err, domainerrors.ErrWeaponAlreadyAttached))
}

func TestArmoryService_AttachWeapon_ConstraintConflict(t *testing.T) {
	fx := createTestArmoryService(t)

	ctx := context.Background()
	input := &usecase.AttachWeaponInput{
		Name:        "Anduril",
		Damage:      42,
		CharacterID: 3,
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrWeaponAlreadyAttached, "weapon attachment rejected by uniqueness constraint"), func(factory *mockRepo.MockRepositoryFactory) {
		txArmoryRepo := mockRepo.NewMockArmoryRepository(t)
		factory.EXPECT().ArmoryRepo().Return(txArmoryRepo)

		// The pre-check misses a concurrent attach; the unique index catches it.
		txArmoryRepo.EXPECT().FindCharacterByID(ctx, int64(3)).Return(&entity.Character{ID: 3}, nil)
		txArmoryRepo.EXPECT().FindWeaponByCharacterID(ctx, int64(3)).Return(nil, repository.ErrWeaponNotFound)
		txArmoryRepo.EXPECT().
			CreateWeapon(ctx, mock.AnythingOfType("*entity.Weapon")).
			Return(repository.ErrWeaponConflict)
	})

	weaponID, err := fx.service.AttachWeapon(ctx, input)

	assert.Error(t, err)
	assert.Zero(t, weaponID)
	assert.True(t, errors.Is(err, domainerrors.ErrWeaponAlreadyAttached))
}
