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
)

func TestAccountService_Register_MissingFields(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "Frodo",
		Password: "",
	}

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAccountService_Register_UsernameTaken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "Frodo",
		Password: "Password123!",
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrDuplicateUsername, "registration rejected"), func(factory *mockRepo.MockRepositoryFactory) {
		txUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(txUserRepo)

		txUserRepo.EXPECT().Exists(ctx, "Frodo").Return(true, nil)
	})

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateUsername))
}

func TestAccountService_Register_ConcurrentDuplicate(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "Frodo",
		Password: "Password123!",
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrDuplicateUsername, "registration rejected by uniqueness constraint"), func(factory *mockRepo.MockRepositoryFactory) {
		txUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(txUserRepo)

		// The pre-check misses the concurrent insert; the constraint catches it.
		txUserRepo.EXPECT().Exists(ctx, "Frodo").Return(false, nil)
		fx.hasher.EXPECT().Derive("Password123!").Return([]byte("hash"), []byte("salt"), nil)
		txUserRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Return(repository.ErrDuplicateUsername)
	})

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateUsername))
}

func TestAccountService_Register_DeriveFails(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "Frodo",
		Password: "Password123!",
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrCredentialDerivation, "failed to derive credential"), func(factory *mockRepo.MockRepositoryFactory) {
		txUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(txUserRepo)

		txUserRepo.EXPECT().Exists(ctx, "Frodo").Return(false, nil)
		fx.hasher.EXPECT().Derive("Password123!").Return(nil, nil, errors.New("entropy failure"))
	})

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrCredentialDerivation))
}

func TestAccountService_Authenticate_UnknownUser(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.AuthenticateInput{
		Username: "nobody",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "nobody").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Authenticate(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAccountService_Authenticate_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.AuthenticateInput{
		Username: "Frodo",
		Password: "wrong",
	}

	storedUser := &entity.User{
		ID:           7,
		Username:     "Frodo",
		PasswordHash: []byte("derived-hash"),
		PasswordSalt: []byte("random-salt"),
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "Frodo").Return(storedUser, nil)
	fx.hasher.EXPECT().Verify("wrong", storedUser.PasswordHash, storedUser.PasswordSalt).Return(false)

	output, err := fx.service.Authenticate(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPassword))
	// A failed credential check must not record an access time.
	fx.userRepo.AssertNotCalled(t, "UpdateLastAccess", mock.Anything, mock.Anything, mock.Anything)
}

func TestAccountService_ChangePassword_EmptyPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.ChangePasswordInput{
		Username:    "Frodo",
		NewPassword: "",
	}

	output, err := fx.service.ChangePassword(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAccountService_ChangePassword_UnknownUser(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.ChangePasswordInput{
		Username:    "nobody",
		NewPassword: "NewPassword456!",
	}

	fx.onExecute(ctx, errors.Wrap(domainerrors.ErrUserNotFound, "password change rejected"), func(factory *mockRepo.MockRepositoryFactory) {
		txUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(txUserRepo)

		txUserRepo.EXPECT().FindByUsername(ctx, "nobody").Return(nil, repository.ErrUserNotFound)
	})

	output, err := fx.service.ChangePassword(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestAccountService_GetUserByID_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, int64(42)).Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetUserByID(ctx, 42)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
