package impl

import (
	"context"
	"testing"

	"tavern/internal/domain/entity"
	"tavern/internal/domain/repository"
	mockRepo "tavern/internal/mocks/repository"
	mockSvc "tavern/internal/mocks/service"
	"tavern/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	t         *testing.T
	service   usecase.AccountUsecase
	txManager *mockRepo.MockTransactionManager
	userRepo  *mockRepo.MockUserRepository
	hasher    *mockSvc.MockCredentialHasher
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockCredentialHasher(t)

	service := NewAccountService(txManager, userRepo, hasher, newDiscardLogger())

	return accountServiceFixtures{
		t:         t,
		service:   service,
		txManager: txManager,
		userRepo:  userRepo,
		hasher:    hasher,
	}
}

// onExecute stubs the transaction manager so the callback runs against a
// factory configured by setup, and the Execute call reports returnErr.
func (f accountServiceFixtures) onExecute(ctx context.Context, returnErr error, setup func(factory *mockRepo.MockRepositoryFactory)) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			factory := mockRepo.NewMockRepositoryFactory(f.t)
			setup(factory)

			_ = fn(factory)
		}).
		Return(returnErr)
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "Frodo",
		Password: "Password123!",
		Email:    "frodo@shire.example",
	}

	hash := []byte("derived-hash")
	salt := []byte("random-salt")

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		txUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(txUserRepo)

		txUserRepo.EXPECT().Exists(ctx, "Frodo").Return(false, nil)
		fx.hasher.EXPECT().Derive("Password123!").Return(hash, salt, nil)

		txUserRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				assert.Equal(t, hash, user.PasswordHash)
				assert.Equal(t, salt, user.PasswordSalt)
				user.ID = 1
			}).
			Return(nil)
	})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(1), output.UserID)
}

func TestAccountService_Authenticate_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.AuthenticateInput{
		Username: "Frodo",
		Password: "Password123!",
	}

	storedUser := &entity.User{
		ID:           7,
		Username:     "Frodo",
		PasswordHash: []byte("derived-hash"),
		PasswordSalt: []byte("random-salt"),
	}

	fx.userRepo.EXPECT().FindByUsername(ctx, "Frodo").Return(storedUser, nil)
	fx.hasher.EXPECT().Verify("Password123!", storedUser.PasswordHash, storedUser.PasswordSalt).Return(true)
	fx.userRepo.EXPECT().
		UpdateLastAccess(ctx, int64(7), mock.AnythingOfType("time.Time")).
		Return(int64(1), nil)

	output, err := fx.service.Authenticate(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(7), output.User.ID)
	assert.NotNil(t, output.User.LastAccessAt)
}

func TestAccountService_ChangePassword_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.ChangePasswordInput{
		Username:    "Frodo",
		NewPassword: "NewPassword456!",
	}

	storedUser := &entity.User{
		ID:           7,
		Username:     "Frodo",
		PasswordHash: []byte("old-hash"),
		PasswordSalt: []byte("old-salt"),
	}

	newHash := []byte("new-hash")
	newSalt := []byte("new-salt")

	fx.onExecute(ctx, nil, func(factory *mockRepo.MockRepositoryFactory) {
		txUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(txUserRepo)

		txUserRepo.EXPECT().FindByUsername(ctx, "Frodo").Return(storedUser, nil)
		fx.hasher.EXPECT().Derive("NewPassword456!").Return(newHash, newSalt, nil)
		txUserRepo.EXPECT().
			UpdateCredentials(ctx, int64(7), newHash, newSalt).
			Return(int64(1), nil)
	})

	output, err := fx.service.ChangePassword(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(1), output.Affected)
}

func TestAccountService_ListUsers_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	expected := []*entity.User{
		{ID: 1, Username: "Frodo"},
		{ID: 2, Username: "Sam"},
	}

	fx.userRepo.EXPECT().ListAll(ctx).Return(expected, nil)

	users, err := fx.service.ListUsers(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, users)
}

func TestAccountService_GetUserByUsername_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	expected := &entity.User{ID: 1, Username: "Frodo"}

	fx.userRepo.EXPECT().FindByUsername(ctx, "fRoDo").Return(expected, nil)

	user, err := fx.service.GetUserByUsername(ctx, "fRoDo")

	require.NoError(t, err)
	assert.Equal(t, expected, user)
}
