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
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service  usecase.ProfileUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewProfileService(userRepo, newDiscardLogger())

	return profileServiceFixtures{
		service:  service,
		userRepo: userRepo,
	}
}

func TestProfileService_UpdateLocation_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.UpdateLocationInput{
		Latitude:  25.0330,
		Longitude: 121.5654,
	}

	fx.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.User{ID: 7}, nil)
	fx.userRepo.EXPECT().
		UpdateLocation(ctx, int64(7), 25.0330, 121.5654).
		Return(int64(1), nil)

	affected, err := fx.service.UpdateLocation(ctx, 7, input)

	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}

func TestProfileService_UpdateLocation_UserNotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.UpdateLocationInput{
		Latitude:  25.0330,
		Longitude: 121.5654,
	}

	fx.userRepo.EXPECT().FindByID(ctx, int64(42)).Return(nil, repository.ErrUserNotFound)

	affected, err := fx.service.UpdateLocation(ctx, 42, input)

	assert.Error(t, err)
	assert.Zero(t, affected)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_UpdateEmail_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.UpdateEmailInput{Email: "frodo@shire.example"}

	fx.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.User{ID: 7}, nil)
	fx.userRepo.EXPECT().
		UpdateEmail(ctx, int64(7), "frodo@shire.example").
		Return(int64(1), nil)

	affected, err := fx.service.UpdateEmail(ctx, 7, input)

	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}

func TestProfileService_UpdateEmail_RepositoryError(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.UpdateEmailInput{Email: "frodo@shire.example"}

	fx.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.User{ID: 7}, nil)
	fx.userRepo.EXPECT().
		UpdateEmail(ctx, int64(7), "frodo@shire.example").
		Return(int64(0), errors.New("db error"))

	affected, err := fx.service.UpdateEmail(ctx, 7, input)

	assert.Error(t, err)
	assert.Zero(t, affected)
	assert.Contains(t, err.Error(), "failed to update email")
}

func TestProfileService_UpdatePhoto_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	photo := []byte{0x89, 0x50, 0x4e, 0x47}
	input := &usecase.UpdatePhotoInput{Photo: photo}

	fx.userRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.User{ID: 7}, nil)
	fx.userRepo.EXPECT().
		UpdatePhoto(ctx, int64(7), photo).
		Return(int64(1), nil)

	affected, err := fx.service.UpdatePhoto(ctx, 7, input)

	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}

func TestProfileService_UpdatePhoto_UserNotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.UpdatePhotoInput{Photo: []byte{0x01}}

	fx.userRepo.EXPECT().FindByID(ctx, int64(42)).Return(nil, repository.ErrUserNotFound)

	affected, err := fx.service.UpdatePhoto(ctx, 42, input)

	assert.Error(t, err)
	assert.Zero(t, affected)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
