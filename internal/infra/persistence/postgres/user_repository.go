package postgres

import (
	"context"
	"time"

	"tavern/internal/domain/entity"
	domainerrors "tavern/internal/domain/errors"
	"tavern/internal/domain/repository"
	"tavern/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Exists reports whether a user with the given username is registered,
// compared on the canonical (lowercase) form.
func (repo *userRepository) Exists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("username_canonical = ?", entity.CanonicalUsername(username)).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check username existence")
	}

	return count > 0, nil
}

// Create persists a new user entity. The unique index on
// username_canonical is the authoritative uniqueness guard; a violation
// is translated to repository.ErrDuplicateUsername.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateUsername
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByUsername retrieves a single user by username, case-insensitively.
func (repo *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("username_canonical = ?", entity.CanonicalUsername(username)).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by username")
	}

	return toUserDomain(&userM), nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var userM model.UserModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// ListAll returns every user ordered by id, which matches insertion order.
func (repo *userRepository) ListAll(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel
	err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&userModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// UpdateCredentials writes the hash/salt pair together and nothing else.
func (repo *userRepository) UpdateCredentials(ctx context.Context, id int64, hash, salt []byte) (int64, error) {
	return repo.updateFields(ctx, id, map[string]any{
		"password_hash": hash,
		"password_salt": salt,
	}, "failed to update credentials")
}

// UpdateLastAccess writes only the last_access_at column.
func (repo *userRepository) UpdateLastAccess(ctx context.Context, id int64, at time.Time) (int64, error) {
	return repo.updateFields(ctx, id, map[string]any{
		"last_access_at": at,
	}, "failed to update last access time")
}

// UpdateEmail writes only the email column.
func (repo *userRepository) UpdateEmail(ctx context.Context, id int64, email string) (int64, error) {
	return repo.updateFields(ctx, id, map[string]any{
		"email": email,
	}, "failed to update email")
}

// UpdateLocation writes only the latitude and longitude columns.
func (repo *userRepository) UpdateLocation(ctx context.Context, id int64, latitude, longitude float64) (int64, error) {
	return repo.updateFields(ctx, id, map[string]any{
		"latitude":  latitude,
		"longitude": longitude,
	}, "failed to update location")
}

// UpdatePhoto writes only the photo column.
func (repo *userRepository) UpdatePhoto(ctx context.Context, id int64, photo []byte) (int64, error) {
	return repo.updateFields(ctx, id, map[string]any{
		"photo": photo,
	}, "failed to update photo")
}

// updateFields performs a partial update: only the named columns are
// written, so the id, credential pair and unrelated profile fields are
// never clobbered by a concurrent writer.
func (repo *userRepository) updateFields(ctx context.Context, id int64, fields map[string]any, failMsg string) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, failMsg)
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Username:     data.Username,
		PasswordHash: data.PasswordHash,
		PasswordSalt: data.PasswordSalt,
		Email:        data.Email,
		Photo:        data.Photo,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		LastAccessAt: data.LastAccessAt,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                data.ID,
		Username:          data.Username,
		UsernameCanonical: entity.CanonicalUsername(data.Username),
		PasswordHash:      data.PasswordHash,
		PasswordSalt:      data.PasswordSalt,
		Email:             data.Email,
		Photo:             data.Photo,
		Latitude:          data.Latitude,
		Longitude:         data.Longitude,
		LastAccessAt:      data.LastAccessAt,
	}
}
