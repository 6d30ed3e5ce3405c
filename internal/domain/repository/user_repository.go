// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"tavern/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateUsername is returned by Create when the store's uniqueness
// constraint on the canonical username rejects the insert. The constraint
// is the authoritative guard against the check-then-insert race; Exists
// is only an optimistic pre-check.
var ErrDuplicateUsername = errors.New("username already taken")

// UserRepository defines the standard operations for user persistence.
// The application layer depends on this interface, not the concrete implementation.
//
// The Update* methods perform partial writes: each touches only its named
// columns, so concurrent updates to disjoint fields never clobber each
// other. All of them return the number of rows affected.
type UserRepository interface {
	// Exists reports whether a user with the given username is registered,
	// compared case-insensitively.
	Exists(ctx context.Context, username string) (bool, error)

	// Create persists a new user and assigns its ID. Returns
	// ErrDuplicateUsername on a canonical-username conflict.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves a single user by username, case-insensitively.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// ListAll returns every user in insertion order. No pagination;
	// intended for administrative use.
	ListAll(ctx context.Context) ([]*entity.User, error)

	// UpdateCredentials writes a new hash/salt pair. The two columns are
	// always written together.
	UpdateCredentials(ctx context.Context, id int64, hash, salt []byte) (int64, error)

	// UpdateLastAccess records the time of a successful authentication.
	UpdateLastAccess(ctx context.Context, id int64, at time.Time) (int64, error)

	// UpdateEmail writes only the email column.
	UpdateEmail(ctx context.Context, id int64, email string) (int64, error)

	// UpdateLocation writes only the latitude and longitude columns.
	UpdateLocation(ctx context.Context, id int64, latitude, longitude float64) (int64, error)

	// UpdatePhoto writes only the photo column.
	UpdatePhoto(ctx context.Context, id int64, photo []byte) (int64, error)
}
