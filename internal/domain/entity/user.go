// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// User is the identity record for a player account. The credential pair
// (PasswordHash, PasswordSalt) is always written together; one is never
// persisted without the other.
type User struct {
	ID           int64      // Auto-incremented identifier, assigned on creation and immutable.
	Username     string     // Login name as registered; uniqueness is case-insensitive.
	PasswordHash []byte     // PBKDF2-derived secret, fixed size.
	PasswordSalt []byte     // Random salt, regenerated on every password-set operation.
	Email        string     // Contact email, independently mutable.
	Photo        []byte     // Profile picture bytes, independently mutable.
	Latitude     float64    // Last reported latitude.
	Longitude    float64    // Last reported longitude.
	LastAccessAt *time.Time // Set only on successful authentication; nil before first login.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CanonicalUsername normalizes a username for case-insensitive comparison
// and lookup. All username matching in the system goes through this.
func CanonicalUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

// Redacted returns a copy of the user without the credential pair.
// Handed to transport callers so hash and salt never leave the process.
func (u *User) Redacted() *User {
	clone := *u
	clone.PasswordHash = nil
	clone.PasswordSalt = nil

	return &clone
}
