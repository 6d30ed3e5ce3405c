package entity

import "time"

// Character is a playable avatar owned by a user account.
type Character struct {
	ID        int64
	Name      string
	UserID    int64 // Owning user account.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Weapon is equipment attached to a character. A character carries at
// most one weapon at a time.
type Weapon struct {
	ID          int64
	Name        string
	Damage      int // Must be non-zero.
	CharacterID int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
