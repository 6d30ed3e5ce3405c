// Package model contains the GORM persistence structs. They mirror the
// database schema and are mapped to and from pure domain entities at the
// repository boundary.
package model

import "time"

// UserModel mirrors the 'users' table. UsernameCanonical carries the
// lowercase form of Username under a unique index; that constraint is the
// authoritative case-insensitive uniqueness guard for registration.
type UserModel struct {
	ID                int64  `gorm:"primaryKey;autoIncrement"`
	Username          string `gorm:"type:varchar(100);not null"`
	UsernameCanonical string `gorm:"type:varchar(100);not null;uniqueIndex:idx_users_username_canonical"`
	PasswordHash      []byte `gorm:"type:bytea;not null"`
	PasswordSalt      []byte `gorm:"type:bytea;not null"`
	Email             string `gorm:"type:varchar(255)"`
	Photo             []byte `gorm:"type:bytea"`
	Latitude          float64
	Longitude         float64
	LastAccessAt      *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
