package model

import "time"

// CharacterModel mirrors the 'characters' table.
type CharacterModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(100);not null"`
	UserID    int64  `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (CharacterModel) TableName() string {
	return "characters"
}

// WeaponModel mirrors the 'weapons' table. The unique index on
// CharacterID enforces one weapon per character at the store level.
type WeaponModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);not null"`
	Damage      int    `gorm:"not null"`
	CharacterID int64  `gorm:"not null;uniqueIndex:idx_weapons_character_id"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Character *CharacterModel `gorm:"foreignKey:CharacterID"`
}

// TableName explicitly sets the table name for GORM.
func (WeaponModel) TableName() string {
	return "weapons"
}
