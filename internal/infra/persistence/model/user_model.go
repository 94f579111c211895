// Package model holds the GORM-specific structs mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email           string    `gorm:"type:varchar(255);unique;not null"`
	Name            string    `gorm:"type:varchar(100);not null"`
	PasswordHash    string    `gorm:"type:varchar(255);not null"`
	PhoneNumber     string    `gorm:"type:varchar(50)"`
	UniversityGroup string    `gorm:"type:varchar(100)"`
	Role            string    `gorm:"type:varchar(20);not null;default:'user'"`
	PhotoURL        string    `gorm:"type:text"`
	PrimaryPhotoURL string    `gorm:"type:text"`
	JoinedAt        time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time `gorm:"index"`

	RefreshTokens []RefreshTokenModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
