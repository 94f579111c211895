package model

import (
	"time"

	"github.com/google/uuid"
)

// FriendshipModel mirrors the 'friendships' table. One row per edge; the
// requester/addressee pair is unique regardless of direction, enforced in the
// repository by canonical lookup.
type FriendshipModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RequesterID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_friendship_pair"`
	AddresseeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_friendship_pair"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (FriendshipModel) TableName() string {
	return "friendships"
}
