package model

import (
	"time"

	"github.com/google/uuid"
)

// GroupModel mirrors the 'groups' table.
type GroupModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name      string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Members []GroupMemberModel `gorm:"foreignKey:GroupID"`
}

// TableName explicitly sets the table name for GORM.
func (GroupModel) TableName() string {
	return "groups"
}

// GroupMemberModel mirrors the 'group_members' join table.
type GroupMemberModel struct {
	GroupID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	JoinedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (GroupMemberModel) TableName() string {
	return "group_members"
}
