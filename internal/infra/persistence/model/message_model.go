package model

import (
	"time"

	"github.com/google/uuid"
)

// ConversationModel mirrors the 'conversations' table. The participant pair is
// stored in canonical order so two users always share a single row.
type ConversationModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FirstUserID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_conversation_pair"`
	SecondUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_conversation_pair"`
	CreatedAt    time.Time
	UpdatedAt    time.Time `gorm:"index"`

	Messages []MessageModel `gorm:"foreignKey:ConversationID"`
}

// TableName explicitly sets the table name for GORM.
func (ConversationModel) TableName() string {
	return "conversations"
}

// MessageModel mirrors the 'messages' table.
type MessageModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ConversationID uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderID       uuid.UUID `gorm:"type:uuid;not null"`
	Content        string    `gorm:"type:text;not null"`
	IsRead         bool      `gorm:"not null;default:false;index"`
	CreatedAt      time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
