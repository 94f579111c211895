package model

import (
	"time"

	"github.com/google/uuid"
)

// PostModel mirrors the 'posts' table. The image gallery is stored as a JSON
// array in a single column.
type PostModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Caption   string    `gorm:"type:text"`
	ImageURLs []string  `gorm:"serializer:json;type:jsonb"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time

	Likes    []PostLikeModel `gorm:"foreignKey:PostID"`
	Comments []CommentModel  `gorm:"foreignKey:PostID"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}

// PostLikeModel mirrors the 'post_likes' join table.
type PostLikeModel struct {
	PostID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PostLikeModel) TableName() string {
	return "post_likes"
}

// CommentModel mirrors the 'comments' table.
type CommentModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}
