package model

import (
	"time"

	"github.com/google/uuid"
)

// LinkModel mirrors the 'links' table.
type LinkModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	CampaignID  *uuid.UUID `gorm:"type:uuid;index"`
	OriginalURL string     `gorm:"type:text;not null"`
	ShortCode   string     `gorm:"type:varchar(64);unique;not null"`
	Clicks      int64      `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (LinkModel) TableName() string {
	return "links"
}

// CampaignModel mirrors the 'campaigns' table.
type CampaignModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Links []LinkModel `gorm:"foreignKey:CampaignID"`
}

// TableName explicitly sets the table name for GORM.
func (CampaignModel) TableName() string {
	return "campaigns"
}
