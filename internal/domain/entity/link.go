// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Link is a tracked short link. Resolving its short code redirects to the
// original URL and increments the click counter.
type Link struct {
	ID          uuid.UUID  // The unique ID for this link.
	UserID      uuid.UUID  // The user who owns the link.
	CampaignID  *uuid.UUID // Optional campaign grouping; nil for standalone links.
	OriginalURL string     // The destination URL.
	ShortCode   string     // Globally unique short code used in the public URL.
	Clicks      int64      // Total recorded resolutions of the short code.
	CreatedAt   time.Time  // Timestamp of when the link was created.
	UpdatedAt   time.Time  // Timestamp of the last modification.
}

// Campaign groups related short links under a named marketing effort.
type Campaign struct {
	ID          uuid.UUID // The unique ID for this campaign.
	UserID      uuid.UUID // The user who owns the campaign.
	Name        string    // Human-readable campaign name.
	Description string    // Optional free-form description.
	CreatedAt   time.Time // Timestamp of when the campaign was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
