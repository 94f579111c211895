// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Post is a user-authored feed entry with an optional image gallery.
type Post struct {
	ID        uuid.UUID   // The unique ID for this post.
	AuthorID  uuid.UUID   // The user who created the post.
	Caption   string      // Optional text body; may be empty for image-only posts.
	ImageURLs []string    // Public URLs of attached images, in display order.
	LikedBy   []uuid.UUID // IDs of users who liked the post; loaded on demand.
	CreatedAt time.Time   // Timestamp of when the post was created.
	UpdatedAt time.Time   // Timestamp of the last modification.
}

// LikedByUser reports whether the given user has liked the post.
func (p *Post) LikedByUser(userID uuid.UUID) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}

	return false
}

// Comment is a user's reply attached to a post.
type Comment struct {
	ID        uuid.UUID // The unique ID for this comment.
	PostID    uuid.UUID // The post being commented on.
	AuthorID  uuid.UUID // The commenting user.
	Content   string    // The comment text.
	CreatedAt time.Time // Timestamp of when the comment was created.
}
