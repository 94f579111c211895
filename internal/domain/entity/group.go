// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Group represents a named community of users.
type Group struct {
	ID        uuid.UUID   // The unique ID for this group.
	Name      string      // Human-readable group name.
	MemberIDs []uuid.UUID // IDs of users currently in the group; loaded on demand.
	CreatedAt time.Time   // Timestamp of when the group was created.
	UpdatedAt time.Time   // Timestamp of the last modification.
}

// HasMember reports whether the given user belongs to the group.
func (g *Group) HasMember(userID uuid.UUID) bool {
	for _, id := range g.MemberIDs {
		if id == userID {
			return true
		}
	}

	return false
}

// GroupMember links a user to a group.
type GroupMember struct {
	GroupID  uuid.UUID // The group being joined.
	UserID   uuid.UUID // The joining user.
	JoinedAt time.Time // Timestamp of when the user joined.
}
