// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// FriendshipStatus represents the lifecycle state of a friendship edge.
type FriendshipStatus string

const (
	// FriendshipPending indicates a request that has been sent but not yet accepted.
	FriendshipPending FriendshipStatus = "pending"
	// FriendshipAccepted indicates both sides confirmed the friendship.
	FriendshipAccepted FriendshipStatus = "accepted"
)

// IsValid checks if the FriendshipStatus is a valid value.
func (s FriendshipStatus) IsValid() bool {
	switch s {
	case FriendshipPending, FriendshipAccepted:
		return true
	default:
		return false
	}
}

// Friendship is a directed edge from the requesting user to the addressee.
// A pending row is an open friend request; an accepted row is a friendship.
type Friendship struct {
	ID          uuid.UUID        // The unique ID for this friendship edge.
	RequesterID uuid.UUID        // The user who sent the friend request.
	AddresseeID uuid.UUID        // The user who received the friend request.
	Status      FriendshipStatus // Current state of the edge.
	CreatedAt   time.Time        // Timestamp of when the request was sent.
	UpdatedAt   time.Time        // Timestamp of the last state change (e.g. acceptance).
}

// Involves reports whether the given user is on either side of the edge.
func (f *Friendship) Involves(userID uuid.UUID) bool {
	return f.RequesterID == userID || f.AddresseeID == userID
}

// Other returns the opposite side of the edge from the given user.
func (f *Friendship) Other(userID uuid.UUID) uuid.UUID {
	if f.RequesterID == userID {
		return f.AddresseeID
	}

	return f.RequesterID
}
