// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
// It contains only the most fundamental identity information shared across all roles.
type User struct {
	ID              uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email           string    // The user's primary contact email, used as the login identifier.
	Name            string    // The user's display name or real name.
	PasswordHash    string    // The bcrypt hash of the user's password. The plaintext is never stored.
	PhoneNumber     string    // Optional contact phone number; empty when not provided.
	UniversityGroup string    // Optional university group tag the user registered with.
	Role            Role      // The user's role in the system.
	PhotoURL        string    // Public URL of the user's uploaded avatar; empty until set.
	PrimaryPhotoURL string    // Public URL of the avatar shown on the profile card.
	JoinedAt        time.Time // Timestamp of when the user joined the platform.
	CreatedAt       time.Time // Timestamp of when this user account was created.
	UpdatedAt       time.Time // Timestamp of the last modification to this user's data.
}

// Summary returns the minimal public projection of a user, embedded in
// authentication responses.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}

// UserSummary is the identity triple returned alongside freshly issued tokens.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
	Name  string    `json:"name"`
}
