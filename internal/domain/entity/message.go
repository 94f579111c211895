// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is a two-party direct message thread. The participant pair is
// stored in a canonical order so the same two users always map to one thread.
type Conversation struct {
	ID           uuid.UUID // The unique ID for this conversation.
	FirstUserID  uuid.UUID // The lexicographically smaller participant ID.
	SecondUserID uuid.UUID // The lexicographically larger participant ID.
	CreatedAt    time.Time // Timestamp of when the thread was opened.
	UpdatedAt    time.Time // Timestamp of the last message activity.
}

// CanonicalPair orders two participant IDs into the stored form.
func CanonicalPair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if a.String() > b.String() {
		return b, a
	}

	return a, b
}

// HasParticipant reports whether the given user is part of the conversation.
func (c *Conversation) HasParticipant(userID uuid.UUID) bool {
	return c.FirstUserID == userID || c.SecondUserID == userID
}

// OtherParticipant returns the peer of the given user in the conversation.
func (c *Conversation) OtherParticipant(userID uuid.UUID) uuid.UUID {
	if c.FirstUserID == userID {
		return c.SecondUserID
	}

	return c.FirstUserID
}

// Message is a single direct message inside a conversation.
type Message struct {
	ID             uuid.UUID // The unique ID for this message.
	ConversationID uuid.UUID // The thread this message belongs to.
	SenderID       uuid.UUID // The sending user.
	Content        string    // The message text.
	IsRead         bool      // Whether the recipient has read the message.
	CreatedAt      time.Time // Timestamp of when the message was sent.
}
