package utils

import "github.com/google/uuid"

// NewID returns a random identifier for messages, chats, rides and
// notifications. The seed fixture uses short human-readable ids; everything
// created at runtime gets a UUID.
func NewID() string {
	return uuid.NewString()
}
