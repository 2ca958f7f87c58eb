package models

import "time"

type Chat struct {
	ID           string     `json:"id"`
	RideID       string     `json:"ride_id" validate:"required"`
	Participants []*User    `json:"participants" validate:"required,len=2"`
	Messages     []*Message `json:"messages"`
	LastUpdated  time.Time  `json:"last_updated"`
	CreatedAt    time.Time  `json:"created_at"`
}

type Message struct {
	ID        string    `json:"id"`
	ChatID    string    `json:"chat_id"`
	SenderID  string    `json:"sender_id" validate:"required"`
	Text      string    `json:"text"`
	IsRead    bool      `json:"is_read"`
	Timestamp time.Time `json:"timestamp"`
}

// HasParticipant reports whether userID is one of the two chat members.
func (c *Chat) HasParticipant(userID string) bool {
	for _, p := range c.Participants {
		if p.ID == userID {
			return true
		}
	}
	return false
}

// OtherParticipant returns the member that is not userID. Insertion order of
// participants is irrelevant; the counterpart is always the non-matching entry.
func (c *Chat) OtherParticipant(userID string) *User {
	for _, p := range c.Participants {
		if p.ID != userID {
			return p
		}
	}
	if len(c.Participants) > 0 {
		return c.Participants[0]
	}
	return nil
}
