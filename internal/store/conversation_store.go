package store

import (
	"sort"
	"sync"

	"tagalong/internal/models"
)

// ConversationStore owns every chat and its messages. All mutation goes
// through the methods below; callers get defensive copies so the simulated
// reply timer never races a reader.
type ConversationStore struct {
	mu    sync.RWMutex
	chats []*models.Chat
	byID  map[string]*models.Chat
}

func NewConversationStore(seed []*models.Chat) *ConversationStore {
	s := &ConversationStore{
		byID: make(map[string]*models.Chat),
	}
	for _, c := range seed {
		s.chats = append(s.chats, c)
		s.byID[c.ID] = c
	}
	return s
}

// LoadForUser returns the chats the user participates in, most recently
// updated first. Unknown users get an empty list, never an error.
func (s *ConversationStore) LoadForUser(userID string) []*models.Chat {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Chat
	for _, c := range s.chats {
		if c.HasParticipant(userID) {
			out = append(out, cloneChat(c))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastUpdated.After(out[j].LastUpdated)
	})
	return out
}

func (s *ConversationStore) Get(chatID string) (*models.Chat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.byID[chatID]
	if !ok {
		return nil, ErrChatNotFound
	}
	return cloneChat(c), nil
}

// FindByPeerAndRide returns the chat between the two users scoped to rideID,
// if one exists. Participant order does not matter.
func (s *ConversationStore) FindByPeerAndRide(userID, otherUserID, rideID string) (*models.Chat, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.chats {
		if c.RideID == rideID && c.HasParticipant(userID) && c.HasParticipant(otherUserID) {
			return cloneChat(c), true
		}
	}
	return nil, false
}

// Insert places a freshly created chat at the front of the store.
func (s *ConversationStore) Insert(c *models.Chat) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.chats = append([]*models.Chat{c}, s.chats...)
	s.byID[c.ID] = c
}

// AppendMessage appends msg to the chat and advances LastUpdated to the
// message timestamp, keeping the two in lockstep.
func (s *ConversationStore) AppendMessage(chatID string, msg *models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byID[chatID]
	if !ok {
		return ErrChatNotFound
	}
	msg.ChatID = chatID
	c.Messages = append(c.Messages, msg)
	c.LastUpdated = msg.Timestamp
	return nil
}

// MarkConversationRead flips every unread message not sent by readerID to
// read. Idempotent; returns how many flags were flipped.
func (s *ConversationStore) MarkConversationRead(chatID, readerID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byID[chatID]
	if !ok {
		return 0
	}
	flipped := 0
	for _, m := range c.Messages {
		if m.SenderID != readerID && !m.IsRead {
			m.IsRead = true
			flipped++
		}
	}
	return flipped
}

func (s *ConversationStore) UnreadCountForConversation(chatID, readerID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.byID[chatID]
	if !ok {
		return 0
	}
	return unreadCount(c, readerID)
}

func (s *ConversationStore) TotalUnreadForUser(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0
	for _, c := range s.chats {
		if c.HasParticipant(userID) {
			total += unreadCount(c, userID)
		}
	}
	return total
}

func unreadCount(c *models.Chat, readerID string) int {
	count := 0
	for _, m := range c.Messages {
		if m.SenderID != readerID && !m.IsRead {
			count++
		}
	}
	return count
}

func cloneChat(c *models.Chat) *models.Chat {
	out := &models.Chat{
		ID:           c.ID,
		RideID:       c.RideID,
		Participants: make([]*models.User, len(c.Participants)),
		Messages:     make([]*models.Message, len(c.Messages)),
		LastUpdated:  c.LastUpdated,
		CreatedAt:    c.CreatedAt,
	}
	copy(out.Participants, c.Participants)
	for i, m := range c.Messages {
		msg := *m
		out.Messages[i] = &msg
	}
	return out
}
