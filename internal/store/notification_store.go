package store

import (
	"sync"
	"time"

	"tagalong/internal/models"

	"github.com/google/uuid"
)

// NotificationStore owns per-user notification lists, newest first.
// Notifications are only ever created and flipped to read, never deleted.
type NotificationStore struct {
	mu     sync.RWMutex
	byUser map[string][]*models.Notification
}

func NewNotificationStore(seed []*models.Notification) *NotificationStore {
	s := &NotificationStore{
		byUser: make(map[string][]*models.Notification),
	}
	// Seed entries arrive oldest-last already ordered; prepend preserves
	// the newest-first invariant.
	for i := len(seed) - 1; i >= 0; i-- {
		n := seed[i]
		s.byUser[n.UserID] = append([]*models.Notification{n}, s.byUser[n.UserID]...)
	}
	return s
}

// Add assigns a fresh id and timestamp and inserts at the front.
func (s *NotificationStore) Add(n *models.Notification) *models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	n.ID = uuid.NewString()
	n.Timestamp = time.Now()
	s.byUser[n.UserID] = append([]*models.Notification{n}, s.byUser[n.UserID]...)

	out := *n
	return &out
}

// ListForUser returns the user's notifications, newest first.
func (s *NotificationStore) ListForUser(userID string) []*models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.byUser[userID]
	out := make([]*models.Notification, len(list))
	for i, n := range list {
		c := *n
		out[i] = &c
	}
	return out
}

// MarkRead flips one notification to read. Unknown ids are a no-op.
func (s *NotificationStore) MarkRead(userID, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.byUser[userID] {
		if n.ID == id {
			n.IsRead = true
			return
		}
	}
}

// MarkAllRead flips every notification to read. Safe to call on an
// already-all-read list.
func (s *NotificationStore) MarkAllRead(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, n := range s.byUser[userID] {
		n.IsRead = true
	}
}

// UnreadCount recounts on every call; it is never cached.
func (s *NotificationStore) UnreadCount(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, n := range s.byUser[userID] {
		if !n.IsRead {
			count++
		}
	}
	return count
}
