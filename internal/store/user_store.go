package store

import (
	"strings"
	"sync"

	"tagalong/internal/models"
)

// UserStore holds the known users. The seed fixture supplies the initial set;
// sign-up appends to it. Users are never removed.
type UserStore struct {
	mu    sync.RWMutex
	users []*models.User
	byID  map[string]*models.User
}

func NewUserStore(seed []*models.User) *UserStore {
	s := &UserStore{
		byID: make(map[string]*models.User),
	}
	for _, u := range seed {
		s.users = append(s.users, u)
		s.byID[u.ID] = u
	}
	return s
}

func (s *UserStore) GetByID(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u, nil
}

func (s *UserStore) GetByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *UserStore) Add(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[u.ID]; exists {
		return nil
	}
	s.users = append(s.users, u)
	s.byID[u.ID] = u
	return nil
}

func (s *UserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
