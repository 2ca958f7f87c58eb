package store

import (
	"sync"

	"tagalong/internal/models"
)

// RideStore holds offered rides, newest first.
type RideStore struct {
	mu    sync.RWMutex
	rides []*models.Ride
}

func NewRideStore(seed []*models.Ride) *RideStore {
	return &RideStore{rides: seed}
}

func (s *RideStore) GetByID(id string) (*models.Ride, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.rides {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, ErrRideNotFound
}

// Insert places the ride at the front so freshly offered rides surface first.
func (s *RideStore) Insert(r *models.Ride) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rides = append([]*models.Ride{r}, s.rides...)
}

// All returns a snapshot of the ride list.
func (s *RideStore) All() []*models.Ride {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Ride, len(s.rides))
	copy(out, s.rides)
	return out
}
