package store

import (
	"slices"
	"sync"
)

// Place is a named location.
type Place struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// PlaceStore is an ordered collection of places keyed by id.
type PlaceStore struct {
	mu     sync.RWMutex
	places []Place
}

// NewPlaceStore creates a store pre-populated with seed. Later seed entries
// replace earlier ones with the same id.
func NewPlaceStore(seed ...Place) *PlaceStore {
	s := &PlaceStore{places: make([]Place, 0, len(seed))}
	for _, p := range seed {
		s.Upsert(p)
	}
	return s
}

// List returns a copy of all places in insertion order.
func (s *PlaceStore) List() []Place {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Place, len(s.places))
	copy(out, s.places)
	return out
}

// Get returns the place with the given id, or ErrNotFound.
func (s *PlaceStore) Get(id string) (Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.places[i], nil
	}
	return Place{}, ErrNotFound
}

// Upsert replaces the place with p.ID in its current position, or appends p
// when no such place exists. created reports which of the two happened.
func (s *PlaceStore) Upsert(p Place) (stored Place, created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(p.ID); i >= 0 {
		s.places[i] = p
		return p, false
	}
	s.places = append(s.places, p)
	return p, true
}

// Delete removes the place with the given id, or returns ErrNotFound.
func (s *PlaceStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	s.places = slices.Delete(s.places, i, i+1)
	return nil
}

// Len returns the number of stored places.
func (s *PlaceStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.places)
}

func (s *PlaceStore) indexOf(id string) int {
	return slices.IndexFunc(s.places, func(p Place) bool { return p.ID == id })
}

// DefaultPlaces is the sample data loaded when seeding is enabled.
func DefaultPlaces() []Place {
	return []Place{
		{ID: "1", Name: "Central Park", Location: "New York"},
		{ID: "2", Name: "Eiffel Tower", Location: "Paris"},
	}
}
