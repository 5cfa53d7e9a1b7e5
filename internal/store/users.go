package store

import "sync"

// User is a person record. The capitalised JSON keys are part of the wire
// format.
type User struct {
	ID        string `json:"id"`
	Firstname string `json:"Firstname"`
	Surname   string `json:"Surname"`
}

// UserStore is an ordered, append-only collection of users.
type UserStore struct {
	mu    sync.RWMutex
	users []User
}

// NewUserStore creates a store pre-populated with seed, in order. Seed
// records with an id already present are skipped.
func NewUserStore(seed ...User) *UserStore {
	s := &UserStore{users: make([]User, 0, len(seed))}
	for _, u := range seed {
		_ = s.Create(u)
	}
	return s
}

// List returns a copy of all users in insertion order.
func (s *UserStore) List() []User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]User, len(s.users))
	copy(out, s.users)
	return out
}

// Get returns the user with the given id, or ErrNotFound.
func (s *UserStore) Get(id string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexOf(id); i >= 0 {
		return s.users[i], nil
	}
	return User{}, ErrNotFound
}

// Create appends u, or returns ErrDuplicateID if its id is already stored.
func (s *UserStore) Create(u User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(u.ID) >= 0 {
		return ErrDuplicateID
	}
	s.users = append(s.users, u)
	return nil
}

// Len returns the number of stored users.
func (s *UserStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// indexOf must be called with s.mu held.
func (s *UserStore) indexOf(id string) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

// DefaultUsers is the sample data loaded when seeding is enabled.
func DefaultUsers() []User {
	return []User{
		{ID: "1", Firstname: "Jyri", Surname: "Kemppainen"},
		{ID: "2", Firstname: "Petri", Surname: "Laitinen"},
	}
}
