package cart

import "sync"

// Store hands out one cart per signed-in user for the lifetime of the
// process. Carts are created empty on first use and dropped on
// sign-out; they are deliberately not persisted across restarts.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{
		carts: make(map[string]*Cart),
	}
}

// ForUser returns the user's cart, creating it if needed.
func (s *Store) ForUser(userID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[userID]
	if !ok {
		c = New()
		s.carts[userID] = c
	}
	return c
}

// Drop forgets the user's cart entirely; Service.Clear uses it so an
// emptied cart does not linger in the map.
func (s *Store) Drop(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}
