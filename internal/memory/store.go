// Package memory implements the default in-memory ContactRepository.
// The collection is an ordered slice scanned linearly; no index is kept.
package memory

import (
	"slices"
	"sync"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Compile-time interface check.
var _ types.ContactRepository = (*Store)(nil)

// Store holds contacts in insertion order and hands out sequential IDs.
type Store struct {
	mu       sync.Mutex
	contacts []*types.Contact
	nextID   int
}

// NewStore creates an empty store whose first assigned ID is 1.
func NewStore() *Store {
	return &Store{nextID: 1}
}

// Add stores a copy of c under the next ID and writes that ID back to c.
// Later changes to c do not reach the stored record.
func (s *Store) Add(c *types.Contact) error {
	if c == nil {
		return types.ErrInvalidContact
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *c
	stored.ID = s.nextID
	s.nextID++
	s.contacts = append(s.contacts, &stored)
	c.ID = stored.ID
	return nil
}

// List returns the live collection. Callers must not modify it or hold on
// to it across writes.
func (s *Store) List() ([]*types.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.contacts, nil
}

// Update overwrites the fields of the stored contact with c.ID.
func (s *Store) Update(c *types.Contact) error {
	if c == nil {
		return types.ErrInvalidContact
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(c.ID); i >= 0 {
		s.contacts[i].Overwrite(c)
	}
	return nil
}

// Delete removes the contact with the given ID.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		s.contacts = slices.Delete(s.contacts, i, i+1)
	}
	return nil
}

// indexOf returns the position of id, or -1. The caller must hold s.mu.
func (s *Store) indexOf(id int) int {
	return slices.IndexFunc(s.contacts, func(c *types.Contact) bool {
		return c.ID == id
	})
}
