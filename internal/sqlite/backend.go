// Package sqlite implements a ContactRepository on top of a private
// in-memory SQLite database. Nothing is written to disk; the data lives as
// long as the Store is open.
package sqlite

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/contacts/pkg/types"
)

// memoryDSN opens a database that belongs to a single connection.
const memoryDSN = ":memory:"

// Compile-time interface check.
var _ types.ContactRepository = (*Store)(nil)

// Store implements types.ContactRepository with SQLite as the query engine.
type Store struct {
	mu sync.RWMutex
	db *sql.DB
}

// Open creates the in-memory database and its schema.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", memoryDSN)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}

	// Every new connection to :memory: is a new, empty database, so the
	// pool is pinned to the one connection that holds the schema.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("creating schema: %w", err)
		}
	}
	return &Store{db: db}, nil
}

// Close releases the database. Close is idempotent; every other operation
// on a closed Store returns ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Add inserts c and copies the generated row ID back into c.ID.
func (s *Store) Add(c *types.Contact) error {
	if c == nil {
		return types.ErrInvalidContact
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return types.ErrStoreClosed
	}
	res, err := s.db.Exec(
		"INSERT INTO contacts (name, phone, email) VALUES (?, ?, ?)",
		c.Name, c.Phone, c.Email,
	)
	if err != nil {
		return fmt.Errorf("inserting contact: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading contact id: %w", err)
	}
	c.ID = int(id)
	return nil
}

// List returns a fresh copy of every row ordered by ID, which is also
// insertion order.
func (s *Store) List() ([]*types.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.db == nil {
		return nil, types.ErrStoreClosed
	}
	rows, err := s.db.Query("SELECT id, name, phone, email FROM contacts ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying contacts: %w", err)
	}
	defer rows.Close()

	var out []*types.Contact
	for rows.Next() {
		var c types.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone, &c.Email); err != nil {
			return nil, fmt.Errorf("scanning contact: %w", err)
		}
		out = append(out, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating contacts: %w", err)
	}
	return out, nil
}

// Update overwrites the row whose id matches c.ID. No matching row is not
// an error.
func (s *Store) Update(c *types.Contact) error {
	if c == nil {
		return types.ErrInvalidContact
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return types.ErrStoreClosed
	}
	if _, err := s.db.Exec(
		"UPDATE contacts SET name = ?, phone = ?, email = ? WHERE id = ?",
		c.Name, c.Phone, c.Email, c.ID,
	); err != nil {
		return fmt.Errorf("updating contact %d: %w", c.ID, err)
	}
	return nil
}

// Delete removes the row with the given id. No matching row is not an error.
func (s *Store) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return types.ErrStoreClosed
	}
	if _, err := s.db.Exec("DELETE FROM contacts WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting contact %d: %w", id, err)
	}
	return nil
}
