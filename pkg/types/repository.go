package types

import "errors"

// ContactRepository is the storage capability behind the directory.
// Implementations own the authoritative collection and assign IDs.
type ContactRepository interface {
	// Add stores c and assigns it the next sequential ID, ignoring any ID
	// the caller set. IDs start at 1 and are never reused within a
	// repository instance.
	Add(c *Contact) error

	// List returns every stored contact in insertion order.
	List() ([]*Contact, error)

	// Update overwrites Name, Phone and Email of the contact whose ID
	// matches c.ID. A missing ID is a silent no-op.
	Update(c *Contact) error

	// Delete removes the contact with the given ID. A missing ID is a
	// silent no-op.
	Delete(id int) error
}

// Repository errors.
var (
	ErrInvalidContact = errors.New("contact must not be nil")
	ErrStoreClosed    = errors.New("store is closed")
)
