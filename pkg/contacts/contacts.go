// Package contacts is the public entry point for embedding the contact
// directory. It constructs ContactRepository implementations while keeping
// their packages internal.
//
// Example:
//
//	repo, closeRepo, err := contacts.OpenRepository(types.BackendMemory)
//	if err != nil {
//	    return err
//	}
//	defer closeRepo()
package contacts

import (
	"fmt"

	"github.com/mesh-intelligence/contacts/internal/memory"
	"github.com/mesh-intelligence/contacts/internal/sqlite"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Version is the release version of the module and CLI.
const Version = "0.1.0"

// NewMemoryRepository returns an empty in-memory repository.
func NewMemoryRepository() types.ContactRepository {
	return memory.NewStore()
}

// OpenRepository returns the repository for backend together with a
// function that releases it. The release function is safe to call more
// than once.
func OpenRepository(backend string) (types.ContactRepository, func() error, error) {
	switch backend {
	case types.BackendMemory:
		return memory.NewStore(), func() error { return nil }, nil
	case types.BackendSQLite:
		s, err := sqlite.Open()
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return s, s.Close, nil
	case "":
		return nil, nil, types.ErrBackendEmpty
	default:
		return nil, nil, fmt.Errorf("%w: %q", types.ErrBackendUnknown, backend)
	}
}
