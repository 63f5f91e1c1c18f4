// Package service is the business-logic layer between the controller and a
// ContactRepository. Today it forwards every call unchanged; rules such as
// validation or de-duplication belong here.
package service

import (
	"log/slog"

	applog "github.com/mesh-intelligence/contacts/internal/logger"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Service forwards contact operations to a repository.
type Service struct {
	repo   types.ContactRepository
	logger *slog.Logger
}

// New creates a Service over repo. A nil logger discards records.
func New(repo types.ContactRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = applog.Discard()
	}
	return &Service{repo: repo, logger: logger}
}

// Add stores c; on success c.ID holds the assigned ID.
func (s *Service) Add(c *types.Contact) error {
	if err := s.repo.Add(c); err != nil {
		return err
	}
	s.logger.Debug("contact added", "id", c.ID)
	return nil
}

// GetAll returns every contact in insertion order.
func (s *Service) GetAll() ([]*types.Contact, error) {
	contacts, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	s.logger.Debug("contacts listed", "count", len(contacts))
	return contacts, nil
}

// Update overwrites the contact with c.ID.
func (s *Service) Update(c *types.Contact) error {
	if err := s.repo.Update(c); err != nil {
		return err
	}
	s.logger.Debug("contact updated", "id", c.ID)
	return nil
}

// Delete removes the contact with id.
func (s *Service) Delete(id int) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.logger.Debug("contact deleted", "id", id)
	return nil
}
