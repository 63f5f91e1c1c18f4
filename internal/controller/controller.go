// Package controller coordinates the service and presenter to carry out
// user intents. It holds no state of its own.
package controller

import (
	"fmt"

	"github.com/mesh-intelligence/contacts/internal/presenter"
	"github.com/mesh-intelligence/contacts/internal/service"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Controller maps intents onto service calls and presenter output.
type Controller struct {
	svc  *service.Service
	view *presenter.Presenter
}

// New wires a Controller to its service and presenter.
func New(svc *service.Service, view *presenter.Presenter) *Controller {
	return &Controller{svc: svc, view: view}
}

// ShowContacts fetches every contact and renders it.
func (c *Controller) ShowContacts() error {
	contacts, err := c.svc.GetAll()
	if err != nil {
		return fmt.Errorf("fetch contacts: %w", err)
	}
	return c.view.Display(contacts)
}

// AddContact stores contact and assigns its ID.
func (c *Controller) AddContact(contact *types.Contact) error {
	return c.svc.Add(contact)
}

// UpdateContact overwrites the stored contact with contact.ID.
func (c *Controller) UpdateContact(contact *types.Contact) error {
	return c.svc.Update(contact)
}

// DeleteContact removes the contact with id. A missing id is ignored.
func (c *Controller) DeleteContact(id int) error {
	return c.svc.Delete(id)
}

// Announce writes a banner line between listings.
func (c *Controller) Announce(line string) error {
	return c.view.Println(line)
}
