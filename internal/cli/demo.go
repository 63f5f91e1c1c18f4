package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/internal/controller"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// afterDeletionBanner separates the two listings of the demonstration.
const afterDeletionBanner = "After deletion:"

// seedContacts returns the sample records added by the demonstration.
func seedContacts() []*types.Contact {
	return []*types.Contact{
		{Name: "Ivan Ivanov", Phone: "123-456-7890", Email: "ivan@example.com"},
		{Name: "Maria Petrova", Phone: "098-765-4321", Email: "maria@example.com"},
	}
}

func (a *app) runDemo(cmd *cobra.Command) (err error) {
	ctl, release, err := a.openDirectory(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer closeWith(release, &err)

	if err := playDemo(ctl); err != nil {
		return sysError(err)
	}
	return nil
}

// playDemo seeds two contacts, shows them, deletes ID 1 and shows the rest.
func playDemo(ctl *controller.Controller) error {
	for _, c := range seedContacts() {
		if err := ctl.AddContact(c); err != nil {
			return fmt.Errorf("add %q: %w", c.Name, err)
		}
	}
	if err := ctl.ShowContacts(); err != nil {
		return err
	}

	if err := ctl.Announce(""); err != nil {
		return err
	}
	if err := ctl.Announce(afterDeletionBanner); err != nil {
		return err
	}

	if err := ctl.DeleteContact(1); err != nil {
		return fmt.Errorf("delete 1: %w", err)
	}
	return ctl.ShowContacts()
}
