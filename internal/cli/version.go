package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/pkg/contacts"
)

const modulePath = "github.com/mesh-intelligence/contacts"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the contacts version",
		Args:  cobra.NoArgs,
		// version needs no configuration.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "contacts v%s\nmodule: %s\n", contacts.Version, modulePath)
			return err
		},
	}
}
