package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/internal/controller"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// maxLineBytes bounds a single script line.
const maxLineBytes = 1 << 20

// fieldSeparator splits name, phone and email in add and update lines.
const fieldSeparator = "|"

// errBadLine is wrapped by every script syntax error.
var errBadLine = errors.New("invalid script line")

func newScriptCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "script",
		Short: "Run directory commands read from stdin",
		Long: `Script reads one command per line from stdin and runs them, in order,
against a single directory that lives for the duration of the command.

Commands:
  add <name>|<phone>|<email>
  update <id> <name>|<phone>|<email>
  delete <id>
  list

Blank lines and lines starting with # are ignored. Updating or deleting
an ID that does not exist does nothing.

Example:
  printf 'add Ann|555-0100|ann@example.com\nlist\n' | contacts script`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctl, release, err := a.openDirectory(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer closeWith(release, &err)

			n, err := runScript(cmd.InOrStdin(), ctl)
			a.logger.Debug("script finished", "commands", n)
			return err
		},
	}
}

// runScript executes each command line read from r and returns how many
// commands ran. It stops at the first failing line.
func runScript(r io.Reader, ctl *controller.Controller) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)
	lineNo, ran := 0, 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := runLine(line, ctl); err != nil {
			if errors.Is(err, errBadLine) {
				return ran, userError(fmt.Errorf("line %d: %w", lineNo, err))
			}
			return ran, sysError(fmt.Errorf("line %d: %w", lineNo, err))
		}
		ran++
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return ran, userError(fmt.Errorf("line %d: %w: longer than %d bytes", lineNo+1, errBadLine, maxLineBytes))
		}
		return ran, sysError(fmt.Errorf("reading script: %w", err))
	}
	return ran, nil
}

// runLine parses one non-empty command and dispatches it.
func runLine(line string, ctl *controller.Controller) error {
	verb, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch verb {
	case "add":
		c, err := parseFields(rest)
		if err != nil {
			return err
		}
		return ctl.AddContact(c)
	case "update":
		idArg, fields, _ := strings.Cut(rest, " ")
		id, err := parseID(idArg)
		if err != nil {
			return err
		}
		c, err := parseFields(strings.TrimSpace(fields))
		if err != nil {
			return err
		}
		c.ID = id
		return ctl.UpdateContact(c)
	case "delete":
		id, err := parseID(rest)
		if err != nil {
			return err
		}
		return ctl.DeleteContact(id)
	case "list":
		if rest != "" {
			return fmt.Errorf("%w: list takes no arguments", errBadLine)
		}
		return ctl.ShowContacts()
	default:
		return fmt.Errorf("%w: unknown command %q", errBadLine, verb)
	}
}

// parseFields reads "<name>|<phone>|<email>". All three fields must be
// present; each may be empty.
func parseFields(s string) (*types.Contact, error) {
	parts := strings.Split(s, fieldSeparator)
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: want name|phone|email, got %q", errBadLine, s)
	}
	return &types.Contact{
		Name:  strings.TrimSpace(parts[0]),
		Phone: strings.TrimSpace(parts[1]),
		Email: strings.TrimSpace(parts[2]),
	}, nil
}

// parseID reads a contact ID argument.
func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid id %q", errBadLine, s)
	}
	return id, nil
}
