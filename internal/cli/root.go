// Package cli implements the contacts command-line interface.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/contacts/internal/logger"
	"github.com/mesh-intelligence/contacts/pkg/contacts"
	"github.com/mesh-intelligence/contacts/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	backend   string
	format    string
	jsonMode  bool
	logLevel  string
	logFormat string
}

// app is the state shared by subcommands once PersistentPreRunE has run.
type app struct {
	flags  rootFlags
	cfg    settings
	logger *slog.Logger
}

// NewRootCmd creates the top-level "contacts" command with global flags
// and all subcommands registered. Run without a subcommand it executes the
// demonstration sequence.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "contacts",
		Short: "An in-process contact directory",
		Long: `Contacts keeps a small, ephemeral directory of contacts (name, phone, email)
and demonstrates add, list, update and delete through layered components.

Without a subcommand it runs the built-in demonstration.`,
		Version:       contacts.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDemo(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/contacts)")
	pf.StringVar(&a.flags.backend, "backend", "", "repository backend (memory, sqlite)")
	pf.StringVar(&a.flags.format, "format", "", "output format (text, json, yaml)")
	pf.BoolVar(&a.flags.jsonMode, "json", false, "output as JSON (same as --format json)")
	pf.StringVar(&a.flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	pf.StringVar(&a.flags.logFormat, "log-format", "", "log format (text, json)")

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return userError(err)
	})

	root.AddCommand(newVersionCmd())
	root.AddCommand(newConfigCmd(a))
	root.AddCommand(newScriptCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "contacts:", err)
	}
	os.Exit(exitCode(err))
}

// setup loads configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := loadSettings(cmd.Root(), a.flags)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	}).With("session", newSessionID())

	a.logger.Debug("configuration loaded",
		"backend", cfg.Backend,
		"format", cfg.Format,
		"config_file", cfg.source,
	)
	return nil
}

// newSessionID returns a UUID v7 used to correlate the log records of one
// invocation.
func newSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// exitError carries the process exit code for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// userError marks err as caused by invalid input.
func userError(err error) error {
	return &exitError{code: exitUserError, err: err}
}

// sysError marks err as a failure of the program or its environment.
func sysError(err error) error {
	return &exitError{code: exitSysError, err: err}
}

// exitCode maps err to a process exit code. Errors that were not marked
// are treated as user errors, which covers cobra's own argument checks.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var e *exitError
	if errors.As(err, &e) {
		return e.code
	}
	return exitUserError
}

// isConfigError reports whether err comes from an invalid setting.
func isConfigError(err error) bool {
	return errors.Is(err, types.ErrBackendEmpty) ||
		errors.Is(err, types.ErrBackendUnknown) ||
		errors.Is(err, types.ErrUnknownFormat)
}
