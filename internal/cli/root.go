// Package cli implements the hbnb console: a cobra command tree that
// creates, shows, updates and destroys records in the shared file storage.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/hbnb/internal/paths"
	"github.com/mesh-intelligence/hbnb/internal/storage"
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
	file      string
	jsonMode  bool
	verbose   bool
}

// openFunc opens the storage engine a console works against.
type openFunc func(storage.Config, ...storage.Option) (*storage.FileStorage, error)

// console is the state shared by one command tree.
type console struct {
	flags  rootFlags
	open   openFunc
	store  *storage.FileStorage
	logger *zap.Logger
}

// NewRootCmd creates the top-level "hbnb" command working against the
// process-wide storage.
func NewRootCmd() *cobra.Command {
	return newRootCmd(storage.Shared)
}

func newRootCmd(open openFunc) *cobra.Command {
	c := &console{open: open, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "hbnb",
		Short: "Manage hbnb records in the JSON file store",
		Long: `hbnb creates, inspects, updates and destroys the records kept in the
JSON file store: users, states, cities, amenities, places and reviews.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&c.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/hbnb)")
	root.PersistentFlags().StringVar(&c.flags.file, "file", "", "storage file (default: ./file.json)")
	root.PersistentFlags().BoolVar(&c.flags.jsonMode, "json", false, "output as JSON")
	root.PersistentFlags().BoolVarP(&c.flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(c.newInitCmd())
	root.AddCommand(c.newKindsCmd())
	root.AddCommand(c.newCreateCmd())
	root.AddCommand(c.newShowCmd())
	root.AddCommand(c.newDestroyCmd())
	root.AddCommand(c.newAllCmd())
	root.AddCommand(c.newCountCmd())
	root.AddCommand(c.newUpdateCmd())

	return root
}

// setup loads the configuration, builds the logger and opens the storage.
func (c *console) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(c.flags.configDir)
	if err != nil {
		return systemError(fmt.Errorf("resolve config dir: %w", err))
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return systemError(err)
	}

	logger, err := newLogger(cfg.GetString(cfgKeyLogLevel), c.flags.verbose)
	if err != nil {
		return err
	}
	c.logger = logger

	file, err := paths.ResolveFile(c.flags.file, cfg.GetString(cfgKeyFilePath))
	if err != nil {
		return systemError(fmt.Errorf("resolve storage file: %w", err))
	}
	store, err := c.open(storage.Config{FilePath: file}, storage.WithLogger(logger))
	if err != nil {
		return systemError(fmt.Errorf("open storage: %w", err))
	}
	c.store = store
	return nil
}

// Execute runs the root command and exits with the matching code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// sysError marks failures of the environment rather than of the input.
type sysError struct{ err error }

func (e *sysError) Error() string { return e.err.Error() }
func (e *sysError) Unwrap() error { return e.err }

func systemError(err error) error {
	return &sysError{err: err}
}

// exitCode maps a command error to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var se *sysError
	if errors.As(err, &se) {
		return exitSysError
	}
	return exitUserError
}
