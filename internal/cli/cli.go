// Package cli implements the plax command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mapmaths/plax/pkg/backup"
	"github.com/mapmaths/plax/pkg/buildinfo"
	"github.com/mapmaths/plax/pkg/config"
	"github.com/mapmaths/plax/pkg/savedir"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "plax"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	saveDir    string
	noBackup   bool

	cfg *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "plax edits circuit save files",
		Long: `plax reads and edits the save files of a physics sandbox: moving, locking,
breaking and copying elements, wiring them, and adjusting the camera.

A <save> argument is either a path or the name of a save in the save
directory. A <selector> picks one element:

  id:<identifier>     by identifier
  type:<model>[#n]    the n-th element (from 0) of a model
  index:<i> or <i>    by position in the element list, from 0`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/plax/config.toml)")
	flags.StringVar(&c.saveDir, "save-dir", "", "save directory (default: the game's, or $"+savedir.EnvDir+")")
	flags.BoolVar(&c.noBackup, "no-backup", false, "do not snapshot saves before overwriting them")

	root.AddCommand(c.showCommand())
	root.AddCommand(c.cameraCommand())
	root.AddCommand(c.moveCommand())
	root.AddCommand(c.gatherCommand())
	root.AddCommand(c.posCommand())
	root.AddCommand(c.rotCommand())
	for _, s := range stateCommands {
		root.AddCommand(c.stateCommand(s))
	}
	root.AddCommand(c.copyCommand())
	root.AddCommand(c.wireCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.backupCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())
	c.registerSaveCompletion(root)

	return root
}

// =============================================================================
// Config & Paths
// =============================================================================

func (c *CLI) loadConfig() error {
	var (
		cfg *config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.Load(c.configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}
	if c.noBackup {
		cfg.NoBackup = true
	}
	c.cfg = cfg
	c.Logger.Debug("loaded config", "wire_color", cfg.WireColor, "lock_style", cfg.LockStyle)
	return nil
}

func (c *CLI) settings() *config.Config {
	if c.cfg == nil {
		c.cfg = config.Default()
	}
	return c.cfg
}

// dir returns the save directory: --save-dir, then the config file, then
// the default.
func (c *CLI) dir() (string, error) {
	if c.saveDir != "" {
		return c.saveDir, nil
	}
	if d := c.settings().SaveDir; d != "" {
		return d, nil
	}
	return savedir.DefaultDir()
}

func (c *CLI) backups() (backup.Store, error) {
	cfg := c.settings()
	if cfg.NoBackup || cfg.BackupDir == "" {
		return backup.NewNullStore(), nil
	}
	return backup.NewFileStore(cfg.BackupDir, cfg.BackupTTL())
}
