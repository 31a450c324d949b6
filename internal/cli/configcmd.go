package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mapmaths/plax/pkg/config"
)

func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.configPath
			if path == "" {
				var err error
				if path, err = config.DefaultPath(); err != nil {
					return err
				}
			}
			fmt.Fprintln(stdout, path)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.settings()
			dir, err := c.dir()
			if err != nil {
				dir = "unknown: " + err.Error()
			}
			printKeyValue("save_dir", dir)
			printKeyValue("wire_color", cfg.WireColor)
			printKeyValue("lock_style", cfg.LockStyle)
			printKeyValue("backup_dir", cfg.BackupDir)
			printKeyValue("backup_days", fmt.Sprint(cfg.BackupDays))
			printKeyValue("no_backup", fmt.Sprint(cfg.NoBackup))
			return nil
		},
	})
	return cmd
}
