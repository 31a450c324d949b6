package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	plaxerr "github.com/mapmaths/plax/pkg/errors"
	"github.com/mapmaths/plax/pkg/savedir"
)

// backupCommand creates the snapshot management command.
func (c *CLI) backupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Manage snapshots taken before saves are overwritten",
	}

	cmd.AddCommand(c.backupListCommand())
	cmd.AddCommand(c.backupRestoreCommand())
	cmd.AddCommand(c.backupPruneCommand())
	cmd.AddCommand(c.backupPathCommand())

	return cmd
}

func (c *CLI) backupListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list <save>",
		Short: "List the snapshots of a save, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.resolve(args[0])
			if err != nil {
				return err
			}
			store, err := c.backups()
			if err != nil {
				return err
			}
			defer store.Close()

			snaps, err := store.List(cmd.Context(), path)
			if err != nil {
				return err
			}
			if len(snaps) == 0 {
				printInfo("No snapshots of %s", path)
				return nil
			}
			now := time.Now()
			rows := make([][]string, len(snaps))
			for i, s := range snaps {
				rows[i] = []string{strconv.Itoa(i), formatRelativeTime(s.Taken, now), s.Hash[:12], formatSize(int64(s.Size))}
			}
			printTable(newTable([]string{"#", "Taken", "Hash", "Size"}, rows, func(row, col int) lipgloss.Style {
				if col == 0 {
					return StyleNumber
				}
				return StyleDim
			}))
			return nil
		},
	}
}

func (c *CLI) backupRestoreCommand() *cobra.Command {
	var n int
	cmd := &cobra.Command{
		Use:   "restore <save>",
		Short: "Put a snapshot back in place of a save",
		Long: `Put a snapshot back in place of a save. The current contents are
snapshotted first, so a restore can itself be undone.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path, err := c.resolve(args[0])
			if err != nil {
				return err
			}
			store, err := c.backups()
			if err != nil {
				return err
			}
			defer store.Close()

			snaps, err := store.List(ctx, path)
			if err != nil {
				return err
			}
			if n < 0 || n >= len(snaps) {
				return plaxerr.NotFound("no snapshot #%d of %s (have %d)", n, path, len(snaps))
			}
			data, err := store.Read(ctx, snaps[n])
			if err != nil {
				return err
			}
			if err := c.snapshot(ctx, path); err != nil {
				return err
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return fmt.Errorf("restore %s: %w", path, err)
			}
			printSuccess("Restored snapshot from %s", snaps[n].Taken.Local().Format(time.DateTime))
			printFile(path)
			return nil
		},
	}
	cmd.Flags().IntVarP(&n, "number", "n", 0, "snapshot number from 'backup list' (0 is the newest)")
	return cmd
}

func (c *CLI) backupPruneCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Remove expired snapshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.backups()
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := store.Prune(cmd.Context())
			if err != nil {
				return err
			}
			printSuccess("Removed %d expired snapshots", n)
			printDetail("Directory: %s", c.settings().BackupDir)
			return nil
		},
	}
}

func (c *CLI) backupPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the snapshot directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(stdout, c.settings().BackupDir)
			return nil
		},
	}
}

// resolve turns a save argument into a path without loading it.
func (c *CLI) resolve(arg string) (string, error) {
	dir, err := c.dir()
	if err != nil {
		return "", err
	}
	return savedir.Resolve(dir, arg)
}
