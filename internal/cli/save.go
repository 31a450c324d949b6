package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mapmaths/plax/pkg/editor"
	"github.com/mapmaths/plax/pkg/sav"
	"github.com/mapmaths/plax/pkg/savedir"
)

// writeOpts holds the output flags shared by every command that changes a
// save.
type writeOpts struct {
	output string
	asNew  bool
	dryRun bool
}

func (o *writeOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.output, "output", "o", "", "write to this file instead of overwriting the save")
	cmd.Flags().BoolVar(&o.asNew, "as-new", false, "write to a new save next to the original")
	cmd.Flags().BoolVar(&o.dryRun, "dry-run", false, "print the result instead of writing it")
	cmd.MarkFlagsMutuallyExclusive("output", "as-new", "dry-run")
}

// open resolves a save argument and loads it.
func (c *CLI) open(arg string) (*sav.Document, error) {
	dir, err := c.dir()
	if err != nil {
		return nil, err
	}
	path, err := savedir.Resolve(dir, arg)
	if err != nil {
		return nil, err
	}
	doc, err := sav.Load(path)
	if err != nil {
		return nil, err
	}
	v := doc.Variant()
	c.Logger.Debug("loaded save", "path", path, "layout", v.Layout, "lock", v.Lock)
	return doc, nil
}

func (c *CLI) newEditor(doc *sav.Document) *editor.Editor {
	return editor.New(doc, editor.Options{Lock: c.settings().Lock(), Logger: c.Logger})
}

// edit loads a save, applies fn and writes the result according to opts.
func (c *CLI) edit(ctx context.Context, arg string, opts writeOpts, fn func(ed *editor.Editor) (string, error)) error {
	doc, err := c.open(arg)
	if err != nil {
		return err
	}
	msg, err := fn(c.newEditor(doc))
	if err != nil {
		return err
	}
	path, err := c.commit(ctx, doc, opts)
	if err != nil {
		return err
	}
	if path != "" {
		printSuccess("%s", msg)
		printFile(path)
	}
	return nil
}

// commit writes doc and returns the path written, or "" for a dry run.
// Overwriting the original file snapshots its previous contents first.
func (c *CLI) commit(ctx context.Context, doc *sav.Document, opts writeOpts) (string, error) {
	if opts.dryRun {
		return "", doc.Write(stdout)
	}

	path := opts.output
	switch {
	case opts.asNew:
		path = savedir.NewPath(filepath.Dir(doc.Path()))
	case path == "":
		path = doc.Path()
	}

	if err := c.snapshot(ctx, path); err != nil {
		return "", err
	}
	if err := doc.Save(path); err != nil {
		return "", err
	}
	return path, nil
}

// snapshot stores the current contents of path in the backup store, if the
// file exists.
func (c *CLI) snapshot(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	store, err := c.backups()
	if err != nil {
		return err
	}
	defer store.Close()

	snap, stored, err := store.Put(ctx, path, data)
	if err != nil {
		return fmt.Errorf("back up %s (use --no-backup to skip): %w", path, err)
	}
	if stored {
		c.Logger.Debug("backed up save", "path", path, "snapshot", snap.ID)
	}
	return nil
}
