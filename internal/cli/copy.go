package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mapmaths/plax/pkg/editor"
)

func (c *CLI) copyCommand() *cobra.Command {
	var (
		opts   writeOpts
		offset vecFlag
		wires  bool
	)
	cmd := &cobra.Command{
		Use:   "copy <save> --offset x,y,z",
		Short: "Duplicate every element, shifted by an offset",
		Long: `Duplicate every element, shifted by an offset. Copies get new identifiers.
With --wires, wires between elements are duplicated to connect the copies.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.edit(cmd.Context(), args[0], opts, func(ed *editor.Editor) (string, error) {
				before, err := ed.Elements()
				if err != nil {
					return "", err
				}
				prog := newProgress(c.Logger)
				if wires {
					err = ed.CopyAllAndMove(offset.v)
				} else {
					err = ed.CopyAllElementsAndMove(offset.v)
				}
				if err != nil {
					return "", err
				}
				prog.done("copied", "elements", len(before), "wires", wires)
				return fmt.Sprintf("Copied %d elements by %s", len(before), offset.v), nil
			})
		},
	}
	cmd.Flags().Var(&offset, "offset", "offset of the copies")
	cmd.Flags().BoolVar(&wires, "wires", false, "also copy wires between elements")
	_ = cmd.MarkFlagRequired("offset")
	opts.register(cmd)
	return cmd
}
