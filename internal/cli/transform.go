package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mapmaths/plax/pkg/editor"
	plaxerr "github.com/mapmaths/plax/pkg/errors"
	"github.com/mapmaths/plax/pkg/locate"
)

func (c *CLI) moveCommand() *cobra.Command {
	var (
		opts  writeOpts
		by    vecFlag
		all   bool
		model string
	)
	cmd := &cobra.Command{
		Use:   "move <save> [selector] --by x,y,z",
		Short: "Shift elements by an offset",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseTarget(args[1:], all, model)
			if err != nil {
				return err
			}
			return c.edit(cmd.Context(), args[0], opts, func(ed *editor.Editor) (string, error) {
				var err error
				switch {
				case t.all:
					err = ed.MoveAll(by.v)
				case t.model != "":
					err = ed.EditType(t.model, editor.MoveFunc(by.v))
				default:
					err = ed.Move(*t.sel, by.v)
				}
				return fmt.Sprintf("Moved %s by %s", t, by.v), err
			})
		},
	}
	cmd.Flags().Var(&by, "by", "offset")
	cmd.Flags().BoolVar(&all, "all", false, "move every element")
	cmd.Flags().StringVar(&model, "type", "", "move every element of this model")
	_ = cmd.MarkFlagRequired("by")
	opts.register(cmd)
	return cmd
}

func (c *CLI) gatherCommand() *cobra.Command {
	var (
		opts  writeOpts
		to    vecFlag
		all   bool
		model string
	)
	cmd := &cobra.Command{
		Use:   "gather <save> [selector] --to x,y,z",
		Short: "Move elements to one point",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseTarget(args[1:], all, model)
			if err != nil {
				return err
			}
			return c.edit(cmd.Context(), args[0], opts, func(ed *editor.Editor) (string, error) {
				var err error
				switch {
				case t.all:
					err = ed.Gather(to.v)
				case t.model != "":
					err = ed.EditType(t.model, editor.SetPositionFunc(to.v))
				default:
					err = ed.SetPosition(*t.sel, to.v)
				}
				return fmt.Sprintf("Gathered %s at %s", t, to.v), err
			})
		},
	}
	cmd.Flags().Var(&to, "to", "target position")
	cmd.Flags().BoolVar(&all, "all", false, "gather every element")
	cmd.Flags().StringVar(&model, "type", "", "gather every element of this model")
	_ = cmd.MarkFlagRequired("to")
	opts.register(cmd)
	return cmd
}

func (c *CLI) posCommand() *cobra.Command {
	var (
		opts    writeOpts
		to      vecFlag
		x, y, z float64
	)
	cmd := &cobra.Command{
		Use:   "pos <save> <selector> [--to x,y,z | --x X --y Y --z Z]",
		Short: "Set the position of an element",
		Long:  "Set the position of an element. --x, --y and --z change single axes and keep the others.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := locate.Parse(args[1])
			if err != nil {
				return err
			}
			axis := func(name string, v *float64) *float64 {
				if cmd.Flags().Changed(name) {
					return v
				}
				return nil
			}
			px, py, pz := axis("x", &x), axis("y", &y), axis("z", &z)
			if !to.set && px == nil && py == nil && pz == nil {
				return plaxerr.New(plaxerr.ErrCodeInvalidInput, "give --to or at least one of --x, --y, --z")
			}
			return c.edit(cmd.Context(), args[0], opts, func(ed *editor.Editor) (string, error) {
				if to.set {
					return fmt.Sprintf("Moved %s to %s", sel, to.v), ed.SetPosition(sel, to.v)
				}
				if err := ed.SetPositionAxes(sel, px, py, pz); err != nil {
					return "", err
				}
				e, _, err := ed.Element(sel)
				if err != nil {
					return "", err
				}
				return fmt.Sprintf("Moved %s to %s", sel, vecString(e.Position())), nil
			})
		},
	}
	cmd.Flags().Var(&to, "to", "new position")
	cmd.Flags().Float64Var(&x, "x", 0, "new x")
	cmd.Flags().Float64Var(&y, "y", 0, "new y")
	cmd.Flags().Float64Var(&z, "z", 0, "new z")
	cmd.MarkFlagsMutuallyExclusive("to", "x")
	cmd.MarkFlagsMutuallyExclusive("to", "y")
	cmd.MarkFlagsMutuallyExclusive("to", "z")
	opts.register(cmd)
	return cmd
}

func (c *CLI) rotCommand() *cobra.Command {
	var (
		opts writeOpts
		to   vecFlag
	)
	cmd := &cobra.Command{
		Use:   "rot <save> <selector> --to x,y,z",
		Short: "Set the rotation of an element",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := locate.Parse(args[1])
			if err != nil {
				return err
			}
			return c.edit(cmd.Context(), args[0], opts, func(ed *editor.Editor) (string, error) {
				return fmt.Sprintf("Rotated %s to %s", sel, to.v), ed.SetRotation(sel, to.v)
			})
		},
	}
	cmd.Flags().Var(&to, "to", "new rotation")
	_ = cmd.MarkFlagRequired("to")
	opts.register(cmd)
	return cmd
}
