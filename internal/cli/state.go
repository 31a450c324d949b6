package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mapmaths/plax/pkg/editor"
	"github.com/mapmaths/plax/pkg/sav"
)

// stateSpec describes one of the lock/unlock/break/fix commands.
type stateSpec struct {
	use   string
	short string
	done  string
	one   func(ed *editor.Editor, t target) error
	all   func(ed *editor.Editor) error
	fn    func(ed *editor.Editor) func(sav.Element) error
}

var stateCommands = []stateSpec{
	{
		use: "lock", short: "Lock elements in place", done: "Locked",
		one: func(ed *editor.Editor, t target) error { return ed.Lock(*t.sel) },
		all: (*editor.Editor).LockAll,
		fn:  func(ed *editor.Editor) func(sav.Element) error { return ed.SetLockedFunc(true) },
	},
	{
		use: "unlock", short: "Unlock elements", done: "Unlocked",
		one: func(ed *editor.Editor, t target) error { return ed.Unlock(*t.sel) },
		all: (*editor.Editor).UnlockAll,
		fn:  func(ed *editor.Editor) func(sav.Element) error { return ed.SetLockedFunc(false) },
	},
	{
		use: "break", short: "Mark elements broken", done: "Broke",
		one: func(ed *editor.Editor, t target) error { return ed.Break(*t.sel) },
		all: (*editor.Editor).BreakAll,
		fn:  func(*editor.Editor) func(sav.Element) error { return editor.SetBrokenFunc(true) },
	},
	{
		use: "fix", short: "Repair broken elements", done: "Fixed",
		one: func(ed *editor.Editor, t target) error { return ed.Fix(*t.sel) },
		all: (*editor.Editor).FixAll,
		fn:  func(*editor.Editor) func(sav.Element) error { return editor.SetBrokenFunc(false) },
	},
}

func (c *CLI) stateCommand(s stateSpec) *cobra.Command {
	var (
		opts  writeOpts
		all   bool
		model string
	)
	cmd := &cobra.Command{
		Use:   s.use + " <save> [selector]",
		Short: s.short,
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
					err = s.all(ed)
				case t.model != "":
					err = ed.EditType(t.model, s.fn(ed))
				default:
					err = s.one(ed, t)
				}
				return fmt.Sprintf("%s %s", s.done, t), err
			})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "apply to every element")
	cmd.Flags().StringVar(&model, "type", "", "apply to every element of this model")
	opts.register(cmd)
	return cmd
}
