package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mapmaths/plax/pkg/editor"
	"github.com/mapmaths/plax/pkg/locate"
	"github.com/mapmaths/plax/pkg/sav"
)

func (c *CLI) wireCommand() *cobra.Command {
	var (
		opts  writeOpts
		color string
	)
	cmd := &cobra.Command{
		Use:   "wire <save> <from> <from-pin> <to> <to-pin>",
		Short: "Connect two element pins with a wire",
		Long: fmt.Sprintf(`Connect a pin of one element to a pin of another.

Colors: %s (default from config, else blue).`, strings.Join(sav.WireColorNames(), ", ")),
		Args: cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := locate.Parse(args[1])
			if err != nil {
				return err
			}
			srcPin, err := parsePin(args[2])
			if err != nil {
				return err
			}
			dst, err := locate.Parse(args[3])
			if err != nil {
				return err
			}
			dstPin, err := parsePin(args[4])
			if err != nil {
				return err
			}
			wc := c.settings().Wire()
			if color != "" {
				if wc, err = sav.ParseWireColor(color); err != nil {
					return err
				}
			}
			return c.edit(cmd.Context(), args[0], opts, func(ed *editor.Editor) (string, error) {
				err := ed.Wire(src, srcPin, dst, dstPin, wc)
				return fmt.Sprintf("Wired %s:%d to %s:%d (%s)", src, srcPin, dst, dstPin, wc.Name()), err
			})
		},
	}
	cmd.Flags().StringVar(&color, "color", "", "wire color")
	_ = cmd.RegisterFlagCompletionFunc("color", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return sav.WireColorNames(), cobra.ShellCompDirectiveNoFileComp
	})
	opts.register(cmd)
	return cmd
}
