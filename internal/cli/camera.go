package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mapmaths/plax/pkg/editor"
	"github.com/mapmaths/plax/pkg/sav"
)

func (c *CLI) cameraCommand() *cobra.Command {
	var (
		opts     writeOpts
		mode     string
		distance float64
		center   vecFlag
		rotation vecFlag
	)
	cmd := &cobra.Command{
		Use:   "camera <save>",
		Short: "Show or change the camera",
		Long: `Show the camera of a save, or change the fields given as flags.

Modes: electricity (0), graphical (1), universe (3), electromagnetic (4).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var u editor.CameraUpdate
			if cmd.Flags().Changed("mode") {
				m, err := sav.ParseCameraMode(mode)
				if err != nil {
					return err
				}
				u.Mode = &m
			}
			if cmd.Flags().Changed("distance") {
				u.Distance = &distance
			}
			if center.set {
				u.Center = &center.v
			}
			if rotation.set {
				u.Rotation = &rotation.v
			}
			if u == (editor.CameraUpdate{}) {
				return c.printCamera(args[0])
			}
			return c.runCamera(cmd.Context(), args[0], u, opts)
		},
	}
	cmd.Flags().StringVar(&mode, "mode", "", "camera mode (name or number)")
	cmd.Flags().Float64Var(&distance, "distance", 0, "distance from the vision center")
	cmd.Flags().Var(&center, "center", "vision center")
	cmd.Flags().Var(&rotation, "rotation", "target rotation")
	opts.register(cmd)
	return cmd
}

func (c *CLI) printCamera(arg string) error {
	doc, err := c.open(arg)
	if err != nil {
		return err
	}
	cam, err := doc.Camera()
	if err != nil {
		return err
	}
	printCamera(cam)
	return nil
}

func (c *CLI) runCamera(ctx context.Context, arg string, u editor.CameraUpdate, opts writeOpts) error {
	return c.edit(ctx, arg, opts, func(ed *editor.Editor) (string, error) {
		if err := ed.SetCamera(u); err != nil {
			return "", err
		}
		return "Updated camera", nil
	})
}
