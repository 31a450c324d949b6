package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mapmaths/plax/pkg/sav"
)

func (c *CLI) showCommand() *cobra.Command {
	var model string
	cmd := &cobra.Command{
		Use:   "show <save>",
		Short: "Summarize a save and list its elements",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.open(args[0])
			if err != nil {
				return err
			}
			return c.runShow(doc, model)
		},
	}
	cmd.Flags().StringVar(&model, "type", "", "only list elements of this model")
	return cmd
}

func (c *CLI) runShow(doc *sav.Document, model string) error {
	ed := c.newEditor(doc)
	elements, err := ed.Elements()
	if err != nil {
		return err
	}
	wires, err := ed.Wires()
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, StyleTitle.Render(doc.Path()))
	if s := doc.Subject(); s != "" {
		printKeyValue("Subject", s)
	}
	printKeyValue("Layout", doc.Variant().Layout.String())
	printKeyValue("Lock style", ed.LockStyle().String())
	printKeyValue("Elements", strconv.Itoa(len(elements)))
	printKeyValue("Wires", strconv.Itoa(len(wires)))
	if cam, err := ed.Camera(); err == nil {
		printCamera(cam)
	} else {
		printWarning("Camera unreadable: %s", err)
	}

	var rows [][]string
	for i, e := range elements {
		if model != "" && e.ModelID() != model {
			continue
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			shortID(e.ID()),
			e.ModelID(),
			vecString(e.Position()),
			vecString(e.Rotation()),
			flag(e.Locked(ed.LockStyle()), "locked"),
			flag(e.Broken(), "broken"),
		})
	}
	if len(rows) == 0 {
		return nil
	}

	printNewline()
	printTable(newTable(
		[]string{"#", "ID", "Model", "Position", "Rotation", "", ""},
		rows,
		func(row, col int) lipgloss.Style {
			switch col {
			case 0, 1:
				return StyleDim
			case 5:
				return styleLocked
			case 6:
				return styleBroken
			}
			return StyleValue
		},
	))
	return nil
}

func printCamera(cam sav.Camera) {
	if m, ok := cam.Mode(); ok {
		printKeyValue("Camera", m.String())
	}
	if d, ok := cam.Distance(); ok {
		printKeyValue("Distance", strconv.FormatFloat(d, 'f', -1, 64))
	}
	if v, err := cam.Center(); err == nil {
		printKeyValue("Center", v.String())
	}
	if v, err := cam.Rotation(); err == nil {
		printKeyValue("Rotation", v.String())
	}
}

func vecString(v sav.Vec3, err error) string {
	if err != nil {
		return "?"
	}
	return v.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func flag(on bool, label string) string {
	if on {
		return label
	}
	return ""
}
