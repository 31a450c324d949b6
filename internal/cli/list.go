package cli

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mapmaths/plax/pkg/savedir"
)

func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [dir]",
		Short: "List the saves in the save directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			saves, dir, err := c.listSaves(args)
			if err != nil {
				return err
			}
			if len(saves) == 0 {
				printInfo("No saves in %s", dir)
				return nil
			}
			now := time.Now()
			rows := make([][]string, len(saves))
			for i, s := range saves {
				rows[i] = saveRow(s, now)
			}
			printTable(newTable(saveHeaders, rows, func(row, col int) lipgloss.Style {
				if saves[row].Err != nil {
					return styleBroken
				}
				if col >= 2 {
					return StyleDim
				}
				return StyleValue
			}))
			printDetail("%d saves in %s", len(saves), dir)
			return nil
		},
	}
}

func (c *CLI) pickCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pick [dir]",
		Short: "Choose a save interactively and show it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			saves, dir, err := c.listSaves(args)
			if err != nil {
				return err
			}
			if len(saves) == 0 {
				printInfo("No saves in %s", dir)
				return nil
			}
			picked, err := runPicker(cmd.Context(), saves)
			if err != nil || picked == nil {
				return err
			}
			doc, err := c.open(picked.Path)
			if err != nil {
				return err
			}
			if err := c.runShow(doc, ""); err != nil {
				return err
			}
			printNewline()
			printNextStep("Edit it with", appName+" move "+picked.Name+" --all --by 0,1,0")
			return nil
		},
	}
}

func (c *CLI) listSaves(args []string) ([]savedir.Entry, string, error) {
	var dir string
	if len(args) > 0 {
		dir = args[0]
	} else {
		var err error
		if dir, err = c.dir(); err != nil {
			return nil, "", err
		}
	}
	saves, err := savedir.List(dir)
	return saves, dir, err
}

func runPicker(ctx context.Context, saves []savedir.Entry) (*savedir.Entry, error) {
	final, err := tea.NewProgram(NewSaveListModel(saves), tea.WithContext(ctx)).Run()
	if err != nil {
		return nil, err
	}
	return final.(SaveListModel).Selected, nil
}
