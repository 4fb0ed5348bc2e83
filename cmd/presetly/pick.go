package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/presetly/internal/tui/picker"
)

func newPickCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Browse and apply presets interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(rootFlags)
		},
	}

	return cmd
}

func runPick(rootFlags *rootFlags) error {
	app, err := newAppContext(rootFlags)
	if err != nil {
		return newCommandError("pick", "loading configuration", err, "Check the config file and preset collection paths.")
	}

	prov, _ := app.newProvider()
	defer prov.Close()

	model := picker.NewModel(app.registry, prov)
	program := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		return newCommandError("pick", "running interactive picker", err, "Run in a terminal that supports raw mode.")
	}

	return nil
}
