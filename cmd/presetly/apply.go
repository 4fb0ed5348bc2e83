package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newApplyCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply <preset-id>",
		Short: "Apply a preset and persist it as the active selection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, rootFlags, args[0])
		},
	}

	return cmd
}

func runApply(cmd *cobra.Command, rootFlags *rootFlags, id string) error {
	app, err := newAppContext(rootFlags)
	if err != nil {
		return newCommandError("apply", "loading configuration", err, "Check the config file and preset collection paths.")
	}

	if _, ok := app.registry.Lookup(id); !ok {
		return newCommandError("apply", fmt.Sprintf("looking up preset %q", id), fmt.Errorf("preset not found"), "Run 'presetly list' to see available presets.")
	}

	prov, doc := app.newProvider()
	defer prov.Close()

	prov.SetPresetByID(id)

	current := prov.CurrentPreset()
	if current == nil {
		return newCommandError("apply", fmt.Sprintf("applying preset %q", id), fmt.Errorf("preset was not applied"), "Check storage permissions for the state directory.")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "applied %s (%s)\n", current.PresetName, current.PresetID)
	fmt.Fprintf(out, "mode: %s (%s)\n", prov.Mode(), prov.ResolvedMode())
	fmt.Fprintf(out, "style: %s\n", doc.StyleAttr())
	return nil
}
