package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/presetly/internal/mode"
)

func newModeCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mode [light|dark|system]",
		Short: "Show or set the appearance mode",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMode(cmd, rootFlags, args)
		},
	}

	return cmd
}

func runMode(cmd *cobra.Command, rootFlags *rootFlags, args []string) error {
	app, err := newAppContext(rootFlags)
	if err != nil {
		return newCommandError("mode", "loading configuration", err, "Check the config file and preset collection paths.")
	}

	prov, _ := app.newProvider()
	defer prov.Close()

	if len(args) == 1 {
		m, ok := mode.Parse(args[0])
		if !ok {
			return newCommandError("mode", fmt.Sprintf("parsing mode %q", args[0]), fmt.Errorf("unknown mode"), "Use one of: light, dark, system.")
		}
		prov.SetMode(m)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "mode: %s (resolved: %s)\n", prov.Mode(), prov.ResolvedMode())
	return nil
}

func newToggleCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle",
		Short: "Flip between light and dark appearance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToggle(cmd, rootFlags)
		},
	}

	return cmd
}

func runToggle(cmd *cobra.Command, rootFlags *rootFlags) error {
	app, err := newAppContext(rootFlags)
	if err != nil {
		return newCommandError("toggle", "loading configuration", err, "Check the config file and preset collection paths.")
	}

	prov, _ := app.newProvider()
	defer prov.Close()

	prov.ToggleMode(nil)

	fmt.Fprintf(cmd.OutOrStdout(), "mode: %s (resolved: %s)\n", prov.Mode(), prov.ResolvedMode())
	return nil
}
