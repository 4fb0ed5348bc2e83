package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "presetly",
		Short:         "Presetly manages appearance modes and theme presets",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a presetly config file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newListCmd(flags))
	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newApplyCmd(flags))
	cmd.AddCommand(newModeCmd(flags))
	cmd.AddCommand(newToggleCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newBootstrapCmd(flags))
	cmd.AddCommand(newImportCmd(flags))
	cmd.AddCommand(newPickCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
