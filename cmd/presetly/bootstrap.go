package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/presetly/internal/bootstrap"
	"github.com/alexisbeaulieu97/presetly/internal/mode"
	"github.com/alexisbeaulieu97/presetly/internal/preset"
)

type bootstrapOptions struct {
	output        string
	defaultPreset string
}

func newBootstrapCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &bootstrapOptions{}

	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Emit the pre-hydration script for embedding in HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBootstrap(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the script to a file instead of stdout")
	cmd.Flags().StringVar(&opts.defaultPreset, "default-preset", "", "Embed this preset as the fallback when nothing is persisted")

	return cmd
}

func runBootstrap(cmd *cobra.Command, rootFlags *rootFlags, opts *bootstrapOptions) error {
	app, err := newAppContext(rootFlags)
	if err != nil {
		return newCommandError("bootstrap", "loading configuration", err, "Check the config file and preset collection paths.")
	}

	var fallback *preset.Preset
	id := opts.defaultPreset
	if id == "" {
		id = app.cfg.Engine.DefaultPreset
	}
	if id != "" {
		p, ok := app.registry.Lookup(id)
		if !ok {
			return newCommandError("bootstrap", fmt.Sprintf("looking up preset %q", id), fmt.Errorf("preset not found"), "Run 'presetly list' to see available presets.")
		}
		fallback = &p
	}

	script, err := bootstrap.Script(bootstrap.Options{
		ModeKey:       app.cfg.Engine.ModeKey,
		PresetKey:     app.cfg.Engine.PresetKey,
		DefaultMode:   mode.Mode(app.cfg.Engine.DefaultMode),
		DefaultPreset: fallback,
	})
	if err != nil {
		return newCommandError("bootstrap", "rendering script", err, "This is a bug; please report it.")
	}

	if opts.output != "" {
		if err := os.WriteFile(opts.output, []byte(script), 0o644); err != nil {
			return newCommandError("bootstrap", "writing output file", err, "Check the output path is writable.")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", opts.output)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), script)
	return nil
}
