package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/presetly/internal/color"
	"github.com/alexisbeaulieu97/presetly/internal/preset"
)

type showOptions struct {
	jsonOutput bool
	normalized bool
}

func newShowCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show <preset-id>",
		Short: "Display a preset's properties for both modes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&opts.normalized, "normalized", false, "Show color values in canonical triplet form")

	return cmd
}

func runShow(cmd *cobra.Command, rootFlags *rootFlags, opts *showOptions, id string) error {
	app, err := newAppContext(rootFlags)
	if err != nil {
		return newCommandError("show", "loading configuration", err, "Check the config file and preset collection paths.")
	}

	p, ok := app.registry.Lookup(id)
	if !ok {
		return newCommandError("show", fmt.Sprintf("looking up preset %q", id), fmt.Errorf("preset not found"), "Run 'presetly list' to see available presets.")
	}

	if opts.normalized {
		p.Styles.Light = normalizeColors(p.Styles.Light)
		p.Styles.Dark = normalizeColors(p.Styles.Dark)
	}

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(p)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (%s)\n", p.Label, p.ID)
	fmt.Fprintf(out, "source: %s\n", p.Source)
	if p.Category != "" {
		fmt.Fprintf(out, "category: %s\n", p.Category)
	}
	if p.Author != "" {
		fmt.Fprintf(out, "author: %s\n", p.Author)
	}

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "\nPROPERTY\tLIGHT\tDARK")

	for _, name := range mergedPropertyNames(p) {
		fmt.Fprintf(writer, "%s\t%s\t%s\n",
			name,
			valueOrFallback(p.Styles.Light[name], "-"),
			valueOrFallback(p.Styles.Dark[name], "-"),
		)
	}

	return writer.Flush()
}

func normalizeColors(styles preset.PropertyMap) preset.PropertyMap {
	out := make(preset.PropertyMap, len(styles))
	for name, value := range styles {
		if preset.IsColorProperty(name) {
			out[name] = color.Normalize(value)
		} else {
			out[name] = value
		}
	}
	return out
}

func mergedPropertyNames(p preset.Preset) []string {
	seen := make(map[string]struct{})
	for name := range p.Styles.Light {
		seen[name] = struct{}{}
	}
	for name := range p.Styles.Dark {
		seen[name] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
