package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/presetly/internal/color"
	"github.com/alexisbeaulieu97/presetly/internal/preset"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available theme presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runList(cmd *cobra.Command, rootFlags *rootFlags, opts *listOptions) error {
	app, err := newAppContext(rootFlags)
	if err != nil {
		return newCommandError("list", "loading configuration", err, "Check the config file and preset collection paths.")
	}

	presets := app.registry.List()
	if opts.jsonOutput {
		return renderListJSON(cmd, presets)
	}

	return renderListTable(cmd, presets)
}

func renderListTable(cmd *cobra.Command, presets []preset.Preset) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "ID\tLABEL\tSOURCE\tCATEGORY\tPRIMARY")

	for _, p := range presets {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			p.ID,
			p.Label,
			p.Source,
			valueOrFallback(p.Category, "-"),
			primarySwatch(cmd.OutOrStdout(), p),
		)
	}

	return writer.Flush()
}

type listJSONPayload struct {
	Count   int             `json:"count"`
	Presets []preset.Preset `json:"presets"`
}

func renderListJSON(cmd *cobra.Command, presets []preset.Preset) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(listJSONPayload{Count: len(presets), Presets: presets})
}

// primarySwatch shows the light-mode primary color, as hex on terminals and
// as the raw value elsewhere.
func primarySwatch(writer any, p preset.Preset) string {
	raw := p.Styles.Light["primary"]
	if raw == "" {
		return "-"
	}

	if supportsUnicode(writer) {
		if hex, ok := color.Hex(raw); ok {
			return hex
		}
	}
	return raw
}

func supportsUnicode(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func valueOrFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
