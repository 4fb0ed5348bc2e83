package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/presetly/internal/config"
	"github.com/alexisbeaulieu97/presetly/internal/preset"
)

func newValidateCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <collection-file>",
		Short: "Validate a custom preset collection file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0])
		},
	}

	return cmd
}

func runValidate(cmd *cobra.Command, path string) error {
	entries, err := config.LoadCollection(path)
	if err != nil {
		return newCommandError("validate", "reading collection file", err, "Check the file exists and is a YAML mapping of preset keys to presets.")
	}

	result := preset.ValidateCollection(entries)
	out := cmd.OutOrStdout()

	for _, issue := range result.KeyIssues {
		fmt.Fprintf(out, "skipped: %s\n", issue)
	}
	for _, issue := range result.Warnings {
		fmt.Fprintf(out, "warning: %s\n", issue)
	}
	for _, issue := range result.Errors {
		fmt.Fprintf(out, "error: %s\n", issue)
	}

	if !result.IsValid() {
		return newCommandError("validate", fmt.Sprintf("validating %s", path),
			fmt.Errorf("%d error(s) found, the whole collection would be rejected", len(result.Errors)),
			"Fix the listed errors; a collection with any error is discarded at load time.")
	}

	fmt.Fprintf(out, "ok: %d preset(s) valid", len(result.Presets))
	if len(result.Warnings) > 0 {
		fmt.Fprintf(out, " with %d warning(s)", len(result.Warnings))
	}
	fmt.Fprintln(out)
	return nil
}
