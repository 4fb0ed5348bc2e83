package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/presetly/internal/gitsource"
	"github.com/alexisbeaulieu97/presetly/internal/preset"
)

type importOptions struct {
	destination string
	branch      string
	file        string
	depth       int
}

func newImportCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import <repository-url>",
		Short: "Import and validate a preset collection from a git repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, rootFlags, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.destination, "dest", "", "Checkout directory (defaults to the state directory)")
	cmd.Flags().StringVar(&opts.branch, "branch", "", "Branch to fetch")
	cmd.Flags().StringVar(&opts.file, "file", "", "Collection file inside the repository")
	cmd.Flags().IntVar(&opts.depth, "depth", 1, "Clone depth, 0 for full history")

	return cmd
}

func runImport(cmd *cobra.Command, rootFlags *rootFlags, opts *importOptions, url string) error {
	app, err := newAppContext(rootFlags)
	if err != nil {
		return newCommandError("import", "loading configuration", err, "Check the config file and preset collection paths.")
	}

	dest := opts.destination
	if dest == "" {
		dir, dirErr := defaultStateDir()
		if dirErr != nil {
			return newCommandError("import", "determining checkout directory", dirErr, "Pass --dest explicitly.")
		}
		dest = filepath.Join(dir, "imports", sanitizeRepoName(url))
	}

	entries, err := gitsource.Fetch(cmd.Context(), gitsource.Options{
		URL:         url,
		Destination: dest,
		Branch:      opts.branch,
		Depth:       opts.depth,
		File:        opts.file,
	}, app.log)
	if err != nil {
		return newCommandError("import", "fetching collection repository", err, "Check the URL is reachable and contains a presets.yaml file.")
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
		return newCommandError("import", "validating imported collection",
			fmt.Errorf("%d error(s) found", len(result.Errors)),
			"Fix the collection upstream; invalid collections are rejected as a whole.")
	}

	keys := make([]string, 0, len(result.Presets))
	for key := range result.Presets {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprintf(out, "imported %d preset(s) into %s\n", len(keys), dest)
	for _, key := range keys {
		fmt.Fprintf(out, "  %s\n", key)
	}
	fmt.Fprintf(out, "point presets.collection in your config at the collection file to activate it\n")
	return nil
}

func sanitizeRepoName(url string) string {
	base := filepath.Base(url)
	if base == "." || base == string(os.PathSeparator) || base == "" {
		return "collection"
	}
	return base
}
