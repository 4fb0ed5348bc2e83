// Package gitsource imports custom preset collections from git repositories.
package gitsource

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/alexisbeaulieu97/presetly/internal/config"
	"github.com/alexisbeaulieu97/presetly/internal/logger"
	"github.com/alexisbeaulieu97/presetly/internal/preset"
)

// Options configures a collection import.
type Options struct {
	URL         string
	Destination string
	Branch      string
	Depth       int
	// File is the collection path inside the repository. When empty the
	// default candidate names are probed.
	File string
}

var defaultCollectionFiles = []string{"presets.yaml", "presets.yml", "themes.yaml"}

// Fetch clones or updates the repository at opts.Destination and decodes the
// preset collection file it contains. An existing checkout with a different
// origin URL is treated as drift and refused rather than overwritten.
func Fetch(ctx context.Context, opts Options, log *logger.Logger) (map[string]preset.Preset, error) {
	if opts.URL == "" {
		return nil, fmt.Errorf("repository url is required")
	}
	if opts.Destination == "" {
		return nil, fmt.Errorf("destination directory is required")
	}

	if err := ensureCheckout(ctx, opts, log); err != nil {
		return nil, err
	}

	path, err := locateCollection(opts)
	if err != nil {
		return nil, err
	}

	if log != nil {
		log.WithFields(map[string]any{"url": opts.URL, "file": path}).Debug("loading imported collection")
	}

	return config.LoadCollection(path)
}

func ensureCheckout(ctx context.Context, opts Options, log *logger.Logger) error {
	info, err := os.Stat(opts.Destination)
	switch {
	case os.IsNotExist(err):
		return clone(ctx, opts, log)
	case err != nil:
		return fmt.Errorf("cannot access destination: %w", err)
	case !info.IsDir():
		return fmt.Errorf("destination %s exists and is not a directory", opts.Destination)
	}

	repo, openErr := git.PlainOpen(opts.Destination)
	if openErr != nil {
		if errors.Is(openErr, git.ErrRepositoryNotExists) {
			return fmt.Errorf("destination %s exists but is not a git repository", opts.Destination)
		}
		return fmt.Errorf("cannot open repository: %w", openErr)
	}

	remote, remoteErr := repo.Remote("origin")
	if remoteErr == nil && len(remote.Config().URLs) > 0 {
		if actual := remote.Config().URLs[0]; actual != opts.URL {
			return fmt.Errorf("remote URL is %s (expected %s)", actual, opts.URL)
		}
	}

	worktree, wtErr := repo.Worktree()
	if wtErr != nil {
		return fmt.Errorf("cannot open worktree: %w", wtErr)
	}

	pullOpts := &git.PullOptions{RemoteName: "origin"}
	if opts.Branch != "" {
		pullOpts.ReferenceName = plumbing.NewBranchReferenceName(opts.Branch)
		pullOpts.SingleBranch = true
	}

	if err := worktree.PullContext(ctx, pullOpts); err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		if log != nil {
			log.WithFields(map[string]any{"url": opts.URL}).Warn("pull failed, using existing checkout")
		}
	}

	return nil
}

func clone(ctx context.Context, opts Options, log *logger.Logger) error {
	if err := os.MkdirAll(filepath.Dir(opts.Destination), 0o755); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	cloneOpts := &git.CloneOptions{URL: opts.URL}
	if opts.Depth > 0 {
		cloneOpts.Depth = opts.Depth
	}
	if opts.Branch != "" {
		cloneOpts.ReferenceName = plumbing.NewBranchReferenceName(opts.Branch)
		cloneOpts.SingleBranch = true
	}

	if log != nil {
		log.WithFields(map[string]any{"url": opts.URL, "destination": opts.Destination}).Info("cloning preset collection")
	}

	if _, err := git.PlainCloneContext(ctx, opts.Destination, false, cloneOpts); err != nil {
		return fmt.Errorf("failed to clone repository: %w", err)
	}

	return nil
}

func locateCollection(opts Options) (string, error) {
	if opts.File != "" {
		path := filepath.Join(opts.Destination, opts.File)
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("collection file %s not found in repository: %w", opts.File, err)
		}
		return path, nil
	}

	for _, name := range defaultCollectionFiles {
		path := filepath.Join(opts.Destination, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("no collection file found in %s (looked for %v)", opts.Destination, defaultCollectionFiles)
}
