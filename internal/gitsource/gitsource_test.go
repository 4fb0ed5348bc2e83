package gitsource

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/presetly/internal/logger"
)

const fixtureCollection = `forest:
  label: Forest
  styles:
    light:
      primary: "#166534"
      background: "0 0% 100%"
    dark:
      primary: "#4ade80"
      background: "150 30% 8%"
`

func initCollectionRepo(t *testing.T, file string) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, file), []byte(fixtureCollection), 0o644))
	_, err = wt.Add(file)
	require.NoError(t, err)

	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Presetly",
			Email: "presetly@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return dir
}

func TestFetchClonesAndDecodes(t *testing.T) {
	source := initCollectionRepo(t, "presets.yaml")
	dest := filepath.Join(t.TempDir(), "import")

	entries, err := Fetch(context.Background(), Options{URL: source, Destination: dest}, logger.Nop())
	require.NoError(t, err)
	require.Len(t, entries, 1)

	forest, ok := entries["forest"]
	require.True(t, ok)
	assert.Equal(t, "Forest", forest.Label)
	assert.Equal(t, "#166534", forest.Styles.Light["primary"])
}

func TestFetchExplicitFile(t *testing.T) {
	source := initCollectionRepo(t, "themes.yaml")
	dest := filepath.Join(t.TempDir(), "import")

	entries, err := Fetch(context.Background(), Options{URL: source, Destination: dest, File: "themes.yaml"}, nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestFetchReusesExistingClone(t *testing.T) {
	source := initCollectionRepo(t, "presets.yaml")
	dest := filepath.Join(t.TempDir(), "import")

	_, err := Fetch(context.Background(), Options{URL: source, Destination: dest}, nil)
	require.NoError(t, err)

	entries, err := Fetch(context.Background(), Options{URL: source, Destination: dest}, nil)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestFetchRejectsURLDrift(t *testing.T) {
	source := initCollectionRepo(t, "presets.yaml")
	dest := filepath.Join(t.TempDir(), "import")

	_, err := Fetch(context.Background(), Options{URL: source, Destination: dest}, nil)
	require.NoError(t, err)

	_, err = Fetch(context.Background(), Options{URL: "/tmp/other.git", Destination: dest}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "remote URL")
}

func TestFetchRejectsNonRepoDestination(t *testing.T) {
	source := initCollectionRepo(t, "presets.yaml")
	dest := t.TempDir()

	_, err := Fetch(context.Background(), Options{URL: source, Destination: dest}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a git repository")
}

func TestFetchMissingCollectionFile(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("no presets"), 0o644))
	_, err = wt.Add("README.md")
	require.NoError(t, err)
	_, err = wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{Name: "Presetly", Email: "presetly@example.com", When: time.Now()},
	})
	require.NoError(t, err)

	dest := filepath.Join(t.TempDir(), "import")
	_, err = Fetch(context.Background(), Options{URL: dir, Destination: dest}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no collection file")
}

func TestFetchRequiresURLAndDestination(t *testing.T) {
	t.Parallel()

	_, err := Fetch(context.Background(), Options{Destination: "/tmp/x"}, nil)
	require.Error(t, err)

	_, err = Fetch(context.Background(), Options{URL: "/tmp/x"}, nil)
	require.Error(t, err)
}
