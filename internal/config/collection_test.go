package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	presetlyerrors "github.com/alexisbeaulieu97/presetly/pkg/errors"
)

const sampleCollection = `slate-contrast:
  label: Slate Contrast
  category: neutral
  styles:
    light:
      background: "0 0% 100%"
      foreground: "222 47% 11%"
      primary: "#1d4ed8"
    dark:
      background: "222 47% 11%"
      foreground: "0 0% 98%"
      primary: "#60a5fa"
sunset:
  label: Sunset
  styles:
    light:
      primary: "hsl(24, 95%, 53%)"
    dark:
      primary: "hsl(24, 90%, 60%)"
`

func TestLoadCollection(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCollection), 0o644))

	entries, err := LoadCollection(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	slate, ok := entries["slate-contrast"]
	require.True(t, ok)
	assert.Equal(t, "Slate Contrast", slate.Label)
	assert.Equal(t, "neutral", slate.Category)
	assert.Equal(t, "#1d4ed8", slate.Styles.Light["primary"])
	assert.Equal(t, "0 0% 98%", slate.Styles.Dark["foreground"])

	sunset, ok := entries["sunset"]
	require.True(t, ok)
	assert.Equal(t, "Sunset", sunset.Label)
}

func TestDecodeCollectionRejectsNonMapping(t *testing.T) {
	t.Parallel()

	_, err := DecodeCollection("presets.yaml", []byte("- one\n- two\n"))
	require.Error(t, err)

	var validationErr *presetlyerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Contains(t, validationErr.Error(), "mapping")
}

func TestDecodeCollectionEmptyDocument(t *testing.T) {
	t.Parallel()

	entries, err := DecodeCollection("presets.yaml", nil)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDecodeCollectionInvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := DecodeCollection("presets.yaml", []byte("a: [\n"))
	require.Error(t, err)

	var parseErr *presetlyerrors.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestLoadCollectionMissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadCollection(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	var parseErr *presetlyerrors.ParseError
	assert.True(t, errors.As(err, &parseErr))
}
