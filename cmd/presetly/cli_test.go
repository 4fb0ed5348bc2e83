package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func isolateHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Presetly")
	assert.Contains(t, out, "commit:")
}

func TestListCommandShowsBuiltIns(t *testing.T) {
	isolateHome(t)

	out, err := runCommand(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "modern-minimal")
	assert.Contains(t, out, "ocean-breeze")
	assert.Contains(t, out, "amber-minimal")
	assert.Contains(t, out, "built-in")
}

func TestListCommandJSON(t *testing.T) {
	isolateHome(t)

	out, err := runCommand(t, "list", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"count": 3`)
	assert.Contains(t, out, `"id": "modern-minimal"`)
}

func TestShowCommand(t *testing.T) {
	isolateHome(t)

	out, err := runCommand(t, "show", "ocean-breeze")
	require.NoError(t, err)
	assert.Contains(t, out, "Ocean Breeze")
	assert.Contains(t, out, "PROPERTY")
	assert.Contains(t, out, "primary")
}

func TestShowCommandUnknownPreset(t *testing.T) {
	isolateHome(t)

	_, err := runCommand(t, "show", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "preset not found")
}

func TestApplyThenModePersistsAcrossInvocations(t *testing.T) {
	isolateHome(t)

	out, err := runCommand(t, "apply", "ocean-breeze")
	require.NoError(t, err)
	assert.Contains(t, out, "applied Ocean Breeze (ocean-breeze)")
	assert.Contains(t, out, "--primary:")

	out, err = runCommand(t, "mode", "dark")
	require.NoError(t, err)
	assert.Contains(t, out, "mode: dark (resolved: dark)")

	// A fresh invocation reads the same persisted slots.
	out, err = runCommand(t, "mode")
	require.NoError(t, err)
	assert.Contains(t, out, "mode: dark (resolved: dark)")
}

func TestToggleCommandFlipsResolvedMode(t *testing.T) {
	isolateHome(t)

	_, err := runCommand(t, "mode", "light")
	require.NoError(t, err)

	out, err := runCommand(t, "toggle")
	require.NoError(t, err)
	assert.Contains(t, out, "mode: dark")
}

func TestModeCommandRejectsUnknownValue(t *testing.T) {
	isolateHome(t)

	_, err := runCommand(t, "mode", "midnight")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}

func TestValidateCommandAcceptsGoodCollection(t *testing.T) {
	isolateHome(t)

	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`custom-slate:
  label: Custom Slate
  styles:
    light:
      background: "0 0% 100%"
      foreground: "222 47% 11%"
      card: "0 0% 100%"
      card-foreground: "222 47% 11%"
      primary: "#1d4ed8"
      primary-foreground: "0 0% 100%"
      secondary: "215 16% 87%"
      secondary-foreground: "222 47% 11%"
    dark:
      background: "222 47% 11%"
      foreground: "0 0% 98%"
      card: "222 47% 13%"
      card-foreground: "0 0% 98%"
      primary: "#60a5fa"
      primary-foreground: "222 47% 11%"
      secondary: "217 19% 27%"
      secondary-foreground: "0 0% 98%"
`), 0o644))

	out, err := runCommand(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ok: 1 preset(s) valid")
}

func TestValidateCommandRejectsBrokenCollection(t *testing.T) {
	isolateHome(t)

	path := filepath.Join(t.TempDir(), "presets.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`broken:
  label: ""
  styles:
    light:
      background: "0 0% 100%"
`), 0o644))

	out, err := runCommand(t, "validate", path)
	require.Error(t, err)
	assert.Contains(t, out, "error:")
}

func TestBootstrapCommandEmitsScript(t *testing.T) {
	isolateHome(t)

	out, err := runCommand(t, "bootstrap")
	require.NoError(t, err)
	assert.Contains(t, out, "(function(){")
	assert.Contains(t, out, "theme-engine-theme")
}

func TestBootstrapCommandWithDefaultPreset(t *testing.T) {
	isolateHome(t)

	out, err := runCommand(t, "bootstrap", "--default-preset", "modern-minimal")
	require.NoError(t, err)
	assert.Contains(t, out, `"presetId":"modern-minimal"`)
}

func TestBootstrapCommandWritesFile(t *testing.T) {
	isolateHome(t)

	target := filepath.Join(t.TempDir(), "theme-init.js")
	out, err := runCommand(t, "bootstrap", "-o", target)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")

	contents, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "(function(){")
}

func TestCustomCollectionViaConfig(t *testing.T) {
	home := isolateHome(t)

	collection := filepath.Join(home, "presets.yaml")
	require.NoError(t, os.WriteFile(collection, []byte(`night-owl:
  label: Night Owl
  styles:
    light:
      background: "0 0% 100%"
      foreground: "222 47% 11%"
      card: "0 0% 100%"
      card-foreground: "222 47% 11%"
      primary: "200 100% 30%"
      primary-foreground: "0 0% 100%"
      secondary: "215 16% 87%"
      secondary-foreground: "222 47% 11%"
    dark:
      background: "222 47% 11%"
      foreground: "0 0% 98%"
      card: "222 47% 13%"
      card-foreground: "0 0% 98%"
      primary: "200 100% 60%"
      primary-foreground: "222 47% 11%"
      secondary: "217 19% 27%"
      secondary-foreground: "0 0% 98%"
`), 0o644))

	configPath := filepath.Join(home, "presetly.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`version: "1.0"
presets:
  collection: `+collection+`
`), 0o644))

	out, err := runCommand(t, "--config", configPath, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "night-owl")
	assert.Contains(t, out, "custom")
}
