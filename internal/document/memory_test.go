package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryProperties(t *testing.T) {
	t.Parallel()

	doc := NewMemory()
	doc.SetProperty("primary", "217 91% 60%")

	v, ok := doc.Property("primary")
	assert.True(t, ok)
	assert.Equal(t, "217 91% 60%", v)

	doc.RemoveProperty("primary")
	_, ok = doc.Property("primary")
	assert.False(t, ok)
}

func TestMemorySnapshotIsIsolated(t *testing.T) {
	t.Parallel()

	doc := NewMemory()
	doc.SetProperty("background", "0 0% 100%")

	snapshot := doc.Properties()
	snapshot["background"] = "tampered"

	v, _ := doc.Property("background")
	assert.Equal(t, "0 0% 100%", v)
}

func TestMemoryStyleAttr(t *testing.T) {
	t.Parallel()

	doc := NewMemory()
	doc.SetColorScheme("dark")
	doc.SetProperty("foreground", "210 40% 98%")
	doc.SetProperty("background", "222 47% 11%")

	assert.Equal(t,
		"color-scheme: dark; --background: 222 47% 11%; --foreground: 210 40% 98%",
		doc.StyleAttr())
}

func TestMemoryModeClass(t *testing.T) {
	t.Parallel()

	doc := NewMemory()
	doc.SetModeClass("dark")
	assert.Equal(t, "dark", doc.ModeClass())

	doc.SetModeClass("light")
	assert.Equal(t, "light", doc.ModeClass())
}
