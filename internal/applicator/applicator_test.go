package applicator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/presetly/internal/color"
	"github.com/alexisbeaulieu97/presetly/internal/document"
	"github.com/alexisbeaulieu97/presetly/internal/mode"
	"github.com/alexisbeaulieu97/presetly/internal/preset"
)

func testStyles() preset.Styles {
	return preset.Styles{
		Light: preset.PropertyMap{
			"background": "#ffffff",
			"primary":    "#2563eb",
			"font-mono":  "JetBrains Mono, monospace",
			"radius":     "0.5rem",
		},
		Dark: preset.PropertyMap{
			"background": "#0f172a",
			"primary":    "#60a5fa",
		},
	}
}

func TestApplyWritesNormalizedColors(t *testing.T) {
	t.Parallel()

	doc := document.NewMemory()
	Apply(doc, testStyles(), mode.ResolvedLight)

	v, ok := doc.Property("primary")
	require.True(t, ok)
	assert.Equal(t, color.Normalize("#2563eb"), v)

	radius, ok := doc.Property("radius")
	require.True(t, ok)
	assert.Equal(t, "0.5rem", radius)
}

func TestApplyIsIdempotent(t *testing.T) {
	t.Parallel()

	doc := document.NewMemory()
	styles := testStyles()

	Apply(doc, styles, mode.ResolvedDark)
	first := doc.Properties()

	Apply(doc, styles, mode.ResolvedDark)
	second := doc.Properties()

	assert.Equal(t, first, second)
}

func TestApplyClearsStaleProperties(t *testing.T) {
	t.Parallel()

	doc := document.NewMemory()

	presetA := preset.Styles{Light: preset.PropertyMap{
		"background": "#ffffff",
		"accent":     "#e0f2fe",
	}}
	presetB := preset.Styles{Light: preset.PropertyMap{
		"background": "#fafafa",
	}}

	Apply(doc, presetA, mode.ResolvedLight)
	_, ok := doc.Property("accent")
	require.True(t, ok)

	Apply(doc, presetB, mode.ResolvedLight)
	_, ok = doc.Property("accent")
	assert.False(t, ok, "accent from the previous preset must not survive")
}

func TestApplyFontInheritance(t *testing.T) {
	t.Parallel()

	doc := document.NewMemory()
	styles := testStyles()

	// dark.font-mono is undefined; the light value must be applied.
	Apply(doc, styles, mode.ResolvedDark)

	v, ok := doc.Property("font-mono")
	require.True(t, ok)
	assert.Equal(t, "JetBrains Mono, monospace", v)

	// The stored styles are untouched.
	_, defined := styles.Dark["font-mono"]
	assert.False(t, defined)
}

func TestApplyDefaultsAndSkips(t *testing.T) {
	t.Parallel()

	doc := document.NewMemory()
	Apply(doc, preset.Styles{Light: preset.PropertyMap{"background": "#ffffff"}}, mode.ResolvedLight)

	spacing, ok := doc.Property("spacing")
	require.True(t, ok)
	assert.Equal(t, "0.25rem", spacing)

	letterSpacing, ok := doc.Property("letter-spacing")
	require.True(t, ok)
	assert.Equal(t, "normal", letterSpacing)

	// No value and no default: the property is not written at all.
	_, ok = doc.Property("ring")
	assert.False(t, ok)
	_, ok = doc.Property("shadow-blur")
	assert.False(t, ok)
}

func TestApplyExactPropertySet(t *testing.T) {
	t.Parallel()

	doc := document.NewMemory()
	Apply(doc, testStyles(), mode.ResolvedLight)

	want := map[string]struct{}{
		"background": {}, "primary": {}, "font-mono": {}, "radius": {},
		"spacing": {}, "letter-spacing": {},
	}
	got := doc.Properties()
	assert.Len(t, got, len(want))
	for name := range want {
		_, ok := got[name]
		assert.True(t, ok, "missing %s", name)
	}
}

func TestApplyModeWritesClassAndScheme(t *testing.T) {
	t.Parallel()

	doc := document.NewMemory()
	ApplyMode(doc, mode.ResolvedDark)
	assert.Equal(t, "dark", doc.ModeClass())
	assert.Equal(t, "dark", doc.ColorScheme())

	ApplyMode(doc, mode.ResolvedLight)
	assert.Equal(t, "light", doc.ModeClass())
	assert.Equal(t, "light", doc.ColorScheme())
}
