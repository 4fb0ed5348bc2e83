// Package applicator writes a preset's resolved values onto a document.
package applicator

import (
	"github.com/alexisbeaulieu97/presetly/internal/color"
	"github.com/alexisbeaulieu97/presetly/internal/document"
	"github.com/alexisbeaulieu97/presetly/internal/mode"
	"github.com/alexisbeaulieu97/presetly/internal/preset"
)

// Apply clears the full fixed property set and writes the values resolved for
// the given mode. After it returns, the document carries exactly the
// properties with a resolved value for this preset and mode; nothing from a
// previous application survives unless re-supplied.
func Apply(doc document.Document, styles preset.Styles, resolved mode.Resolved) {
	Clear(doc)

	target := styles.Light
	other := styles.Dark
	if resolved == mode.ResolvedDark {
		target, other = other, target
	}
	if target == nil {
		target = preset.PropertyMap{}
	}

	working := withFontInheritance(target, other)

	for _, name := range preset.AllProperties() {
		value, ok := working[name]
		if !ok || value == "" {
			value, ok = preset.DefaultValues[name]
			if !ok {
				continue
			}
		}

		if preset.IsColorProperty(name) {
			value = color.Normalize(value)
		}

		doc.SetProperty(name, value)
	}
}

// Clear removes every property in the fixed set from the document,
// regardless of whether the next preset defines them.
func Clear(doc document.Document) {
	for _, name := range preset.AllProperties() {
		doc.RemoveProperty(name)
	}
}

// ApplyMode writes the root mode class and color-scheme style for the
// resolved mode. The class is always exactly "light" or "dark", never both.
func ApplyMode(doc document.Document, resolved mode.Resolved) {
	doc.SetModeClass(string(resolved))
	doc.SetColorScheme(string(resolved))
}

// withFontInheritance patches the values being applied so a font-family
// property missing from the target mode falls back to the other mode's value.
// The stored preset is never mutated; the patch lives only for this
// application.
func withFontInheritance(target, other preset.PropertyMap) preset.PropertyMap {
	working := make(preset.PropertyMap, len(target))
	for k, v := range target {
		working[k] = v
	}

	if other == nil {
		return working
	}

	for _, name := range preset.FontProperties {
		if working[name] == "" {
			if v := other[name]; v != "" {
				working[name] = v
			}
		}
	}

	return working
}
