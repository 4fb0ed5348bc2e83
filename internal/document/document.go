// Package document models the mutable per-document state the engine writes:
// the root mode class, the color-scheme style and the custom property set.
// Treating it as an injected port keeps the reconciliation logic testable
// against an in-memory stand-in.
package document

// Document is the side-effecting port written by the applicator and the
// provider. Property names are passed without the "--" prefix; the
// implementation owns the wire syntax.
type Document interface {
	// SetProperty writes a custom property on the root element.
	SetProperty(name, value string)
	// RemoveProperty deletes a custom property from the root element.
	RemoveProperty(name string)
	// Property returns a custom property value and whether it is present.
	Property(name string) (string, bool)
	// Properties returns a snapshot of all custom properties.
	Properties() map[string]string

	// SetModeClass replaces the root mode class ("light" xor "dark").
	SetModeClass(class string)
	// ModeClass returns the current root mode class.
	ModeClass() string

	// SetColorScheme sets the root color-scheme style value.
	SetColorScheme(scheme string)
	// ColorScheme returns the current color-scheme style value.
	ColorScheme() string
}
