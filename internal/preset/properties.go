package preset

// The fixed property vocabulary shared by the applicator, the validator and
// the bootstrap script generator. Everything is keyed by the bare property
// name; the document layer prefixes "--" when writing.

// ColorProperties lists every color-category property.
var ColorProperties = []string{
	"background",
	"foreground",
	"card",
	"card-foreground",
	"popover",
	"popover-foreground",
	"primary",
	"primary-foreground",
	"secondary",
	"secondary-foreground",
	"muted",
	"muted-foreground",
	"accent",
	"accent-foreground",
	"destructive",
	"destructive-foreground",
	"border",
	"input",
	"ring",
	"chart-1",
	"chart-2",
	"chart-3",
	"chart-4",
	"chart-5",
	"sidebar",
	"sidebar-foreground",
	"sidebar-primary",
	"sidebar-primary-foreground",
	"sidebar-accent",
	"sidebar-accent-foreground",
	"sidebar-border",
	"sidebar-ring",
}

// FontProperties lists the typography properties subject to cross-mode
// inheritance.
var FontProperties = []string{
	"font-sans",
	"font-serif",
	"font-mono",
}

// LayoutProperties lists layout-category properties.
var LayoutProperties = []string{
	"radius",
}

// ShadowProperties lists the shadow-category properties. shadow-color is the
// only one treated as a color value.
var ShadowProperties = []string{
	"shadow-color",
	"shadow-opacity",
	"shadow-blur",
	"shadow-spread",
	"shadow-offset-x",
	"shadow-offset-y",
}

// SpacingProperties lists spacing-category properties.
var SpacingProperties = []string{
	"letter-spacing",
	"spacing",
}

// RequiredProperties must be present as non-empty strings in each mode of a
// valid preset.
var RequiredProperties = []string{
	"background",
	"foreground",
	"primary",
	"primary-foreground",
	"secondary",
	"secondary-foreground",
	"card",
	"card-foreground",
}

// RecommendedProperties generate a warning, not an error, when absent.
var RecommendedProperties = []string{
	"muted",
	"muted-foreground",
	"accent",
	"accent-foreground",
	"destructive",
	"destructive-foreground",
	"border",
	"input",
	"ring",
	"popover",
	"popover-foreground",
}

// DefaultValues supplies fallbacks written when a preset omits the property.
// Properties without a default are skipped entirely.
var DefaultValues = map[string]string{
	"spacing":        "0.25rem",
	"letter-spacing": "normal",
}

var allProperties []string

func init() {
	groups := [][]string{
		ColorProperties,
		FontProperties,
		LayoutProperties,
		ShadowProperties,
		SpacingProperties,
	}
	for _, group := range groups {
		allProperties = append(allProperties, group...)
	}
}

// AllProperties returns the full fixed property set in stable order.
func AllProperties() []string {
	out := make([]string, len(allProperties))
	copy(out, allProperties)
	return out
}

var colorPropertySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(ColorProperties)+1)
	for _, name := range ColorProperties {
		set[name] = struct{}{}
	}
	// shadow-color rides through color normalization with the color category.
	set["shadow-color"] = struct{}{}
	return set
}()

// IsColorProperty reports whether the value of the named property must pass
// through color normalization before being written.
func IsColorProperty(name string) bool {
	_, ok := colorPropertySet[name]
	return ok
}

var fontPropertySet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(FontProperties))
	for _, name := range FontProperties {
		set[name] = struct{}{}
	}
	return set
}()

// IsFontProperty reports whether the named property participates in
// cross-mode font inheritance.
func IsFontProperty(name string) bool {
	_, ok := fontPropertySet[name]
	return ok
}
