package mode

// Mode is the tri-state user-facing appearance preference.
type Mode string

const (
	Light  Mode = "light"
	Dark   Mode = "dark"
	System Mode = "system"
)

// Parse returns the Mode for a raw persisted string. Anything other than the
// three valid values is rejected.
func Parse(raw string) (Mode, bool) {
	switch Mode(raw) {
	case Light, Dark, System:
		return Mode(raw), true
	default:
		return "", false
	}
}

// Resolved is the binary effective appearance derived from a Mode.
type Resolved string

const (
	ResolvedLight Resolved = "light"
	ResolvedDark  Resolved = "dark"
)

// Invert flips a resolved mode.
func (r Resolved) Invert() Resolved {
	if r == ResolvedDark {
		return ResolvedLight
	}
	return ResolvedDark
}

// Initial derives the deterministic first-render resolution for a preference,
// before any environment probing is available: dark only when the preference
// is literally dark. A non-interactive render must produce the same value.
func Initial(m Mode) Resolved {
	if m == Dark {
		return ResolvedDark
	}
	return ResolvedLight
}
