package color

import "strings"

// Recognized reports whether a value looks like color syntax the engine
// understands. It is deliberately permissive: validation treats unrecognized
// syntax as a warning, never an error, so future CSS color functions such as
// oklch() must not be rejected here by callers.
func Recognized(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return false
	}

	if tripletPattern.MatchString(trimmed) {
		return true
	}
	if strings.HasPrefix(trimmed, "#") {
		_, ok := normalizeHex(trimmed)
		return ok
	}
	if hslPattern.MatchString(trimmed) || rgbPattern.MatchString(trimmed) {
		return true
	}
	if strings.HasPrefix(trimmed, "var(") && strings.HasSuffix(trimmed, ")") {
		return true
	}

	_, named := namedColors[strings.ToLower(trimmed)]
	return named
}
