package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	tripletPattern = regexp.MustCompile(`^\s*\d+(?:\.\d+)?\s+\d+(?:\.\d+)?%\s+\d+(?:\.\d+)?%\s*$`)
	hslPattern     = regexp.MustCompile(`(?i)^hsla?\((.+)\)$`)
	rgbPattern     = regexp.MustCompile(`(?i)^rgba?\((.+)\)$`)
	numberPattern  = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
)

// Normalize converts an arbitrary CSS color value into the canonical
// "H S% L%" triplet used for custom properties. It never fails: values it
// cannot interpret are returned unchanged as a lossy fallback.
func Normalize(value string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return value
	}

	if tripletPattern.MatchString(trimmed) {
		return value
	}

	if m := hslPattern.FindStringSubmatch(trimmed); m != nil {
		if out, ok := normalizeHSLComponents(m[1]); ok {
			return out
		}
		return value
	}

	if m := rgbPattern.FindStringSubmatch(trimmed); m != nil {
		if out, ok := normalizeRGBComponents(m[1]); ok {
			return out
		}
		return value
	}

	if strings.HasPrefix(trimmed, "#") {
		if out, ok := normalizeHex(trimmed); ok {
			return out
		}
		return value
	}

	// var() references are assumed to resolve to a triplet downstream.
	if strings.HasPrefix(trimmed, "var(") {
		return value
	}

	// Probe path for named colors and any other syntax we can resolve.
	if hex, ok := namedColors[strings.ToLower(trimmed)]; ok {
		if out, converted := normalizeHex(hex); converted {
			return out
		}
	}

	return value
}

func normalizeHSLComponents(body string) (string, bool) {
	numbers := numberPattern.FindAllString(body, -1)
	if len(numbers) < 3 {
		return "", false
	}

	h, err1 := strconv.ParseFloat(numbers[0], 64)
	s, err2 := strconv.ParseFloat(numbers[1], 64)
	l, err3 := strconv.ParseFloat(numbers[2], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return "", false
	}

	return formatTriplet(clamp(h, 0, 360), clamp(s, 0, 100), clamp(l, 0, 100)), true
}

func normalizeRGBComponents(body string) (string, bool) {
	numbers := numberPattern.FindAllString(body, -1)
	if len(numbers) < 3 {
		return "", false
	}

	var channels [3]float64
	for i := 0; i < 3; i++ {
		n, err := strconv.ParseFloat(numbers[i], 64)
		if err != nil {
			return "", false
		}
		channels[i] = clamp(n, 0, 255)
	}

	return rgbToTriplet(channels[0], channels[1], channels[2]), true
}

func normalizeHex(value string) (string, bool) {
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")

	switch len(hex) {
	case 3:
		hex = fmt.Sprintf("%c%c%c%c%c%c", hex[0], hex[0], hex[1], hex[1], hex[2], hex[2])
	case 6:
	case 8:
		// Drop the alpha channel.
		hex = hex[:6]
	default:
		return "", false
	}

	parsed, err := colorful.Hex("#" + strings.ToLower(hex))
	if err != nil {
		return "", false
	}

	return rgbToTriplet(parsed.R*255, parsed.G*255, parsed.B*255), true
}

func rgbToTriplet(r, g, b float64) string {
	c := colorful.Color{R: r / 255, G: g / 255, B: b / 255}
	h, s, l := c.Hsl()
	return formatTriplet(h, s*100, l*100)
}

func formatTriplet(h, s, l float64) string {
	return fmt.Sprintf("%d %d%% %d%%", round(h), round(s), round(l))
}

func round(v float64) int {
	return int(math.Round(v))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
