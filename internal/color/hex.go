package color

import (
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Hex converts a color value into "#rrggbb" form for terminal previews.
// Values that cannot be normalized to a triplet report ok=false.
func Hex(value string) (string, bool) {
	normalized := Normalize(value)
	if !tripletPattern.MatchString(normalized) {
		return "", false
	}

	numbers := numberPattern.FindAllString(normalized, -1)
	if len(numbers) < 3 {
		return "", false
	}

	h, err1 := strconv.ParseFloat(numbers[0], 64)
	s, err2 := strconv.ParseFloat(numbers[1], 64)
	l, err3 := strconv.ParseFloat(numbers[2], 64)
	if err1 != nil || err2 != nil || err3 != nil {
		return "", false
	}

	return colorful.Hsl(h, s/100, l/100).Clamped().Hex(), true
}
