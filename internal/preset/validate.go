package preset

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/presetly/internal/color"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	presetKeyPattern = regexp.MustCompile(`^[a-z0-9-_]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("preset_key", func(fl validator.FieldLevel) bool {
			return presetKeyPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Issue describes a single validation finding.
type Issue struct {
	Field   string
	Message string
}

func (i Issue) String() string {
	if i.Field == "" {
		return i.Message
	}
	return fmt.Sprintf("%s: %s", i.Field, i.Message)
}

// Result is the structured outcome of validating one preset candidate.
// Warnings never affect validity.
type Result struct {
	Errors   []Issue
	Warnings []Issue
}

// IsValid reports whether the candidate had no hard errors.
func (r Result) IsValid() bool {
	return len(r.Errors) == 0
}

// Validate checks a candidate preset against the required and recommended
// property schema. It never fails outright: all findings come back as
// structured errors and warnings.
func Validate(candidate Preset) Result {
	var result Result

	if strings.TrimSpace(candidate.Label) == "" {
		result.Errors = append(result.Errors, Issue{Field: "label", Message: "label must be a non-empty string"})
	}

	if candidate.Styles.Light == nil && candidate.Styles.Dark == nil {
		result.Errors = append(result.Errors, Issue{Field: "styles", Message: "styles object is required"})
		return result
	}

	validateModeStyles(&result, "light", candidate.Styles.Light)
	validateModeStyles(&result, "dark", candidate.Styles.Dark)

	return result
}

func validateModeStyles(result *Result, mode string, styles PropertyMap) {
	if styles == nil {
		result.Errors = append(result.Errors, Issue{
			Field:   fmt.Sprintf("styles.%s", mode),
			Message: "mode styles must be an object",
		})
		return
	}

	for _, name := range RequiredProperties {
		if strings.TrimSpace(styles[name]) == "" {
			result.Errors = append(result.Errors, Issue{
				Field:   fmt.Sprintf("styles.%s.%s", mode, name),
				Message: "required property is missing",
			})
		}
	}

	for _, name := range RecommendedProperties {
		if strings.TrimSpace(styles[name]) == "" {
			result.Warnings = append(result.Warnings, Issue{
				Field:   fmt.Sprintf("styles.%s.%s", mode, name),
				Message: "recommended property is missing",
			})
		}
	}

	// Unknown color syntax is a warning, never an error: future CSS color
	// functions must not invalidate a preset.
	for _, name := range sortedKeys(styles) {
		value := styles[name]
		if !IsColorProperty(name) || strings.TrimSpace(value) == "" {
			continue
		}
		if !color.Recognized(value) {
			result.Warnings = append(result.Warnings, Issue{
				Field:   fmt.Sprintf("styles.%s.%s", mode, name),
				Message: fmt.Sprintf("unrecognized color syntax %q", value),
			})
		}
	}
}

// CollectionResult aggregates validation findings for a custom collection.
// Errors are collection-fatal: the registry rejects the entire custom set when
// any are present. KeyIssues mark entries skipped for malformed keys; they do
// not reject the rest of the collection.
type CollectionResult struct {
	Errors    []Issue
	Warnings  []Issue
	KeyIssues []Issue
	Presets   map[string]Result
}

// IsValid reports whether the collection may be merged into a registry.
func (r CollectionResult) IsValid() bool {
	return len(r.Errors) == 0
}

// ValidateCollection validates every entry of a custom preset collection.
// A nil collection is valid and empty.
func ValidateCollection(presets map[string]Preset) CollectionResult {
	result := CollectionResult{Presets: make(map[string]Result, len(presets))}
	v := validatorInstance()

	for _, key := range sortedPresetKeys(presets) {
		if strings.TrimSpace(key) == "" {
			result.KeyIssues = append(result.KeyIssues, Issue{
				Message: "preset key must be a non-empty string; entry skipped",
			})
			continue
		}

		if err := v.Var(key, "preset_key"); err != nil {
			result.Warnings = append(result.Warnings, Issue{
				Field:   key,
				Message: "preset key should match [a-z0-9-_]+",
			})
		}

		entry := Validate(presets[key])
		result.Presets[key] = entry

		for _, issue := range entry.Errors {
			result.Errors = append(result.Errors, Issue{
				Field:   fmt.Sprintf("%s.%s", key, issue.Field),
				Message: issue.Message,
			})
		}
		for _, issue := range entry.Warnings {
			result.Warnings = append(result.Warnings, Issue{
				Field:   fmt.Sprintf("%s.%s", key, issue.Field),
				Message: issue.Message,
			})
		}
	}

	return result
}

func sortedKeys(m PropertyMap) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedPresetKeys(m map[string]Preset) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
