package preset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCandidate() Preset {
	modeStyles := func() PropertyMap {
		styles := make(PropertyMap)
		for _, name := range RequiredProperties {
			styles[name] = "#2563eb"
		}
		for _, name := range RecommendedProperties {
			styles[name] = "#64748b"
		}
		return styles
	}
	return Preset{
		Label:  "Candidate",
		Styles: Styles{Light: modeStyles(), Dark: modeStyles()},
	}
}

func TestValidateAcceptsCompleteCandidate(t *testing.T) {
	t.Parallel()

	result := Validate(validCandidate())
	assert.True(t, result.IsValid())
	assert.Empty(t, result.Errors)
	assert.Empty(t, result.Warnings)
}

func TestValidateMissingStylesShortCircuits(t *testing.T) {
	t.Parallel()

	result := Validate(Preset{Label: "No Styles"})
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "styles", result.Errors[0].Field)
}

func TestValidateEmptyLabel(t *testing.T) {
	t.Parallel()

	candidate := validCandidate()
	candidate.Label = "  "

	result := Validate(candidate)
	require.NotEmpty(t, result.Errors)
	assert.Equal(t, "label", result.Errors[0].Field)
}

func TestValidateMissingModeContinuesWithOther(t *testing.T) {
	t.Parallel()

	candidate := validCandidate()
	candidate.Styles.Dark = nil
	delete(candidate.Styles.Light, "primary")

	result := Validate(candidate)

	fields := make([]string, 0, len(result.Errors))
	for _, issue := range result.Errors {
		fields = append(fields, issue.Field)
	}
	assert.Contains(t, fields, "styles.dark")
	assert.Contains(t, fields, "styles.light.primary")
}

func TestValidateEachMissingRequiredPropertyIsSeparateError(t *testing.T) {
	t.Parallel()

	candidate := validCandidate()
	delete(candidate.Styles.Light, "background")
	candidate.Styles.Light["foreground"] = ""

	result := Validate(candidate)
	assert.Len(t, result.Errors, 2)
	assert.False(t, result.IsValid())
}

func TestValidateMissingRecommendedPropertyWarnsOnly(t *testing.T) {
	t.Parallel()

	candidate := validCandidate()
	delete(candidate.Styles.Dark, "ring")

	result := Validate(candidate)
	assert.True(t, result.IsValid())
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, "styles.dark.ring", result.Warnings[0].Field)
}

func TestValidateUnknownColorSyntaxWarnsOnly(t *testing.T) {
	t.Parallel()

	candidate := validCandidate()
	candidate.Styles.Light["primary"] = "oklch(0.7 0.15 230)"

	result := Validate(candidate)
	assert.True(t, result.IsValid())
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0].Message, "oklch")
}

func TestValidateCollectionSkipsEmptyKeys(t *testing.T) {
	t.Parallel()

	collection := map[string]Preset{
		"":     validCandidate(),
		"good": validCandidate(),
	}

	result := ValidateCollection(collection)
	assert.True(t, result.IsValid())
	require.Len(t, result.KeyIssues, 1)
	assert.Contains(t, result.Presets, "good")
	assert.NotContains(t, result.Presets, "")
}

func TestValidateCollectionWarnsOnUnconventionalKeys(t *testing.T) {
	t.Parallel()

	result := ValidateCollection(map[string]Preset{"My Theme!": validCandidate()})
	assert.True(t, result.IsValid())
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Presets, "My Theme!")
}

func TestValidateCollectionAggregatesEntryErrors(t *testing.T) {
	t.Parallel()

	broken := validCandidate()
	broken.Styles = Styles{}

	result := ValidateCollection(map[string]Preset{
		"ok":     validCandidate(),
		"broken": broken,
	})

	assert.False(t, result.IsValid())
	require.NotEmpty(t, result.Errors)
	assert.Contains(t, result.Errors[0].Field, "broken")
}

func TestValidateCollectionNilIsValid(t *testing.T) {
	t.Parallel()

	result := ValidateCollection(nil)
	assert.True(t, result.IsValid())
	assert.Empty(t, result.Presets)
}
