package preset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/presetly/internal/logger"
)

func TestBuiltInIsACopy(t *testing.T) {
	t.Parallel()

	first := BuiltIn()
	first["modern-minimal"].Styles.Light["background"] = "#123456"

	second := BuiltIn()
	assert.Equal(t, "#ffffff", second["modern-minimal"].Styles.Light["background"])
}

func TestBuildRegistryMergesBuiltIns(t *testing.T) {
	t.Parallel()

	reg, result := BuildRegistry(nil, logger.Nop())
	assert.True(t, result.IsValid())
	assert.Equal(t, len(BuiltIn()), reg.Len())

	p, ok := reg.Lookup("modern-minimal")
	require.True(t, ok)
	assert.Equal(t, SourceBuiltIn, p.Source)
}

func TestBuildRegistryCustomOverridesBuiltIn(t *testing.T) {
	t.Parallel()

	custom := validCandidate()
	custom.Label = "Custom Minimal"

	reg, result := BuildRegistry(map[string]Preset{"modern-minimal": custom}, logger.Nop())
	require.True(t, result.IsValid())

	p, ok := reg.Lookup("modern-minimal")
	require.True(t, ok)
	assert.Equal(t, "Custom Minimal", p.Label)
	assert.Equal(t, SourceCustom, p.Source)
}

func TestBuildRegistryAtomicRejection(t *testing.T) {
	t.Parallel()

	broken := Preset{Label: "Broken"}

	reg, result := BuildRegistry(map[string]Preset{
		"fresh-take": validCandidate(),
		"broken":     broken,
	}, logger.Nop())

	assert.False(t, result.IsValid())

	// No custom entry appears, valid or not, and built-ins are untouched.
	_, ok := reg.Lookup("fresh-take")
	assert.False(t, ok)
	_, ok = reg.Lookup("broken")
	assert.False(t, ok)

	p, ok := reg.Lookup("modern-minimal")
	require.True(t, ok)
	assert.Equal(t, "Modern Minimal", p.Label)
	assert.Equal(t, len(BuiltIn()), reg.Len())
}

func TestBuildRegistryWarningOnlyEntriesAreMerged(t *testing.T) {
	t.Parallel()

	sparse := validCandidate()
	delete(sparse.Styles.Light, "ring")

	reg, result := BuildRegistry(map[string]Preset{"sparse": sparse}, logger.Nop())
	assert.True(t, result.IsValid())
	assert.NotEmpty(t, result.Warnings)

	_, ok := reg.Lookup("sparse")
	assert.True(t, ok)
}

func TestRegistryListOrderedByID(t *testing.T) {
	t.Parallel()

	reg, _ := BuildRegistry(nil, logger.Nop())
	list := reg.List()
	require.NotEmpty(t, list)
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].ID, list[i].ID)
	}
}

func TestNewCurrentState(t *testing.T) {
	t.Parallel()

	builtIns := BuiltIn()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	state := NewCurrentState(builtIns["ocean-breeze"], now)
	assert.Equal(t, "ocean-breeze", state.PresetID)
	assert.Equal(t, "Ocean Breeze", state.PresetName)
	assert.Equal(t, now.UnixMilli(), state.AppliedAt)
	assert.True(t, state.HasBothModes())
}
