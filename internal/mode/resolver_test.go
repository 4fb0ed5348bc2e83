package mode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"light", "dark", "system"} {
		m, ok := Parse(raw)
		require.True(t, ok)
		assert.Equal(t, Mode(raw), m)
	}

	for _, raw := range []string{"", "auto", "DARK", "banana"} {
		_, ok := Parse(raw)
		assert.False(t, ok, "expected %q to be rejected", raw)
	}
}

func TestInitialResolution(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ResolvedDark, Initial(Dark))
	assert.Equal(t, ResolvedLight, Initial(Light))
	// System must not probe the environment for the first render.
	assert.Equal(t, ResolvedLight, Initial(System))
}

func TestResolverDeterministicForExplicitModes(t *testing.T) {
	t.Parallel()

	r := NewResolver(StaticSource{Dark: true}, Light)
	assert.Equal(t, ResolvedLight, r.SetMode(Light))
	assert.Equal(t, ResolvedDark, r.SetMode(Dark))
}

func TestResolverSystemFollowsSignal(t *testing.T) {
	t.Parallel()

	source := NewSignalSource(true)
	r := NewResolver(source, System)

	assert.Equal(t, ResolvedDark, r.Activate())

	var notified []Resolved
	r.OnChange(func(res Resolved) { notified = append(notified, res) })

	source.SetDark(false)
	assert.Equal(t, ResolvedLight, r.Resolved())
	assert.Equal(t, []Resolved{ResolvedLight}, notified)
}

func TestResolverSubscriptionLifecycle(t *testing.T) {
	t.Parallel()

	source := NewSignalSource(false)
	r := NewResolver(source, System)

	r.Activate()
	assert.Equal(t, 1, source.SubscriberCount())

	// Re-resolving while still in system must not stack subscriptions.
	r.SetMode(System)
	assert.Equal(t, 1, source.SubscriberCount())

	// Leaving system tears the subscription down.
	r.SetMode(Light)
	assert.Equal(t, 0, source.SubscriberCount())

	// OS changes after teardown never leak through.
	var fired bool
	r.OnChange(func(Resolved) { fired = true })
	source.SetDark(true)
	assert.False(t, fired)
	assert.Equal(t, ResolvedLight, r.Resolved())
}

func TestResolverClose(t *testing.T) {
	t.Parallel()

	source := NewSignalSource(false)
	r := NewResolver(source, System)
	r.Activate()
	require.Equal(t, 1, source.SubscriberCount())

	r.Close()
	assert.Equal(t, 0, source.SubscriberCount())
}
