package preset

import (
	"sort"

	"github.com/alexisbeaulieu97/presetly/internal/logger"
)

// Registry is the merged view of the built-in collection and a validated
// custom collection. Custom entries override built-ins with the same key.
type Registry struct {
	presets map[string]Preset
}

// BuildRegistry merges the built-in presets with the supplied custom
// collection. The merge is all-or-nothing: a collection with any hard error
// contributes no entries at all, while warning-only collections merge in full.
// Entries skipped for malformed keys never reach the merge.
func BuildRegistry(custom map[string]Preset, log *logger.Logger) (*Registry, CollectionResult) {
	merged := BuiltIn()

	result := ValidateCollection(custom)

	for _, issue := range result.KeyIssues {
		log.WithComponent("registry").Warn(issue.String())
	}

	if !result.IsValid() {
		for _, issue := range result.Errors {
			log.WithComponent("registry").Warn(issue.String())
		}
		log.WithComponent("registry").Warn("custom preset collection rejected; using built-in presets only")
		return &Registry{presets: merged}, result
	}

	for key := range result.Presets {
		p := custom[key]
		p.ID = key
		p.Source = SourceCustom
		merged[key] = p
	}

	return &Registry{presets: merged}, result
}

// Lookup returns the preset registered under id.
func (r *Registry) Lookup(id string) (Preset, bool) {
	p, ok := r.presets[id]
	return p, ok
}

// List returns all registered presets ordered by id.
func (r *Registry) List() []Preset {
	out := make([]Preset, 0, len(r.presets))
	for _, p := range r.presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of registered presets.
func (r *Registry) Len() int {
	return len(r.presets)
}
