package preset

import "time"

// Source identifies which collection a preset came from.
type Source string

const (
	SourceBuiltIn Source = "built-in"
	SourceCustom  Source = "custom"
)

// PropertyMap maps fixed property names to raw CSS values for one mode.
type PropertyMap map[string]string

// Styles pairs the light and dark property maps of a preset.
type Styles struct {
	Light PropertyMap `yaml:"light" json:"light"`
	Dark  PropertyMap `yaml:"dark" json:"dark"`
}

// Clone returns a deep copy of the styles pair.
func (s Styles) Clone() Styles {
	return Styles{Light: s.Light.clone(), Dark: s.Dark.clone()}
}

func (m PropertyMap) clone() PropertyMap {
	if m == nil {
		return nil
	}
	out := make(PropertyMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Preset is an immutable value object describing a named theme.
type Preset struct {
	ID        string    `yaml:"-" json:"id"`
	Label     string    `yaml:"label" json:"label"`
	Styles    Styles    `yaml:"styles" json:"styles"`
	Category  string    `yaml:"category,omitempty" json:"category,omitempty"`
	Tags      []string  `yaml:"tags,omitempty" json:"tags,omitempty"`
	Author    string    `yaml:"author,omitempty" json:"author,omitempty"`
	CreatedAt time.Time `yaml:"created_at,omitempty" json:"createdAt,omitempty"`
	Source    Source    `yaml:"-" json:"source,omitempty"`
}

// CurrentState is the persisted record of the preset applied to the document.
type CurrentState struct {
	PresetID   string `json:"presetId"`
	PresetName string `json:"presetName"`
	Colors     Styles `json:"colors"`
	AppliedAt  int64  `json:"appliedAt"`
}

// NewCurrentState builds the persistence record for an applied preset.
func NewCurrentState(p Preset, appliedAt time.Time) CurrentState {
	return CurrentState{
		PresetID:   p.ID,
		PresetName: p.Label,
		Colors:     p.Styles.Clone(),
		AppliedAt:  appliedAt.UnixMilli(),
	}
}

// HasBothModes reports whether the state carries maps for light and dark.
// Persisted payloads missing either side are treated as malformed.
func (s CurrentState) HasBothModes() bool {
	return s.Colors.Light != nil && s.Colors.Dark != nil
}
