// Package picker provides an interactive terminal preset browser that drives
// a live provider.
package picker

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/presetly/internal/mode"
	"github.com/alexisbeaulieu97/presetly/internal/preset"
	"github.com/alexisbeaulieu97/presetly/internal/provider"
)

// Model is the preset picker model. It renders the registry contents and
// forwards selections to an attached provider.
type Model struct {
	provider *provider.Provider
	registry *preset.Registry

	presets  []preset.Preset
	filtered []preset.Preset
	cursor   int

	filter    textinput.Model
	filtering bool

	applied  string
	quitting bool

	width  int
	height int
}

// NewModel constructs a picker over the given registry and provider. The
// provider must already be attached.
func NewModel(reg *preset.Registry, prov *provider.Provider) Model {
	filter := textinput.New()
	filter.Placeholder = "type to filter"
	filter.CharLimit = 64

	presets := reg.List()
	m := Model{
		provider: prov,
		registry: reg,
		presets:  presets,
		filtered: presets,
		filter:   filter,
	}

	if current := prov.CurrentPreset(); current != nil {
		for i, p := range presets {
			if p.ID == current.PresetID {
				m.cursor = i
				m.applied = current.PresetID
				break
			}
		}
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Selected returns the preset under the cursor.
func (m Model) Selected() (preset.Preset, bool) {
	if len(m.filtered) == 0 || m.cursor < 0 || m.cursor >= len(m.filtered) {
		return preset.Preset{}, false
	}
	return m.filtered[m.cursor], true
}

// AppliedID returns the identifier of the most recently applied preset.
func (m Model) AppliedID() string {
	return m.applied
}

// Mode reports the provider's configured appearance mode.
func (m Model) Mode() mode.Mode {
	return m.provider.Mode()
}

func (m *Model) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if query == "" {
		m.filtered = m.presets
	} else {
		matched := make([]preset.Preset, 0, len(m.presets))
		for _, p := range m.presets {
			if strings.Contains(strings.ToLower(p.ID), query) || strings.Contains(strings.ToLower(p.Label), query) {
				matched = append(matched, p)
			}
		}
		m.filtered = matched
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
