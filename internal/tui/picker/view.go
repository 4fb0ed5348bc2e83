package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/presetly/internal/color"
	"github.com/alexisbeaulieu97/presetly/internal/preset"
)

// View renders the picker.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	sections = append(sections, titleStyle.Render("Presetly"))
	sections = append(sections, statusStyle.Render(fmt.Sprintf("mode: %s (%s)", m.provider.Mode(), m.provider.ResolvedMode())))

	if m.filtering || m.filter.Value() != "" {
		sections = append(sections, m.filter.View())
	}

	if len(m.filtered) == 0 {
		sections = append(sections, dimStyle.Render("no presets match"))
	} else {
		sections = append(sections, m.renderList())
	}

	sections = append(sections, helpStyle.Render("↑/↓ move • enter apply • m toggle mode • c clear • / filter • q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderList() string {
	lines := make([]string, 0, len(m.filtered))
	for i, p := range m.filtered {
		marker := "  "
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
		}

		label := labelStyle.Render(p.Label)
		if p.ID == m.applied {
			label = appliedStyle.Render(p.Label + " ●")
		}

		line := marker + swatches(p) + " " + label + " " + dimStyle.Render(p.ID)
		if p.Category != "" {
			line += " " + categoryStyle.Render(p.Category)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// swatches renders small blocks for the preset's light primary, background
// and dark primary so presets can be told apart at a glance.
func swatches(p preset.Preset) string {
	var out strings.Builder
	for _, value := range []string{
		p.Styles.Light["primary"],
		p.Styles.Light["background"],
		p.Styles.Dark["primary"],
	} {
		if hex, ok := color.Hex(value); ok {
			out.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("■"))
		} else {
			out.WriteString(dimStyle.Render("·"))
		}
	}
	return out.String()
}
