package web

import (
	"fmt"

	gomponents "maragu.dev/gomponents"
	html "maragu.dev/gomponents/html"

	"github.com/alexisbeaulieu97/presetly/internal/color"
	"github.com/alexisbeaulieu97/presetly/internal/mode"
	"github.com/alexisbeaulieu97/presetly/internal/preset"
)

func (h *Handler) page() gomponents.Node {
	current := h.prov.CurrentPreset()
	currentID := ""
	if current != nil {
		currentID = current.PresetID
	}

	return html.HTML(
		html.Lang("en"),
		html.Class(h.doc.ModeClass()),
		gomponents.Attr("style", h.doc.StyleAttr()),
		html.Head(
			html.Meta(html.Charset("utf-8")),
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.TitleEl(gomponents.Text("Presetly Demo")),
			html.Script(gomponents.Raw(h.script)),
			html.StyleEl(gomponents.Raw(demoCSS)),
		),
		html.Body(
			html.Main(
				html.Class("layout"),
				html.H1(gomponents.Text("Presetly")),
				html.P(html.Class("muted"), gomponents.Text(fmt.Sprintf("mode: %s, resolved: %s", h.prov.Mode(), h.prov.ResolvedMode()))),
				h.modeForm(),
				html.H2(gomponents.Text("Presets")),
				h.presetList(currentID),
				html.Form(
					html.Method("post"),
					html.Action("/clear"),
					html.Button(html.Type("submit"), html.Class("secondary"), gomponents.Text("Clear preset")),
				),
			),
		),
	)
}

func (h *Handler) modeForm() gomponents.Node {
	options := make([]gomponents.Node, 0, 3)
	for _, m := range []mode.Mode{mode.Light, mode.Dark, mode.System} {
		opt := []gomponents.Node{html.Value(string(m)), gomponents.Text(string(m))}
		if m == h.prov.Mode() {
			opt = append(opt, html.Selected())
		}
		options = append(options, html.Option(opt...))
	}

	return html.Div(
		html.Class("mode-controls"),
		html.Form(
			html.Method("post"),
			html.Action("/mode"),
			html.Select(append([]gomponents.Node{html.Name("mode")}, options...)...),
			html.Button(html.Type("submit"), gomponents.Text("Set mode")),
		),
		html.Form(
			html.Method("post"),
			html.Action("/toggle"),
			html.Button(html.Type("submit"), gomponents.Text("Toggle")),
		),
	)
}

func (h *Handler) presetList(currentID string) gomponents.Node {
	items := make([]gomponents.Node, 0, h.registry.Len())
	for _, p := range h.registry.List() {
		className := "preset"
		if p.ID == currentID {
			className += " active"
		}

		items = append(items, html.Li(
			html.Class(className),
			swatch(p),
			html.Form(
				html.Method("post"),
				html.Action("/preset/"+p.ID),
				html.Button(html.Type("submit"), gomponents.Text(p.Label)),
			),
			html.Span(html.Class("muted"), gomponents.Text(p.ID)),
		))
	}

	return html.Ul(append([]gomponents.Node{html.Class("presets")}, items...)...)
}

func swatch(p preset.Preset) gomponents.Node {
	hex, ok := color.Hex(p.Styles.Light["primary"])
	if !ok {
		hex = "#888888"
	}
	return html.Span(
		html.Class("swatch"),
		gomponents.Attr("style", "background-color: "+hex),
	)
}

const demoCSS = `
body { font-family: sans-serif; margin: 2rem; background: hsl(var(--background, 0 0% 100%)); color: hsl(var(--foreground, 222 47% 11%)); }
.layout { max-width: 40rem; margin: 0 auto; }
.muted { color: hsl(var(--muted-foreground, 215 16% 47%)); }
.mode-controls { display: flex; gap: 0.5rem; }
.presets { list-style: none; padding: 0; }
.preset { display: flex; align-items: center; gap: 0.5rem; margin: 0.25rem 0; }
.preset.active button { font-weight: bold; }
.swatch { display: inline-block; width: 1rem; height: 1rem; border-radius: 0.25rem; border: 1px solid hsl(var(--border, 215 16% 87%)); }
button { cursor: pointer; }
`
