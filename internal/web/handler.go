// Package web serves a small demo application that renders the engine's
// document state server side and ships the bootstrap script to the browser.
package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alexisbeaulieu97/presetly/internal/bootstrap"
	"github.com/alexisbeaulieu97/presetly/internal/document"
	"github.com/alexisbeaulieu97/presetly/internal/logger"
	"github.com/alexisbeaulieu97/presetly/internal/mode"
	"github.com/alexisbeaulieu97/presetly/internal/preset"
	"github.com/alexisbeaulieu97/presetly/internal/provider"
)

// Handler owns the demo routes. The provider must be attached before the
// handler serves traffic.
type Handler struct {
	prov     *provider.Provider
	registry *preset.Registry
	doc      *document.Memory
	script   string
	log      *logger.Logger
}

// NewHandler builds the demo handler, pre-rendering the bootstrap script from
// the provider's configuration so browser and server agree on keys.
func NewHandler(prov *provider.Provider, registry *preset.Registry, doc *document.Memory, scriptOpts bootstrap.Options, log *logger.Logger) (*Handler, error) {
	script, err := bootstrap.Script(scriptOpts)
	if err != nil {
		return nil, err
	}

	if log == nil {
		log = logger.Nop()
	}

	return &Handler{
		prov:     prov,
		registry: registry,
		doc:      doc,
		script:   script,
		log:      log.WithComponent("web"),
	}, nil
}

// MountRoutes attaches the demo routes to the router.
func MountRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.Home)
	r.Get("/bootstrap.js", h.BootstrapScript)
	r.Get("/state", h.State)
	r.Post("/mode", h.SetMode)
	r.Post("/toggle", h.Toggle)
	r.Post("/preset/{presetID}", h.ApplyPreset)
	r.Post("/clear", h.Clear)
}

// Router returns a ready-to-serve router for the demo.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	MountRoutes(r, h)
	return r
}

// Home renders the demo page.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.page().Render(w); err != nil {
		h.log.Error(err, "failed to render page")
	}
}

// BootstrapScript serves the pre-hydration script as a standalone asset.
func (h *Handler) BootstrapScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(h.script))
}

type stateResponse struct {
	Mode         string               `json:"mode"`
	ResolvedMode string               `json:"resolvedMode"`
	Preset       *preset.CurrentState `json:"preset,omitempty"`
}

// State reports the provider's view of the world as JSON.
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	resp := stateResponse{
		Mode:         string(h.prov.Mode()),
		ResolvedMode: string(h.prov.ResolvedMode()),
		Preset:       h.prov.CurrentPreset(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.log.Error(err, "failed to encode state")
	}
}

// SetMode switches the appearance mode from a form submission.
func (h *Handler) SetMode(w http.ResponseWriter, r *http.Request) {
	m, ok := mode.Parse(r.FormValue("mode"))
	if !ok {
		http.Error(w, "mode must be one of light, dark, system", http.StatusBadRequest)
		return
	}

	h.prov.SetMode(m)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Toggle flips between light and dark.
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	h.prov.ToggleMode(nil)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ApplyPreset activates the preset named in the URL. Unknown identifiers are
// a no-op at the provider level, so the demo reports them explicitly.
func (h *Handler) ApplyPreset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "presetID")
	if _, ok := h.registry.Lookup(id); !ok {
		http.Error(w, "unknown preset "+id, http.StatusNotFound)
		return
	}

	h.prov.SetPresetByID(id)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Clear removes the active preset.
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	h.prov.ClearPreset()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
