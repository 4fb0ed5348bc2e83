// Package provider hosts the stateful orchestrator that keeps mode
// resolution, the preset registry and the property applicator consistent on
// every state change.
package provider

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/presetly/internal/applicator"
	"github.com/alexisbeaulieu97/presetly/internal/document"
	"github.com/alexisbeaulieu97/presetly/internal/logger"
	"github.com/alexisbeaulieu97/presetly/internal/mode"
	"github.com/alexisbeaulieu97/presetly/internal/preset"
	"github.com/alexisbeaulieu97/presetly/internal/storage"
)

const (
	// DefaultModeKey is the storage slot holding the raw mode string.
	DefaultModeKey = "theme-engine-theme"
	// DefaultPresetKey is the storage slot holding the serialized preset state.
	DefaultPresetKey = "theme-preset"
)

// Options configures a Provider. Every field is optional.
type Options struct {
	DefaultMode     mode.Mode
	DefaultPresetID string
	ModeKey         string
	PresetKey       string
	ReducedMotion   bool
	Transition      Transition
	Logger          *logger.Logger
	Now             func() time.Time
}

func (o Options) withDefaults() Options {
	if o.DefaultMode == "" {
		o.DefaultMode = mode.System
	}
	if o.ModeKey == "" {
		o.ModeKey = DefaultModeKey
	}
	if o.PresetKey == "" {
		o.PresetKey = DefaultPresetKey
	}
	if o.Transition == nil {
		o.Transition = NoopTransition{}
	}
	if o.Logger == nil {
		o.Logger = logger.Nop()
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Provider owns the engine state and is the sole writer of the two
// persistence slots and of mode-related document state after Attach.
type Provider struct {
	opts     Options
	doc      document.Document
	store    storage.Store
	registry *preset.Registry
	resolver *mode.Resolver
	log      *logger.Logger

	mu       sync.Mutex
	attached bool
	mode     mode.Mode
	resolved mode.Resolved
	current  *preset.CurrentState
}

// New constructs a Provider in its deterministic pre-attach state: the
// configured default mode, the environment-free initial resolution and no
// current preset. Neither storage nor the media source is consulted, so a
// non-interactive render and the first interactive render agree.
func New(doc document.Document, store storage.Store, registry *preset.Registry, media mode.MediaSource, opts Options) *Provider {
	opts = opts.withDefaults()

	p := &Provider{
		opts:     opts,
		doc:      doc,
		store:    store,
		registry: registry,
		resolver: mode.NewResolver(media, opts.DefaultMode),
		log:      opts.Logger.WithComponent("provider"),
		mode:     opts.DefaultMode,
		resolved: mode.Initial(opts.DefaultMode),
	}
	return p
}

// Mode returns the tri-state preference.
func (p *Provider) Mode() mode.Mode {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode
}

// ResolvedMode returns the effective binary mode.
func (p *Provider) ResolvedMode() mode.Resolved {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.resolved
}

// CurrentPreset returns the applied preset state, or nil when the
// stylesheet's static defaults are in effect.
func (p *Provider) CurrentPreset() *preset.CurrentState {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return nil
	}
	state := *p.current
	state.Colors = state.Colors.Clone()
	return &state
}

// Attach runs the post-initialization reconciliation: rehydrate persisted
// mode and preset, resolve against the environment, subscribe to OS changes
// while the preference is system, and bring the document in line. The result
// must converge with whatever the bootstrap script already produced.
func (p *Provider) Attach() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.attached {
		return
	}

	if raw, ok := p.store.Read(p.opts.ModeKey); ok {
		if parsed, valid := mode.Parse(raw); valid {
			p.mode = parsed
		} else {
			p.log.WithFields(map[string]any{"value": raw}).Debug("ignoring invalid persisted mode")
		}
	}

	p.current = p.rehydratePreset()

	p.resolver.OnChange(p.handleOSChange)
	p.resolved = p.resolver.SetMode(p.mode)

	p.attached = true
	p.syncDocumentLocked()
}

// Close tears down the OS subscription.
func (p *Provider) Close() {
	p.resolver.Close()
}

func (p *Provider) rehydratePreset() *preset.CurrentState {
	raw, ok := p.store.Read(p.opts.PresetKey)
	if ok {
		var state preset.CurrentState
		if err := json.Unmarshal([]byte(raw), &state); err == nil && state.HasBothModes() {
			return &state
		}
		p.log.Debug("discarding malformed persisted preset state")
		_ = p.store.Delete(p.opts.PresetKey)
	}

	return p.defaultPresetState()
}

func (p *Provider) defaultPresetState() *preset.CurrentState {
	if p.opts.DefaultPresetID == "" {
		return nil
	}

	def, found := p.registry.Lookup(p.opts.DefaultPresetID)
	if !found {
		p.log.WithFields(map[string]any{"preset": p.opts.DefaultPresetID}).
			Warn("configured default preset not found in registry")
		return nil
	}

	state := preset.NewCurrentState(def, p.opts.Now())
	return &state
}

// SetMode overwrites the preference, persists it and reconciles the
// document. Storage failures are swallowed.
func (p *Provider) SetMode(m mode.Mode) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ensureAttachedLocked("SetMode")

	p.mode = m
	if err := p.store.Write(p.opts.ModeKey, string(m)); err != nil {
		p.log.Error(err, "persisting mode failed")
	}

	p.resolved = p.resolver.SetMode(m)
	p.syncDocumentLocked()
}

// ToggleMode flips to the inverse of the currently resolved mode. Toggling
// away from system exits to the opposite concrete mode. State and
// persistence commit synchronously; only the visual swap may be deferred by
// the transition, with optional reveal coordinates written as auxiliary
// properties beforehand.
func (p *Provider) ToggleMode(coords *Coords) {
	p.mu.Lock()
	p.ensureAttachedLocked("ToggleMode")

	next := mode.Mode(p.resolved.Invert())
	p.mode = next
	if err := p.store.Write(p.opts.ModeKey, string(next)); err != nil {
		p.log.Error(err, "persisting mode failed")
	}
	p.resolved = p.resolver.SetMode(next)

	if coords != nil {
		p.doc.SetProperty("reveal-x", fmt.Sprintf("%spx", strconv.FormatFloat(coords.X, 'f', -1, 64)))
		p.doc.SetProperty("reveal-y", fmt.Sprintf("%spx", strconv.FormatFloat(coords.Y, 'f', -1, 64)))
	}

	reduced := p.opts.ReducedMotion
	transition := p.opts.Transition
	p.mu.Unlock()

	commit := func() {
		p.mu.Lock()
		p.syncDocumentLocked()
		p.mu.Unlock()
	}

	if reduced {
		commit()
		return
	}
	transition.Run(coords, commit)
}

// ApplyPreset adopts the preset as current state, persists it and applies it
// for the current resolved mode. Persistence failure is logged and does not
// roll back the in-memory state.
func (p *Provider) ApplyPreset(pr preset.Preset) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ensureAttachedLocked("ApplyPreset")

	state := preset.NewCurrentState(pr, p.opts.Now())
	p.current = &state
	p.persistCurrentLocked()
	p.syncDocumentLocked()
}

// SetPresetByID looks the id up in the registry and applies it. Unknown ids
// log a diagnostic and are otherwise a no-op.
func (p *Provider) SetPresetByID(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ensureAttachedLocked("SetPresetByID")

	pr, found := p.registry.Lookup(id)
	if !found {
		p.log.WithFields(map[string]any{"preset": id}).Warn("unknown preset id")
		return
	}

	state := preset.NewCurrentState(pr, p.opts.Now())
	p.current = &state
	p.persistCurrentLocked()
	p.syncDocumentLocked()
}

// ClearPreset removes the persisted preset slot and returns to the
// configured default preset. Without a configured default, all custom
// properties in the fixed set are removed from the document.
func (p *Provider) ClearPreset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ensureAttachedLocked("ClearPreset")

	if err := p.store.Delete(p.opts.PresetKey); err != nil {
		p.log.Error(err, "removing persisted preset failed")
	}

	p.current = p.defaultPresetState()
	if p.current == nil {
		applicator.Clear(p.doc)
		return
	}
	p.syncDocumentLocked()
}

func (p *Provider) handleOSChange(resolved mode.Resolved) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resolved = resolved
	p.syncDocumentLocked()
}

func (p *Provider) syncDocumentLocked() {
	applicator.ApplyMode(p.doc, p.resolved)
	if p.current != nil {
		applicator.Apply(p.doc, p.current.Colors, p.resolved)
	}
}

func (p *Provider) persistCurrentLocked() {
	data, err := json.Marshal(p.current)
	if err != nil {
		p.log.Error(err, "serializing preset state failed")
		return
	}
	if err := p.store.Write(p.opts.PresetKey, string(data)); err != nil {
		p.log.Error(err, "persisting preset state failed")
	}
}

func (p *Provider) ensureAttachedLocked(op string) {
	if !p.attached {
		panic(fmt.Sprintf("presetly: %s called before Provider.Attach; the provider must be mounted first", op))
	}
}
