package mode

import "sync"

// Resolver derives the effective binary mode from the tri-state preference
// and the OS signal, and tracks OS changes only while the preference is
// system. The subscription is torn down the moment the preference leaves
// system, so no stale listener can fire.
type Resolver struct {
	media MediaSource

	mu       sync.Mutex
	mode     Mode
	resolved Resolved
	cancel   func()
	onChange func(Resolved)
}

// NewResolver builds a resolver seeded with the deterministic initial
// resolution for the given preference. The environment is not probed until
// Activate is called.
func NewResolver(media MediaSource, initial Mode) *Resolver {
	return &Resolver{
		media:    media,
		mode:     initial,
		resolved: Initial(initial),
	}
}

// OnChange registers the callback invoked when the resolved mode changes due
// to an OS signal while the preference is system.
func (r *Resolver) OnChange(fn func(Resolved)) {
	r.mu.Lock()
	r.onChange = fn
	r.mu.Unlock()
}

// Resolved returns the current effective mode.
func (r *Resolver) Resolved() Resolved {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolved
}

// Activate performs the first environment-aware evaluation of the stored
// preference and installs the OS subscription when needed.
func (r *Resolver) Activate() Resolved {
	r.mu.Lock()
	m := r.mode
	r.mu.Unlock()
	return r.SetMode(m)
}

// SetMode updates the preference and returns the newly resolved mode. A
// non-system preference resolves deterministically with no environment
// dependency.
func (r *Resolver) SetMode(m Mode) Resolved {
	r.mu.Lock()

	r.mode = m

	if m != System {
		r.teardownLocked()
		r.resolved = Resolved(m)
		resolved := r.resolved
		r.mu.Unlock()
		return resolved
	}

	if r.media.PrefersDark() {
		r.resolved = ResolvedDark
	} else {
		r.resolved = ResolvedLight
	}

	if r.cancel == nil {
		r.cancel = r.media.Subscribe(r.handleSignal)
	}

	resolved := r.resolved
	r.mu.Unlock()
	return resolved
}

func (r *Resolver) handleSignal(dark bool) {
	r.mu.Lock()
	if r.mode != System {
		r.mu.Unlock()
		return
	}

	next := ResolvedLight
	if dark {
		next = ResolvedDark
	}
	if next == r.resolved {
		r.mu.Unlock()
		return
	}

	r.resolved = next
	fn := r.onChange
	r.mu.Unlock()

	if fn != nil {
		fn(next)
	}
}

// Close releases the OS subscription, if any.
func (r *Resolver) Close() {
	r.mu.Lock()
	r.teardownLocked()
	r.mu.Unlock()
}

func (r *Resolver) teardownLocked() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}
