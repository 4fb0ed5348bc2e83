package mode

import (
	"os"
	"strings"
	"sync"
)

// MediaSource exposes the OS color-scheme signal and change notifications,
// the engine's stand-in for a prefers-color-scheme media query.
type MediaSource interface {
	// PrefersDark reports the OS signal at the time of the call.
	PrefersDark() bool
	// Subscribe registers a change callback and returns its cancel function.
	Subscribe(fn func(dark bool)) (cancel func())
}

// StaticSource is a MediaSource with a fixed signal and no change events.
type StaticSource struct {
	Dark bool
}

func (s StaticSource) PrefersDark() bool { return s.Dark }

func (s StaticSource) Subscribe(func(dark bool)) func() { return func() {} }

// SignalSource is a settable MediaSource. The web surface feeds it from
// client-reported media queries; tests drive it directly.
type SignalSource struct {
	mu          sync.Mutex
	dark        bool
	subscribers map[int]func(dark bool)
	nextID      int
}

// NewSignalSource creates a SignalSource with the given initial signal.
func NewSignalSource(dark bool) *SignalSource {
	return &SignalSource{dark: dark, subscribers: make(map[int]func(dark bool))}
}

func (s *SignalSource) PrefersDark() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dark
}

func (s *SignalSource) Subscribe(fn func(dark bool)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// SetDark updates the signal and notifies subscribers on change.
func (s *SignalSource) SetDark(dark bool) {
	s.mu.Lock()
	if s.dark == dark {
		s.mu.Unlock()
		return
	}
	s.dark = dark
	fns := make([]func(bool), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(dark)
	}
}

// SubscriberCount returns the number of live subscriptions.
func (s *SignalSource) SubscriberCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subscribers)
}

// EnvSource reads the signal once per call from the PRESETLY_COLOR_SCHEME
// environment variable ("dark" enables it). Used by the CLI, where no live
// media query exists.
type EnvSource struct{}

func (EnvSource) PrefersDark() bool {
	return strings.EqualFold(strings.TrimSpace(os.Getenv("PRESETLY_COLOR_SCHEME")), "dark")
}

func (EnvSource) Subscribe(func(dark bool)) func() { return func() {} }
