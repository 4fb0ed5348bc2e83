package document

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Memory is an in-memory Document. It backs tests and the web surface, where
// the accumulated state is serialized into root element attributes.
type Memory struct {
	mu          sync.RWMutex
	properties  map[string]string
	modeClass   string
	colorScheme string
}

// NewMemory creates an empty in-memory document.
func NewMemory() *Memory {
	return &Memory{properties: make(map[string]string)}
}

func (d *Memory) SetProperty(name, value string) {
	d.mu.Lock()
	d.properties[name] = value
	d.mu.Unlock()
}

func (d *Memory) RemoveProperty(name string) {
	d.mu.Lock()
	delete(d.properties, name)
	d.mu.Unlock()
}

func (d *Memory) Property(name string) (string, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	v, ok := d.properties[name]
	return v, ok
}

func (d *Memory) Properties() map[string]string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make(map[string]string, len(d.properties))
	for k, v := range d.properties {
		out[k] = v
	}
	return out
}

func (d *Memory) SetModeClass(class string) {
	d.mu.Lock()
	d.modeClass = class
	d.mu.Unlock()
}

func (d *Memory) ModeClass() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.modeClass
}

func (d *Memory) SetColorScheme(scheme string) {
	d.mu.Lock()
	d.colorScheme = scheme
	d.mu.Unlock()
}

func (d *Memory) ColorScheme() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.colorScheme
}

// StyleAttr serializes the document state into an inline style attribute
// value with stable ordering, suitable for a server-rendered root element.
func (d *Memory) StyleAttr() string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var parts []string
	if d.colorScheme != "" {
		parts = append(parts, fmt.Sprintf("color-scheme: %s", d.colorScheme))
	}

	names := make([]string, 0, len(d.properties))
	for name := range d.properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		parts = append(parts, fmt.Sprintf("--%s: %s", name, d.properties[name]))
	}

	return strings.Join(parts, "; ")
}

var _ Document = (*Memory)(nil)
