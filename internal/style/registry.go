package style

import (
	"errors"
	"fmt"
	"sync"
)

// ErrUnknownStyle is returned when a style id has not been registered.
var ErrUnknownStyle = errors.New("unknown style")

// Info identifies a style to consumers.
type Info struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Style is a registered table with its identity.
type Style struct {
	Info
	Table *Table
}

// Registry is an ordered set of styles. Registration order is display
// order.
type Registry struct {
	mu     sync.RWMutex
	styles []Style
	index  map[string]int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register appends a style.
// Panics if id is empty, t is nil, or id is already registered.
func (r *Registry) Register(id, name string, t *Table) {
	if id == "" {
		panic("style: register with empty id")
	}
	if t == nil {
		panic(fmt.Sprintf("style: register %s with nil table", id))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[id]; exists {
		panic(fmt.Sprintf("style already registered: %s", id))
	}
	if name == "" {
		name = id
	}

	r.index[id] = len(r.styles)
	r.styles = append(r.styles, Style{Info: Info{ID: id, Name: name}, Table: t})
}

// Lookup returns a style by id.
func (r *Registry) Lookup(id string) (Style, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]
	if !ok {
		return Style{}, false
	}
	return r.styles[i], true
}

// List returns every style's identity in registration order.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]Info, len(r.styles))
	for i, s := range r.styles {
		infos[i] = s.Info
	}
	return infos
}

// Styles returns every style in registration order.
func (r *Registry) Styles() []Style {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Style, len(r.styles))
	copy(out, r.styles)
	return out
}

// Len returns the number of registered styles.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.styles)
}

// Apply maps text through the style registered as id. The only error is
// ErrUnknownStyle; a known style always produces output.
func (r *Registry) Apply(id, text string) (string, error) {
	s, ok := r.Lookup(id)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownStyle, id)
	}
	return s.Table.Apply(text), nil
}

// Default is the process-wide registry populated by the fonts package.
var Default = NewRegistry()

// Register adds a style to the default registry.
func Register(id, name string, t *Table) {
	Default.Register(id, name, t)
}

// Lookup finds a style in the default registry.
func Lookup(id string) (Style, bool) {
	return Default.Lookup(id)
}

// List returns the default registry in display order.
func List() []Info {
	return Default.List()
}

// Apply maps text through a style of the default registry.
func Apply(id, text string) (string, error) {
	return Default.Apply(id, text)
}

// Count returns the number of styles in the default registry.
func Count() int {
	return Default.Len()
}
