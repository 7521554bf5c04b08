package convert

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores converters by name.
type Registry struct {
	mu         sync.RWMutex
	converters map[string]Converter
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		converters: make(map[string]Converter),
	}
}

// Register adds a converter by its Name(). Duplicate names return an error.
func (r *Registry) Register(converter Converter) error {
	if converter == nil {
		return fmt.Errorf("convert: converter is required")
	}
	name := converter.Name()
	if name == "" {
		return fmt.Errorf("convert: converter name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.converters[name]; exists {
		return fmt.Errorf("convert: converter %q already registered", name)
	}

	r.converters[name] = converter
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(converter Converter) {
	if err := r.Register(converter); err != nil {
		panic(err)
	}
}

// Get retrieves a converter by name.
func (r *Registry) Get(name string) (Converter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	converter, ok := r.converters[name]
	if !ok {
		return nil, fmt.Errorf("convert: converter %q not found (available: %v)", name, r.listLocked())
	}
	return converter, nil
}

// List returns a sorted list of converter names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.listLocked()
}

func (r *Registry) listLocked() []string {
	names := make([]string, 0, len(r.converters))
	for name := range r.converters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
