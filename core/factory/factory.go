package factory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mitchellh/mapstructure"
)

// ModuleConfig selects one registered implementation by type name and carries
// its raw settings.
type ModuleConfig struct {
	Type string         `json:"type"`
	Conf map[string]any `json:"conf"`
}

// Builder turns a raw settings map into a ready module instance.
type Builder[T any] func(conf map[string]any) (T, error)

// Registry holds the builders for one kind of module, keyed by type name.
// Safe for concurrent use; the zero value is not usable, call NewRegistry.
type Registry[T any] struct {
	mu       sync.RWMutex
	builders map[string]Builder[T]
}

// NewRegistry returns an empty registry.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{builders: make(map[string]Builder[T])}
}

// Register binds a builder to a type name. A nil builder or a name that is
// already taken is an error, so a bad init registration surfaces at startup.
func (r *Registry[T]) Register(name string, b Builder[T]) error {
	if b == nil {
		return fmt.Errorf("nil builder for module type %q", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, taken := r.builders[name]; taken {
		return fmt.Errorf("module type %q already registered", name)
	}
	r.builders[name] = b
	return nil
}

// Build instantiates the module the config names.
func (r *Registry[T]) Build(cfg ModuleConfig) (T, error) {
	r.mu.RLock()
	b, ok := r.builders[cfg.Type]
	r.mu.RUnlock()
	if !ok {
		var zero T
		return zero, fmt.Errorf("unknown module type %q (registered: %v)", cfg.Type, r.Types())
	}
	return b(cfg.Conf)
}

// Types lists the registered type names in sorted order.
func (r *Registry[T]) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Decode maps a raw settings map onto a typed config struct via its json
// tags, so module settings use the same tags as the config file they came
// from.
func Decode(conf map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(conf)
}
