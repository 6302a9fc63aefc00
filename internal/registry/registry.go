package registry

import (
	"sort"
	"sync"
)

// Registry tracks which widget tags are defined and how to construct them.
// It replaces ambient global registration: identity is injectable, so tests
// can exercise the contract against a fresh instance while the process-wide
// default serves normal wiring.
type Registry struct {
	mu      sync.RWMutex
	defined map[string]Constructor
	order   []string
	loaded  map[string]bool
}

// NewRegistry creates an empty registry. Tags listed in predefined are
// treated as already claimed by the embedding host: registering them later
// is a silent no-op and they never join the newly-loaded set.
func NewRegistry(predefined ...string) *Registry {
	r := &Registry{
		defined: make(map[string]Constructor),
		loaded:  make(map[string]bool),
	}
	for _, tag := range predefined {
		if _, ok := r.defined[tag]; ok {
			continue
		}
		r.defined[tag] = nil
		r.order = append(r.order, tag)
	}
	return r
}

// Register defines a tag. It is idempotent: a tag that is already defined
// (by this registry or the embedding host) is left untouched and the call
// reports false. A successful first registration reports true and adds the
// tag to the newly-loaded set exactly once.
func (r *Registry) Register(tag string, ctor Constructor) bool {
	if tag == "" || ctor == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.defined[tag]; ok {
		return false
	}
	r.defined[tag] = ctor
	r.order = append(r.order, tag)
	r.loaded[tag] = true
	return true
}

// Lookup returns the constructor for a tag.
func (r *Registry) Lookup(tag string) (Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ctor, ok := r.defined[tag]
	if !ok || ctor == nil {
		return nil, false
	}
	return ctor, true
}

// Defined reports whether a tag is claimed, whether by registration or by
// the embedding host.
func (r *Registry) Defined(tag string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.defined[tag]
	return ok
}

// All returns every tag ever defined through or seeded into this registry,
// in definition order.
func (r *Registry) All() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// NewlyLoaded returns the tags whose registration this registry performed
// itself, sorted for stable output.
func (r *Registry) NewlyLoaded() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, 0, len(r.loaded))
	for tag := range r.loaded {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry concrete widgets register into.
func Default() *Registry {
	return defaultRegistry
}

// Register defines a tag in the default registry.
func Register(tag string, ctor Constructor) bool {
	return defaultRegistry.Register(tag, ctor)
}

// Lookup resolves a tag in the default registry.
func Lookup(tag string) (Constructor, bool) {
	return defaultRegistry.Lookup(tag)
}

// All lists every tag defined in the default registry.
func All() []string {
	return defaultRegistry.All()
}
