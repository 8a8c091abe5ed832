package report

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Registry maps report kinds to their creators. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	creators map[Kind]Creator
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{creators: make(map[Kind]Creator)}
}

// NewDefaultRegistry creates a registry holding the built-in kinds.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.creators[Sales] = SalesCreator{}
	r.creators[Inventory] = InventoryCreator{}
	return r
}

var defaultRegistry = NewDefaultRegistry()

// Register adds c under kind in the default registry.
func Register(kind Kind, c Creator) error {
	return defaultRegistry.Register(kind, c)
}

// Lookup returns the creator for kind from the default registry.
func Lookup(kind Kind) (Creator, error) {
	return defaultRegistry.Lookup(kind)
}

// Kinds lists the kinds of the default registry in sorted order.
func Kinds() []Kind {
	return defaultRegistry.Kinds()
}

// Register adds c under kind. Kinds are case-insensitive and must be unique.
func (r *Registry) Register(kind Kind, c Creator) error {
	kind = normalizeKind(kind)
	if kind == "" {
		return errors.New("report kind cannot be empty")
	}
	if c == nil {
		return fmt.Errorf("report kind %q: creator cannot be nil", kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.creators[kind]; exists {
		return fmt.Errorf("report kind %q already registered", kind)
	}
	r.creators[kind] = c
	return nil
}

// Lookup returns the creator registered for kind.
func (r *Registry) Lookup(kind Kind) (Creator, error) {
	kind = normalizeKind(kind)

	r.mu.RLock()
	c, ok := r.creators[kind]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownKind, kind, strings.Join(r.Kinds(), ", "))
	}
	return c, nil
}

// Kinds lists registered kinds in sorted order.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]Kind, 0, len(r.creators))
	for kind := range r.creators {
		kinds = append(kinds, kind)
	}
	slices.Sort(kinds)
	return kinds
}

func normalizeKind(kind Kind) Kind {
	return strings.ToLower(strings.TrimSpace(kind))
}
