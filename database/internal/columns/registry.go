package columns

import (
	"reflect"
	"sync"
)

// Registry caches struct column metadata per type. Structs are parsed on first
// use and the result is reused for the lifetime of the registry.
type Registry struct {
	cache sync.Map // map[reflect.Type]*Metadata
}

var globalRegistry = &Registry{}

// Lookup returns the column metadata for the struct pointed to by structPtr
// using the process-wide registry.
func Lookup(structPtr any) (*Metadata, error) {
	return globalRegistry.Get(structPtr)
}

// Get returns cached metadata for the type of structPtr, parsing it on first use.
func (r *Registry) Get(structPtr any) (*Metadata, error) {
	t := reflect.TypeOf(structPtr)
	if t != nil && t.Kind() == reflect.Ptr {
		if cached, ok := r.cache.Load(t.Elem()); ok {
			return cached.(*Metadata), nil
		}
	}

	metadata, err := parseStruct(structPtr)
	if err != nil {
		return nil, err
	}

	// LoadOrStore keeps a single instance when goroutines race on first use.
	actual, _ := r.cache.LoadOrStore(t.Elem(), metadata)
	return actual.(*Metadata), nil
}

// Clear drops every cached entry.
func (r *Registry) Clear() {
	r.cache.Clear()
}
