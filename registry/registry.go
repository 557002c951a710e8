// Package registry tracks the GraphQL conversions produced for each model
// so that a model is converted to a given type shape exactly once and the
// operation field constructors can find the shapes they depend on.
//
// A Registry is keyed by model key (the resolved PascalCase name including
// prefix and suffix) rather than by model value: the library treats models
// as opaque values supplied by the caller, and arbitrary Go values have no
// reliable hashable identity.
package registry

import (
	"fmt"
	"sync"
)

// ModelKind identifies which converted shape of a model is being registered.
type ModelKind string

const (
	ObjectType             ModelKind = "object_type"
	PaginatedObjectType    ModelKind = "paginated_object_type"
	InputObjectType        ModelKind = "input_object_type"
	CreateInputObjectType  ModelKind = "input_object_type_for_create"
	UpdateInputObjectType  ModelKind = "input_object_type_for_update"
	FilterInputObjectType  ModelKind = "input_object_type_for_search"
	OrderByInputObjectType ModelKind = "input_object_type_for_order_by"
	Cruddals               ModelKind = "cruddals"
)

// FieldKind identifies which converted shape of a single model field is
// being registered.
type FieldKind string

const (
	FieldOutput               FieldKind = "output"
	FieldInputForCreateUpdate FieldKind = "input_for_create_update"
	FieldInputForCreate       FieldKind = "input_for_create"
	FieldInputForUpdate       FieldKind = "input_for_update"
	FieldInputForSearch       FieldKind = "input_for_search"
	FieldInputForOrderBy      FieldKind = "input_for_order_by"
)

// Registry stores converted model and field types. The zero value is not
// usable; call New.
type Registry struct {
	mu     sync.RWMutex
	models map[string]map[ModelKind]any
	fields map[string]map[FieldKind]any
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		models: make(map[string]map[ModelKind]any),
		fields: make(map[string]map[FieldKind]any),
	}
}

// RegisterModel records a conversion for the model key under the given kind,
// replacing any previous registration.
func (r *Registry) RegisterModel(modelKey string, kind ModelKind, converted any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds, ok := r.models[modelKey]
	if !ok {
		kinds = make(map[ModelKind]any)
		r.models[modelKey] = kinds
	}
	kinds[kind] = converted
}

// LookupModel returns the conversion registered for the model key under the
// given kind, if any.
func (r *Registry) LookupModel(modelKey string, kind ModelKind) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	converted, ok := r.models[modelKey][kind]
	return converted, ok
}

// ConvertedModel is like LookupModel but returns an error naming the missing
// conversion. Operation field constructors use it to report their
// prerequisites.
func (r *Registry) ConvertedModel(modelKey string, kind ModelKind) (any, error) {
	converted, ok := r.LookupModel(modelKey, kind)
	if !ok {
		return nil, fmt.Errorf("model %q has no %s registered", modelKey, kind)
	}
	return converted, nil
}

// ModelKinds returns a snapshot of every conversion registered for the model
// key.
func (r *Registry) ModelKinds(modelKey string) map[ModelKind]any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[ModelKind]any, len(r.models[modelKey]))
	for kind, converted := range r.models[modelKey] {
		out[kind] = converted
	}
	return out
}

// ModelKeys returns every model key with at least one registration.
func (r *Registry) ModelKeys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.models))
	for key := range r.models {
		keys = append(keys, key)
	}
	return keys
}

// RegisterField records a per-field conversion. fieldKey is expected to be
// "<modelKey>.<fieldName>".
func (r *Registry) RegisterField(fieldKey string, kind FieldKind, converted any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds, ok := r.fields[fieldKey]
	if !ok {
		kinds = make(map[FieldKind]any)
		r.fields[fieldKey] = kinds
	}
	kinds[kind] = converted
}

// LookupField returns the conversion registered for the field key under the
// given kind, if any.
func (r *Registry) LookupField(fieldKey string, kind FieldKind) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	converted, ok := r.fields[fieldKey][kind]
	return converted, ok
}

// FieldKey builds the registry key for a model field.
func FieldKey(modelKey, fieldName string) string {
	return modelKey + "." + fieldName
}

var (
	globalMu sync.Mutex
	global   *Registry
	named    = make(map[string]*Registry)
)

// Global returns the process-wide default registry, creating it on first use.
func Global() *Registry {
	globalMu.Lock()
	defer globalMu.Unlock()
	if global == nil {
		global = New()
	}
	return global
}

// Named returns the registry with the given name, creating it on first use.
// An empty name returns the default registry.
func Named(name string) *Registry {
	if name == "" {
		return Global()
	}
	globalMu.Lock()
	defer globalMu.Unlock()
	reg, ok := named[name]
	if !ok {
		reg = New()
		named[name] = reg
	}
	return reg
}

// Reset discards the default registry and all named registries. Intended for
// tests.
func Reset() {
	globalMu.Lock()
	defer globalMu.Unlock()
	global = nil
	named = make(map[string]*Registry)
}
