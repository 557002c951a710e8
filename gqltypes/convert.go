// Package gqltypes converts caller-described models into the GraphQL type
// shapes the CRUDDALS operations are built from: an object type, a paginated
// object type, and the input object types for create, update, filter and
// order-by. The package owns no conversion logic of its own; every field is
// converted by a caller-supplied function, and the results are memoized in a
// registry so each model is converted to each shape exactly once.
package gqltypes

import (
	"fmt"
	"slices"

	"github.com/graphql-go/graphql"

	"github.com/cruddals/cruddals/registry"
)

// FieldsFunc returns the fields of a model as a name-to-descriptor map.
// The descriptor values are opaque to this package; they are handed back to
// the field converter untouched.
type FieldsFunc func(model any) map[string]any

// OutputConverter converts a single model field to a GraphQL output type.
type OutputConverter func(name string, field any, model any, reg *registry.Registry) (graphql.Output, error)

// InputConverter converts a single model field to a GraphQL input type.
type InputConverter func(name string, field any, model any, reg *registry.Registry) (graphql.Input, error)

// fieldSelection applies the Only/Exclude rules shared by every converter.
type fieldSelection struct {
	Only    []string
	Exclude []string
}

func (s fieldSelection) validate(typeName string) error {
	if len(s.Only) > 0 && len(s.Exclude) > 0 {
		return fmt.Errorf("cannot set both Only and Exclude options on type %s", typeName)
	}
	return nil
}

func (s fieldSelection) keeps(name string) bool {
	if len(s.Only) > 0 && !slices.Contains(s.Only, name) {
		return false
	}
	return !slices.Contains(s.Exclude, name)
}

// convertFields runs the converter over the selected model fields and
// records each conversion in the registry under the given field kind.
func convertFields[T graphql.Type](
	model any,
	modelKey string,
	fieldsFn FieldsFunc,
	convert func(name string, field any, model any, reg *registry.Registry) (T, error),
	reg *registry.Registry,
	sel fieldSelection,
	kind registry.FieldKind,
) (map[string]T, error) {
	fields := fieldsFn(model)
	out := make(map[string]T, len(fields))
	for name, field := range fields {
		if !sel.keeps(name) {
			continue
		}
		converted, err := convert(name, field, model, reg)
		if err != nil {
			return nil, fmt.Errorf("converting field %q of model %q: %w", name, modelKey, err)
		}
		out[name] = converted
		reg.RegisterField(registry.FieldKey(modelKey, name), kind, converted)
	}
	return out, nil
}
