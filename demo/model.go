// Package demo is a complete adapter for the cruddals builder: a task model
// described by plain field descriptors, converters from those descriptors to
// GraphQL types, resolvers backed by a SQLite store, and an HTTP server
// serving the generated schema. It doubles as the reference for writing
// adapters over real ORMs.
package demo

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/cruddals/cruddals/gqltypes"
	"github.com/cruddals/cruddals/registry"
)

// FieldKind is the storage-level type of a model field.
type FieldKind string

const (
	KindID     FieldKind = "id"
	KindString FieldKind = "string"
	KindInt    FieldKind = "int"
	KindBool   FieldKind = "bool"
	KindTime   FieldKind = "time"
)

// FieldDescriptor describes one column of a demo model.
type FieldDescriptor struct {
	Name     string // GraphQL field name, camelCase
	Column   string // SQL column name
	Kind     FieldKind
	Nullable bool
}

// TaskModel is the model value handed to the builder. The builder treats it
// as opaque; only the demo accessors and converters look inside.
type TaskModel struct {
	Table  string
	Fields []FieldDescriptor
}

// Tasks describes the demo task table.
var Tasks = &TaskModel{
	Table: "tasks",
	Fields: []FieldDescriptor{
		{Name: "id", Column: "id", Kind: KindID},
		{Name: "title", Column: "title", Kind: KindString},
		{Name: "description", Column: "description", Kind: KindString, Nullable: true},
		{Name: "priority", Column: "priority", Kind: KindInt},
		{Name: "isActive", Column: "is_active", Kind: KindBool},
		{Name: "createdAt", Column: "created_at", Kind: KindTime},
	},
}

// Field returns the descriptor for a GraphQL field name.
func (m *TaskModel) Field(name string) (FieldDescriptor, bool) {
	for _, f := range m.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDescriptor{}, false
}

func descriptorMap(m *TaskModel, keep func(FieldDescriptor) bool) map[string]any {
	out := make(map[string]any, len(m.Fields))
	for _, f := range m.Fields {
		if keep == nil || keep(f) {
			out[f.Name] = f
		}
	}
	return out
}

// OutputFields returns every field of the model.
func OutputFields(model any) map[string]any {
	return descriptorMap(model.(*TaskModel), nil)
}

// InputFields returns the fields accepted by the combined create/update
// input: everything except the generated id and timestamp.
func InputFields(model any) map[string]any {
	return descriptorMap(model.(*TaskModel), func(f FieldDescriptor) bool {
		return f.Kind != KindID && f.Kind != KindTime
	})
}

// CreateInputFields equals InputFields; ids and timestamps are generated by
// the store.
func CreateInputFields(model any) map[string]any {
	return InputFields(model)
}

// UpdateInputFields returns the updatable fields plus the id used to address
// the row.
func UpdateInputFields(model any) map[string]any {
	return descriptorMap(model.(*TaskModel), func(f FieldDescriptor) bool {
		return f.Kind != KindTime
	})
}

// FilterFields returns every field; all of them are filterable by equality.
func FilterFields(model any) map[string]any {
	return descriptorMap(model.(*TaskModel), nil)
}

// OrderByFields returns the sortable fields.
func OrderByFields(model any) map[string]any {
	return descriptorMap(model.(*TaskModel), func(f FieldDescriptor) bool {
		return f.Kind != KindID
	})
}

func scalarFor(f FieldDescriptor) graphql.Type {
	switch f.Kind {
	case KindID:
		return graphql.ID
	case KindInt:
		return graphql.Int
	case KindBool:
		return graphql.Boolean
	case KindTime:
		return graphql.DateTime
	default:
		return graphql.String
	}
}

// ConvertOutputField maps a descriptor to its output scalar. Non-nullable
// fields become NonNull.
func ConvertOutputField(name string, field any, model any, reg *registry.Registry) (graphql.Output, error) {
	f, ok := field.(FieldDescriptor)
	if !ok {
		return nil, fmt.Errorf("demo: field %q is not a FieldDescriptor", name)
	}
	scalar := scalarFor(f)
	if f.Nullable {
		return scalar, nil
	}
	return graphql.NewNonNull(scalar), nil
}

// ConvertInputField maps a descriptor to its input scalar. Inputs are always
// nullable so partial updates stay expressible.
func ConvertInputField(name string, field any, model any, reg *registry.Registry) (graphql.Input, error) {
	f, ok := field.(FieldDescriptor)
	if !ok {
		return nil, fmt.Errorf("demo: field %q is not a FieldDescriptor", name)
	}
	return scalarFor(f), nil
}

// ConvertCreateInputField requires the non-nullable fields on creation.
func ConvertCreateInputField(name string, field any, model any, reg *registry.Registry) (graphql.Input, error) {
	f, ok := field.(FieldDescriptor)
	if !ok {
		return nil, fmt.Errorf("demo: field %q is not a FieldDescriptor", name)
	}
	scalar := scalarFor(f)
	if f.Nullable || f.Kind == KindBool {
		return scalar, nil
	}
	return graphql.NewNonNull(scalar), nil
}

// ConvertUpdateInputField requires only the id; every other field is
// optional.
func ConvertUpdateInputField(name string, field any, model any, reg *registry.Registry) (graphql.Input, error) {
	f, ok := field.(FieldDescriptor)
	if !ok {
		return nil, fmt.Errorf("demo: field %q is not a FieldDescriptor", name)
	}
	scalar := scalarFor(f)
	if f.Kind == KindID {
		return graphql.NewNonNull(scalar), nil
	}
	return scalar, nil
}

// ConvertFilterField maps a descriptor to an equality filter of its scalar.
func ConvertFilterField(name string, field any, model any, reg *registry.Registry) (graphql.Input, error) {
	return ConvertInputField(name, field, model, reg)
}

// ConvertOrderByField maps every sortable descriptor to the shared ASC/DESC
// enum.
func ConvertOrderByField(name string, field any, model any, reg *registry.Registry) (graphql.Input, error) {
	if _, ok := field.(FieldDescriptor); !ok {
		return nil, fmt.Errorf("demo: field %q is not a FieldDescriptor", name)
	}
	return gqltypes.OrderDirection, nil
}
