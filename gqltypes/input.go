package gqltypes

import (
	"errors"
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/cruddals/cruddals/registry"
)

// MutationKind selects which mutation shape an input object type serves.
type MutationKind string

const (
	MutationCreateUpdate MutationKind = "create_update"
	MutationCreate       MutationKind = "create"
	MutationUpdate       MutationKind = "update"
)

// InputTypeConfig configures the conversion of a model to one of its input
// object types.
type InputTypeConfig struct {
	Model    any
	ModelKey string
	Registry *registry.Registry
	Fields   FieldsFunc
	Convert  InputConverter
	Kind     MutationKind // defaults to MutationCreateUpdate

	Only    []string
	Exclude []string
	Extra   graphql.InputObjectConfigFieldMap
	Name    string // overrides the generated name
}

// NewModelInputObjectType converts a model to the input object type for the
// configured mutation kind: "<ModelKey>Input", "Create<ModelKey>Input" or
// "Update<ModelKey>Input". Idempotent per registry and kind.
func NewModelInputObjectType(cfg InputTypeConfig) (*graphql.InputObject, error) {
	if cfg.Kind == "" {
		cfg.Kind = MutationCreateUpdate
	}

	var (
		modelKind registry.ModelKind
		fieldKind registry.FieldKind
		name      string
	)
	switch cfg.Kind {
	case MutationCreateUpdate:
		modelKind = registry.InputObjectType
		fieldKind = registry.FieldInputForCreateUpdate
		name = cfg.ModelKey + "Input"
	case MutationCreate:
		modelKind = registry.CreateInputObjectType
		fieldKind = registry.FieldInputForCreate
		name = "Create" + cfg.ModelKey + "Input"
	case MutationUpdate:
		modelKind = registry.UpdateInputObjectType
		fieldKind = registry.FieldInputForUpdate
		name = "Update" + cfg.ModelKey + "Input"
	default:
		return nil, fmt.Errorf("gqltypes: unknown mutation kind %q", cfg.Kind)
	}
	if cfg.Name != "" {
		name = cfg.Name
	}

	converted, err := buildInputFields(inputBuild{
		Model: cfg.Model, ModelKey: cfg.ModelKey, Registry: cfg.Registry,
		Fields: cfg.Fields, Convert: cfg.Convert,
		Only: cfg.Only, Exclude: cfg.Exclude,
		TypeName: name, ModelKind: modelKind, FieldKind: fieldKind,
	})
	if err != nil {
		return nil, err
	}
	if converted == nil {
		existing, _ := registryFor(cfg.Registry).LookupModel(cfg.ModelKey, modelKind)
		return existing.(*graphql.InputObject), nil
	}

	fields := make(graphql.InputObjectConfigFieldMap, len(converted)+len(cfg.Extra))
	for fieldName, input := range converted {
		fields[fieldName] = &graphql.InputObjectFieldConfig{Type: input}
	}
	for fieldName, field := range cfg.Extra {
		fields[fieldName] = field
	}

	inputType := graphql.NewInputObject(graphql.InputObjectConfig{
		Name:   name,
		Fields: fields,
	})
	registryFor(cfg.Registry).RegisterModel(cfg.ModelKey, modelKind, inputType)
	return inputType, nil
}

// NewModelFilterInputObjectType converts a model to "Filter<ModelKey>Input":
// the converted filter fields plus the self-referential combinators
// AND: [self], OR: [self] and NOT: self. The self-reference is resolved
// through a lazy field thunk.
func NewModelFilterInputObjectType(cfg InputTypeConfig) (*graphql.InputObject, error) {
	name := cfg.Name
	if name == "" {
		name = "Filter" + cfg.ModelKey + "Input"
	}

	converted, err := buildInputFields(inputBuild{
		Model: cfg.Model, ModelKey: cfg.ModelKey, Registry: cfg.Registry,
		Fields: cfg.Fields, Convert: cfg.Convert,
		Only: cfg.Only, Exclude: cfg.Exclude,
		TypeName: name, ModelKind: registry.FilterInputObjectType, FieldKind: registry.FieldInputForSearch,
	})
	if err != nil {
		return nil, err
	}
	if converted == nil {
		existing, _ := registryFor(cfg.Registry).LookupModel(cfg.ModelKey, registry.FilterInputObjectType)
		return existing.(*graphql.InputObject), nil
	}

	var filterType *graphql.InputObject
	filterType = graphql.NewInputObject(graphql.InputObjectConfig{
		Name: name,
		Fields: graphql.InputObjectConfigFieldMapThunk(func() graphql.InputObjectConfigFieldMap {
			fields := make(graphql.InputObjectConfigFieldMap, len(converted)+len(cfg.Extra)+3)
			for fieldName, input := range converted {
				fields[fieldName] = &graphql.InputObjectFieldConfig{Type: input}
			}
			for fieldName, field := range cfg.Extra {
				fields[fieldName] = field
			}
			fields["AND"] = &graphql.InputObjectFieldConfig{Type: graphql.NewList(filterType)}
			fields["OR"] = &graphql.InputObjectFieldConfig{Type: graphql.NewList(filterType)}
			fields["NOT"] = &graphql.InputObjectFieldConfig{Type: filterType}
			return fields
		}),
	})
	registryFor(cfg.Registry).RegisterModel(cfg.ModelKey, registry.FilterInputObjectType, filterType)
	return filterType, nil
}

// NewModelOrderByInputObjectType converts a model to
// "OrderBy<ModelKey>Input".
func NewModelOrderByInputObjectType(cfg InputTypeConfig) (*graphql.InputObject, error) {
	name := cfg.Name
	if name == "" {
		name = "OrderBy" + cfg.ModelKey + "Input"
	}

	converted, err := buildInputFields(inputBuild{
		Model: cfg.Model, ModelKey: cfg.ModelKey, Registry: cfg.Registry,
		Fields: cfg.Fields, Convert: cfg.Convert,
		Only: cfg.Only, Exclude: cfg.Exclude,
		TypeName: name, ModelKind: registry.OrderByInputObjectType, FieldKind: registry.FieldInputForOrderBy,
	})
	if err != nil {
		return nil, err
	}
	if converted == nil {
		existing, _ := registryFor(cfg.Registry).LookupModel(cfg.ModelKey, registry.OrderByInputObjectType)
		return existing.(*graphql.InputObject), nil
	}

	fields := make(graphql.InputObjectConfigFieldMap, len(converted)+len(cfg.Extra))
	for fieldName, input := range converted {
		fields[fieldName] = &graphql.InputObjectFieldConfig{Type: input}
	}
	for fieldName, field := range cfg.Extra {
		fields[fieldName] = field
	}

	orderByType := graphql.NewInputObject(graphql.InputObjectConfig{
		Name:   name,
		Fields: fields,
	})
	registryFor(cfg.Registry).RegisterModel(cfg.ModelKey, registry.OrderByInputObjectType, orderByType)
	return orderByType, nil
}

// inputBuild carries the shared validation and conversion arguments of the
// input type constructors.
type inputBuild struct {
	Model     any
	ModelKey  string
	Registry  *registry.Registry
	Fields    FieldsFunc
	Convert   InputConverter
	Only      []string
	Exclude   []string
	TypeName  string
	ModelKind registry.ModelKind
	FieldKind registry.FieldKind
}

// buildInputFields validates and converts. A (nil, nil) return means the
// registry already holds the conversion and the caller should return it.
func buildInputFields(b inputBuild) (map[string]graphql.Input, error) {
	if b.ModelKey == "" {
		return nil, fmt.Errorf("gqltypes: model key is required to build %s", b.ModelKind)
	}
	if b.Model == nil {
		return nil, fmt.Errorf("gqltypes: model is required to build %s for %q", b.ModelKind, b.ModelKey)
	}
	reg := registryFor(b.Registry)
	if _, ok := reg.LookupModel(b.ModelKey, b.ModelKind); ok {
		return nil, nil
	}
	if b.Fields == nil {
		return nil, fmt.Errorf("gqltypes: fields func is required to build %s for %q", b.ModelKind, b.ModelKey)
	}
	if b.Convert == nil {
		return nil, fmt.Errorf("gqltypes: field converter is required to build %s for %q", b.ModelKind, b.ModelKey)
	}
	sel := fieldSelection{Only: b.Only, Exclude: b.Exclude}
	if err := sel.validate(b.TypeName); err != nil {
		return nil, err
	}
	converted, err := convertFields(b.Model, b.ModelKey, b.Fields, b.Convert, reg, sel, b.FieldKind)
	if err != nil {
		return nil, err
	}
	if len(converted) == 0 {
		return nil, errors.New("gqltypes: model " + b.ModelKey + " has no fields for " + string(b.ModelKind))
	}
	return converted, nil
}

func registryFor(reg *registry.Registry) *registry.Registry {
	if reg == nil {
		return registry.Global()
	}
	return reg
}
