package gqltypes

import (
	"errors"
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/cruddals/cruddals/registry"
)

// ObjectTypeConfig configures the conversion of a model to its GraphQL
// object type.
type ObjectTypeConfig struct {
	Model    any
	ModelKey string // resolved PascalCase name, used as the registry key
	Registry *registry.Registry
	Fields   FieldsFunc
	Convert  OutputConverter

	Only    []string
	Exclude []string
	Extra   graphql.Fields // appended after conversion, later wins on name clash
	Name    string         // overrides the generated "<ModelKey>Type" name
}

// NewModelObjectType converts a model to a *graphql.Object named
// "<ModelKey>Type" and registers it. If the registry already holds an object
// type for the model key, that conversion is returned unchanged.
func NewModelObjectType(cfg ObjectTypeConfig) (*graphql.Object, error) {
	if cfg.Model == nil {
		return nil, errors.New("gqltypes: model is required to build an object type")
	}
	if cfg.ModelKey == "" {
		return nil, errors.New("gqltypes: model key is required to build an object type")
	}
	if cfg.Registry == nil {
		cfg.Registry = registry.Global()
	}
	if existing, ok := cfg.Registry.LookupModel(cfg.ModelKey, registry.ObjectType); ok {
		return existing.(*graphql.Object), nil
	}
	if cfg.Fields == nil {
		return nil, fmt.Errorf("gqltypes: fields func is required to build object type for %q", cfg.ModelKey)
	}
	if cfg.Convert == nil {
		return nil, fmt.Errorf("gqltypes: field converter is required to build object type for %q", cfg.ModelKey)
	}

	name := cfg.Name
	if name == "" {
		name = cfg.ModelKey + "Type"
	}
	sel := fieldSelection{Only: cfg.Only, Exclude: cfg.Exclude}
	if err := sel.validate(name); err != nil {
		return nil, err
	}

	converted, err := convertFields(cfg.Model, cfg.ModelKey, cfg.Fields, cfg.Convert, cfg.Registry, sel, registry.FieldOutput)
	if err != nil {
		return nil, err
	}

	fields := make(graphql.Fields, len(converted)+len(cfg.Extra))
	for fieldName, output := range converted {
		fields[fieldName] = &graphql.Field{Type: output}
	}
	for fieldName, field := range cfg.Extra {
		fields[fieldName] = field
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("gqltypes: model %q has no fields for its object type", cfg.ModelKey)
	}

	objectType := graphql.NewObject(graphql.ObjectConfig{
		Name:   name,
		Fields: fields,
	})
	cfg.Registry.RegisterModel(cfg.ModelKey, registry.ObjectType, objectType)
	return objectType, nil
}

// PaginatedTypeConfig configures the paginated wrapper around an already
// converted object type.
type PaginatedTypeConfig struct {
	ModelKey   string
	Registry   *registry.Registry
	ObjectType *graphql.Object
	Extra      graphql.Fields
	Name       string // overrides the generated "<ModelKey>PaginatedType" name
}

// NewModelPaginatedObjectType builds "<ModelKey>PaginatedType": the page
// bookkeeping fields of PaginationInterface plus objects: [<ModelKey>Type].
func NewModelPaginatedObjectType(cfg PaginatedTypeConfig) (*graphql.Object, error) {
	if cfg.ModelKey == "" {
		return nil, errors.New("gqltypes: model key is required to build a paginated object type")
	}
	if cfg.Registry == nil {
		cfg.Registry = registry.Global()
	}
	if existing, ok := cfg.Registry.LookupModel(cfg.ModelKey, registry.PaginatedObjectType); ok {
		return existing.(*graphql.Object), nil
	}
	if cfg.ObjectType == nil {
		return nil, fmt.Errorf("gqltypes: object type is required to build paginated type for %q", cfg.ModelKey)
	}

	name := cfg.Name
	if name == "" {
		name = cfg.ModelKey + "PaginatedType"
	}

	fields := graphql.Fields{
		"total":      &graphql.Field{Type: graphql.Int},
		"page":       &graphql.Field{Type: graphql.Int},
		"pages":      &graphql.Field{Type: graphql.Int},
		"hasNext":    &graphql.Field{Type: graphql.Boolean},
		"hasPrev":    &graphql.Field{Type: graphql.Boolean},
		"indexStart": &graphql.Field{Type: graphql.Int},
		"indexEnd":   &graphql.Field{Type: graphql.Int},
		"objects":    &graphql.Field{Type: graphql.NewList(cfg.ObjectType)},
	}
	for fieldName, field := range cfg.Extra {
		fields[fieldName] = field
	}

	paginatedType := graphql.NewObject(graphql.ObjectConfig{
		Name:       name,
		Interfaces: []*graphql.Interface{PaginationInterface},
		Fields:     fields,
	})
	cfg.Registry.RegisterModel(cfg.ModelKey, registry.PaginatedObjectType, paginatedType)
	return paginatedType, nil
}
