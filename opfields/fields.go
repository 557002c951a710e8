package opfields

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/cruddals/cruddals/gqltypes"
	"github.com/cruddals/cruddals/registry"
)

// FieldConfig carries the arguments shared by every operation field
// constructor. ModelKey is the registry key of the converted model;
// SingularName and PluralName are the resolved PascalCase spellings used
// for generated names.
type FieldConfig struct {
	ModelKey     string
	SingularName string
	PluralName   string
	Registry     *registry.Registry
	Resolve      graphql.FieldResolveFn

	// ExtraArgs merges additional arguments into the generated set;
	// on a name clash the extra argument wins.
	ExtraArgs graphql.FieldConfigArgument
}

func (cfg *FieldConfig) validate(operation string) error {
	if cfg.ModelKey == "" {
		return fmt.Errorf("opfields: model key is required for the %s field", operation)
	}
	if cfg.Resolve == nil {
		return fmt.Errorf("opfields: resolver is required for the %s field of %q", operation, cfg.ModelKey)
	}
	if cfg.Registry == nil {
		cfg.Registry = registry.Global()
	}
	return nil
}

// NewCreateField builds createXs(input: [CreateXInput!]!): CreateXsPayload.
// The model must have a create input object type and an object type
// registered.
func NewCreateField(cfg FieldConfig) (*graphql.Field, error) {
	return newCreateUpdateField(cfg, "Create", registry.CreateInputObjectType)
}

// NewUpdateField builds updateXs(input: [UpdateXInput!]!): UpdateXsPayload.
// The model must have an update input object type and an object type
// registered.
func NewUpdateField(cfg FieldConfig) (*graphql.Field, error) {
	return newCreateUpdateField(cfg, "Update", registry.UpdateInputObjectType)
}

func newCreateUpdateField(cfg FieldConfig, operation string, inputKind registry.ModelKind) (*graphql.Field, error) {
	if err := cfg.validate(operation); err != nil {
		return nil, err
	}
	converted, err := cfg.Registry.ConvertedModel(cfg.ModelKey, inputKind)
	if err != nil {
		return nil, fmt.Errorf("opfields: %s operation: %w", operation, err)
	}
	inputType := converted.(*graphql.InputObject)

	payload, err := payloadObjectType(cfg, Names.PayloadName(operation, cfg.PluralName), false)
	if err != nil {
		return nil, err
	}

	name := Names.CreateName(cfg.PluralName)
	if operation == "Update" {
		name = Names.UpdateName(cfg.PluralName)
	}
	args := graphql.FieldConfigArgument{
		"input": &graphql.ArgumentConfig{
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(inputType))),
		},
	}
	return &graphql.Field{
		Name:    name,
		Type:    payload,
		Args:    mergeArgs(args, cfg.ExtraArgs),
		Resolve: cfg.Resolve,
	}, nil
}

// NewReadField builds readX(where: FilterXInput!): XType.
func NewReadField(cfg FieldConfig) (*graphql.Field, error) {
	if err := cfg.validate("Read"); err != nil {
		return nil, err
	}
	objectType, err := convertedObject(cfg.Registry, cfg.ModelKey, registry.ObjectType, "Read")
	if err != nil {
		return nil, err
	}
	filterType, err := convertedInput(cfg.Registry, cfg.ModelKey, registry.FilterInputObjectType, "Read")
	if err != nil {
		return nil, err
	}

	args := graphql.FieldConfigArgument{
		"where": &graphql.ArgumentConfig{Type: graphql.NewNonNull(filterType)},
	}
	return &graphql.Field{
		Name:    Names.ReadName(cfg.SingularName),
		Type:    objectType,
		Args:    mergeArgs(args, cfg.ExtraArgs),
		Resolve: cfg.Resolve,
	}, nil
}

// NewDeleteField builds deleteXs(where: FilterXInput!): DeleteXsPayload.
// The delete payload carries a success flag in addition to objects and
// errorsReport.
func NewDeleteField(cfg FieldConfig) (*graphql.Field, error) {
	if err := cfg.validate("Delete"); err != nil {
		return nil, err
	}
	filterType, err := convertedInput(cfg.Registry, cfg.ModelKey, registry.FilterInputObjectType, "Delete")
	if err != nil {
		return nil, err
	}
	payload, err := payloadObjectType(cfg, Names.PayloadName("Delete", cfg.PluralName), true)
	if err != nil {
		return nil, err
	}

	args := graphql.FieldConfigArgument{
		"where": &graphql.ArgumentConfig{Type: graphql.NewNonNull(filterType)},
	}
	return &graphql.Field{
		Name:    Names.DeleteName(cfg.PluralName),
		Type:    payload,
		Args:    mergeArgs(args, cfg.ExtraArgs),
		Resolve: cfg.Resolve,
	}, nil
}

// NewDeactivateField builds deactivateXs(where: FilterXInput!):
// DeactivateXsPayload. activeFlagField names the model field the resolver
// is expected to clear; it only documents the generated field.
func NewDeactivateField(cfg FieldConfig, activeFlagField string) (*graphql.Field, error) {
	return newActivationField(cfg, "Deactivate", activeFlagField, Names.DeactivateName)
}

// NewActivateField builds activateXs(where: FilterXInput!):
// ActivateXsPayload.
func NewActivateField(cfg FieldConfig, activeFlagField string) (*graphql.Field, error) {
	return newActivationField(cfg, "Activate", activeFlagField, Names.ActivateName)
}

func newActivationField(cfg FieldConfig, operation, activeFlagField string, nameFn func(string) string) (*graphql.Field, error) {
	if err := cfg.validate(operation); err != nil {
		return nil, err
	}
	filterType, err := convertedInput(cfg.Registry, cfg.ModelKey, registry.FilterInputObjectType, operation)
	if err != nil {
		return nil, err
	}
	payload, err := payloadObjectType(cfg, Names.PayloadName(operation, cfg.PluralName), false)
	if err != nil {
		return nil, err
	}

	description := ""
	if activeFlagField != "" {
		description = fmt.Sprintf("%ss the matching objects via their %q field.", operation, activeFlagField)
	}
	args := graphql.FieldConfigArgument{
		"where": &graphql.ArgumentConfig{Type: graphql.NewNonNull(filterType)},
	}
	return &graphql.Field{
		Name:        nameFn(cfg.PluralName),
		Type:        payload,
		Args:        mergeArgs(args, cfg.ExtraArgs),
		Resolve:     cfg.Resolve,
		Description: description,
	}, nil
}

// NewListField builds listXs: [XType!].
func NewListField(cfg FieldConfig) (*graphql.Field, error) {
	if err := cfg.validate("List"); err != nil {
		return nil, err
	}
	objectType, err := convertedObject(cfg.Registry, cfg.ModelKey, registry.ObjectType, "List")
	if err != nil {
		return nil, err
	}
	return &graphql.Field{
		Name:    Names.ListName(cfg.PluralName),
		Type:    graphql.NewList(graphql.NewNonNull(objectType)),
		Args:    mergeArgs(nil, cfg.ExtraArgs),
		Resolve: cfg.Resolve,
	}, nil
}

// NewSearchField builds searchXs(where, orderBy, paginationConfig):
// XPaginatedType. The model must have its paginated object type, filter
// input and order-by input registered.
func NewSearchField(cfg FieldConfig) (*graphql.Field, error) {
	if err := cfg.validate("Search"); err != nil {
		return nil, err
	}
	paginatedType, err := convertedObject(cfg.Registry, cfg.ModelKey, registry.PaginatedObjectType, "Search")
	if err != nil {
		return nil, err
	}
	filterType, err := convertedInput(cfg.Registry, cfg.ModelKey, registry.FilterInputObjectType, "Search")
	if err != nil {
		return nil, err
	}
	orderByType, err := convertedInput(cfg.Registry, cfg.ModelKey, registry.OrderByInputObjectType, "Search")
	if err != nil {
		return nil, err
	}

	args := graphql.FieldConfigArgument{
		"where":            &graphql.ArgumentConfig{Type: filterType},
		"orderBy":          &graphql.ArgumentConfig{Type: orderByType},
		"paginationConfig": &graphql.ArgumentConfig{Type: gqltypes.PaginationConfigInput},
	}
	return &graphql.Field{
		Name:    Names.SearchName(cfg.PluralName),
		Type:    paginatedType,
		Args:    mergeArgs(args, cfg.ExtraArgs),
		Resolve: cfg.Resolve,
	}, nil
}

// payloadObjectType builds the payload object for a mutation operation:
// the mutated objects, the per-object error report, and optionally a
// success flag.
func payloadObjectType(cfg FieldConfig, name string, includeSuccess bool) (*graphql.Object, error) {
	objectType, err := convertedObject(cfg.Registry, cfg.ModelKey, registry.ObjectType, name)
	if err != nil {
		return nil, err
	}
	fields := graphql.Fields{
		"objects":      &graphql.Field{Type: graphql.NewList(objectType)},
		"errorsReport": &graphql.Field{Type: graphql.NewList(gqltypes.ErrorCollectionType)},
	}
	if includeSuccess {
		fields["success"] = &graphql.Field{Type: graphql.Boolean}
	}
	return graphql.NewObject(graphql.ObjectConfig{Name: name, Fields: fields}), nil
}

func convertedObject(reg *registry.Registry, modelKey string, kind registry.ModelKind, operation string) (*graphql.Object, error) {
	converted, err := reg.ConvertedModel(modelKey, kind)
	if err != nil {
		return nil, fmt.Errorf("opfields: %s operation: %w", operation, err)
	}
	return converted.(*graphql.Object), nil
}

func convertedInput(reg *registry.Registry, modelKey string, kind registry.ModelKind, operation string) (*graphql.InputObject, error) {
	converted, err := reg.ConvertedModel(modelKey, kind)
	if err != nil {
		return nil, fmt.Errorf("opfields: %s operation: %w", operation, err)
	}
	return converted.(*graphql.InputObject), nil
}

func mergeArgs(base, extra graphql.FieldConfigArgument) graphql.FieldConfigArgument {
	if len(extra) == 0 {
		return base
	}
	merged := make(graphql.FieldConfigArgument, len(base)+len(extra))
	for name, arg := range base {
		merged[name] = arg
	}
	for name, arg := range extra {
		merged[name] = arg
	}
	return merged
}
