package cruddals

import (
	"context"
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/cruddals/cruddals/gqlstrings"
	"github.com/cruddals/cruddals/gqltypes"
	"github.com/cruddals/cruddals/opfields"
	"github.com/cruddals/cruddals/registry"
)

// Model is the result of building a Config: the converted GraphQL types and
// the eight operation fields, named per the opfields contract. Build results
// are registered under the cruddals kind, so building the same model twice
// against one registry returns the first build.
type Model struct {
	Config   Config
	Names    gqlstrings.NameCases
	Registry *registry.Registry

	ObjectType             *graphql.Object
	PaginatedObjectType    *graphql.Object
	InputObjectType        *graphql.InputObject
	CreateInputObjectType  *graphql.InputObject
	UpdateInputObjectType  *graphql.InputObject
	FilterInputObjectType  *graphql.InputObject
	OrderByInputObjectType *graphql.InputObject

	CreateField     *graphql.Field
	ReadField       *graphql.Field
	UpdateField     *graphql.Field
	DeleteField     *graphql.Field
	DeactivateField *graphql.Field
	ActivateField   *graphql.Field
	ListField       *graphql.Field
	SearchField     *graphql.Field
}

// Key is the registry key of the model: its resolved PascalCase name with
// prefix and suffix folded in.
func (m *Model) Key() string { return m.Names.PascalCase }

// OperationField returns the generated field for one operation.
func (m *Model) OperationField(op Operation) (*graphql.Field, error) {
	switch op {
	case OpCreate:
		return m.CreateField, nil
	case OpRead:
		return m.ReadField, nil
	case OpUpdate:
		return m.UpdateField, nil
	case OpDelete:
		return m.DeleteField, nil
	case OpDeactivate:
		return m.DeactivateField, nil
	case OpActivate:
		return m.ActivateField, nil
	case OpList:
		return m.ListField, nil
	case OpSearch:
		return m.SearchField, nil
	}
	return nil, fmt.Errorf("cruddals: unknown operation %q", op)
}

// BuildModel validates cfg, converts the model to its seven GraphQL types,
// and builds the eight operation fields with their resolvers wrapped in the
// extension pipeline.
func BuildModel(cfg Config) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	names, err := gqlstrings.NamesFor(cfg.PascalCaseName, cfg.PluralPascalCaseName, cfg.Prefix, cfg.Suffix)
	if err != nil {
		return nil, err
	}
	reg := cfg.Registry
	modelKey := names.PascalCase

	if existing, ok := reg.LookupModel(modelKey, registry.Cruddals); ok {
		return existing.(*Model), nil
	}

	ext, err := mergeExtensions(cfg.Extensions, cfg.ExcludeExtensions, modelKey)
	if err != nil {
		return nil, err
	}

	m := &Model{Config: cfg, Names: names, Registry: reg}
	if err := m.buildTypes(ext); err != nil {
		return nil, err
	}
	if err := m.buildFields(ext); err != nil {
		return nil, err
	}

	reg.RegisterModel(modelKey, registry.Cruddals, m)
	return m, nil
}

func (m *Model) buildTypes(ext Extension) error {
	cfg, modelKey := m.Config, m.Key()

	objExt := ext.ObjectType
	if objExt == nil {
		objExt = &ObjectTypeExtension{}
	}
	objectType, err := gqltypes.NewModelObjectType(gqltypes.ObjectTypeConfig{
		Model: cfg.Model, ModelKey: modelKey, Registry: m.Registry,
		Fields: cfg.FieldsForOutput, Convert: cfg.OutputFieldConverter,
		Only: objExt.Only, Exclude: objExt.Exclude, Extra: objExt.Extra, Name: objExt.Name,
	})
	if err != nil {
		return err
	}
	m.ObjectType = objectType

	m.PaginatedObjectType, err = gqltypes.NewModelPaginatedObjectType(gqltypes.PaginatedTypeConfig{
		ModelKey: modelKey, Registry: m.Registry, ObjectType: objectType,
	})
	if err != nil {
		return err
	}

	inputs := []struct {
		target  **graphql.InputObject
		kind    gqltypes.MutationKind
		fields  gqltypes.FieldsFunc
		convert gqltypes.InputConverter
		ext     *InputTypeExtension
		build   func(gqltypes.InputTypeConfig) (*graphql.InputObject, error)
	}{
		{&m.InputObjectType, gqltypes.MutationCreateUpdate, cfg.FieldsForInput, cfg.InputFieldConverter, ext.InputObjectType, gqltypes.NewModelInputObjectType},
		{&m.CreateInputObjectType, gqltypes.MutationCreate, cfg.FieldsForCreateInput, cfg.CreateInputFieldConverter, ext.CreateInputObjectType, gqltypes.NewModelInputObjectType},
		{&m.UpdateInputObjectType, gqltypes.MutationUpdate, cfg.FieldsForUpdateInput, cfg.UpdateInputFieldConverter, ext.UpdateInputObjectType, gqltypes.NewModelInputObjectType},
		{&m.FilterInputObjectType, "", cfg.FieldsForFilter, cfg.FilterFieldConverter, ext.FilterInputObjectType, gqltypes.NewModelFilterInputObjectType},
		{&m.OrderByInputObjectType, "", cfg.FieldsForOrderBy, cfg.OrderByFieldConverter, ext.OrderByInputObjectType, gqltypes.NewModelOrderByInputObjectType},
	}
	for _, in := range inputs {
		inExt := in.ext
		if inExt == nil {
			inExt = &InputTypeExtension{}
		}
		built, err := in.build(gqltypes.InputTypeConfig{
			Model: cfg.Model, ModelKey: modelKey, Registry: m.Registry,
			Fields: in.fields, Convert: in.convert, Kind: in.kind,
			Only: inExt.Only, Exclude: inExt.Exclude, Extra: inExt.Extra, Name: inExt.Name,
		})
		if err != nil {
			return err
		}
		*in.target = built
	}
	return nil
}

func (m *Model) buildFields(ext Extension) error {
	cfg := m.Config

	builds := []struct {
		target  **graphql.Field
		resolve graphql.FieldResolveFn
		ext     *FieldExtension
		build   func(opfields.FieldConfig) (*graphql.Field, error)
	}{
		{&m.CreateField, cfg.CreateResolver, ext.CreateField, opfields.NewCreateField},
		{&m.ReadField, cfg.ReadResolver, ext.ReadField, opfields.NewReadField},
		{&m.UpdateField, cfg.UpdateResolver, ext.UpdateField, opfields.NewUpdateField},
		{&m.DeleteField, cfg.DeleteResolver, ext.DeleteField, opfields.NewDeleteField},
		{&m.DeactivateField, cfg.DeactivateResolver, ext.DeactivateField, m.deactivateBuilder},
		{&m.ActivateField, cfg.ActivateResolver, ext.ActivateField, m.activateBuilder},
		{&m.ListField, cfg.ListResolver, ext.ListField, opfields.NewListField},
		{&m.SearchField, cfg.SearchResolver, ext.SearchField, opfields.NewSearchField},
	}
	for _, b := range builds {
		fieldCfg := opfields.FieldConfig{
			ModelKey:     m.Key(),
			SingularName: m.Names.PascalCase,
			PluralName:   m.Names.PluralPascal,
			Registry:     m.Registry,
			Resolve:      m.wrapResolver(b.resolve, b.ext),
		}
		if b.ext != nil {
			fieldCfg.ExtraArgs = b.ext.ExtraArguments
		}
		field, err := b.build(fieldCfg)
		if err != nil {
			return err
		}
		*b.target = field
	}
	return nil
}

func (m *Model) deactivateBuilder(cfg opfields.FieldConfig) (*graphql.Field, error) {
	return opfields.NewDeactivateField(cfg, m.Config.ActiveFlagField)
}

func (m *Model) activateBuilder(cfg opfields.FieldConfig) (*graphql.Field, error) {
	return opfields.NewActivateField(cfg, m.Config.ActiveFlagField)
}

// wrapResolver attaches the model to the request context and runs the
// extension pipeline around base: pre hooks, the resolver (ext.Resolve when
// set), then post hooks. OverrideTotal short-circuits everything except the
// context attachment.
func (m *Model) wrapResolver(base graphql.FieldResolveFn, ext *FieldExtension) graphql.FieldResolveFn {
	resolver := base
	var pre []ResolveParamsHook
	var post []ResultHook
	if ext != nil {
		if ext.OverrideTotal != nil {
			override := ext.OverrideTotal
			return func(p graphql.ResolveParams) (interface{}, error) {
				p.Context = NewContext(ctxOrBackground(p.Context), m)
				return override(p)
			}
		}
		if ext.Resolve != nil {
			resolver = ext.Resolve
		}
		pre, post = ext.Pre, ext.Post
	}

	return func(p graphql.ResolveParams) (interface{}, error) {
		p.Context = NewContext(ctxOrBackground(p.Context), m)
		var err error
		for _, hook := range pre {
			if p, err = hook(p); err != nil {
				return nil, err
			}
		}
		result, err := resolver(p)
		if err != nil {
			return nil, err
		}
		for _, hook := range post {
			if result, err = hook(p, result); err != nil {
				return nil, err
			}
		}
		return result, nil
	}
}

func ctxOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
