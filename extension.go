package cruddals

import (
	"fmt"
	"slices"

	"github.com/graphql-go/graphql"
)

// ResolveParamsHook runs before an operation resolver and may rewrite its
// ResolveParams. Returning an error aborts the operation.
type ResolveParamsHook func(p graphql.ResolveParams) (graphql.ResolveParams, error)

// ResultHook runs after an operation resolver and may rewrite its result.
type ResultHook func(p graphql.ResolveParams, result any) (any, error)

// FieldExtension customizes one generated operation field.
//
// Pre hooks run before the resolver, Post hooks after. Resolve replaces the
// configured resolver but keeps the Pre/Post pipeline. OverrideTotal
// replaces the whole pipeline and cannot be combined with Pre, Resolve or
// Post.
type FieldExtension struct {
	ExtraArguments graphql.FieldConfigArgument
	Pre            []ResolveParamsHook
	Resolve        graphql.FieldResolveFn
	Post           []ResultHook
	OverrideTotal  graphql.FieldResolveFn
}

// ObjectTypeExtension customizes the generated object type: restrict the
// converted fields with Only or Exclude, add fields with Extra, or rename
// the type.
type ObjectTypeExtension struct {
	Only    []string
	Exclude []string
	Extra   graphql.Fields
	Name    string
}

// InputTypeExtension is ObjectTypeExtension's counterpart for the input
// object types.
type InputTypeExtension struct {
	Only    []string
	Exclude []string
	Extra   graphql.InputObjectConfigFieldMap
	Name    string
}

// Extension is a named bundle of type and field customizations. A model may
// carry several; they are merged in declaration order, so later extensions
// win on conflicting scalar settings while hooks accumulate.
type Extension struct {
	Name string

	ObjectType             *ObjectTypeExtension
	InputObjectType        *InputTypeExtension
	CreateInputObjectType  *InputTypeExtension
	UpdateInputObjectType  *InputTypeExtension
	FilterInputObjectType  *InputTypeExtension
	OrderByInputObjectType *InputTypeExtension

	CreateField     *FieldExtension
	ReadField       *FieldExtension
	UpdateField     *FieldExtension
	DeleteField     *FieldExtension
	DeactivateField *FieldExtension
	ActivateField   *FieldExtension
	ListField       *FieldExtension
	SearchField     *FieldExtension
}

// mergeExtensions folds the configured extensions into a single Extension,
// dropping the ones named in exclude first.
func mergeExtensions(exts []Extension, exclude []string, modelName string) (Extension, error) {
	var merged Extension
	for _, ext := range exts {
		if ext.Name != "" && slices.Contains(exclude, ext.Name) {
			continue
		}
		merged.ObjectType = mergeObjectTypeExt(merged.ObjectType, ext.ObjectType)
		merged.InputObjectType = mergeInputTypeExt(merged.InputObjectType, ext.InputObjectType)
		merged.CreateInputObjectType = mergeInputTypeExt(merged.CreateInputObjectType, ext.CreateInputObjectType)
		merged.UpdateInputObjectType = mergeInputTypeExt(merged.UpdateInputObjectType, ext.UpdateInputObjectType)
		merged.FilterInputObjectType = mergeInputTypeExt(merged.FilterInputObjectType, ext.FilterInputObjectType)
		merged.OrderByInputObjectType = mergeInputTypeExt(merged.OrderByInputObjectType, ext.OrderByInputObjectType)

		merged.CreateField = mergeFieldExt(merged.CreateField, ext.CreateField)
		merged.ReadField = mergeFieldExt(merged.ReadField, ext.ReadField)
		merged.UpdateField = mergeFieldExt(merged.UpdateField, ext.UpdateField)
		merged.DeleteField = mergeFieldExt(merged.DeleteField, ext.DeleteField)
		merged.DeactivateField = mergeFieldExt(merged.DeactivateField, ext.DeactivateField)
		merged.ActivateField = mergeFieldExt(merged.ActivateField, ext.ActivateField)
		merged.ListField = mergeFieldExt(merged.ListField, ext.ListField)
		merged.SearchField = mergeFieldExt(merged.SearchField, ext.SearchField)
	}

	fieldExts := []struct {
		op  string
		ext *FieldExtension
	}{
		{"create", merged.CreateField},
		{"read", merged.ReadField},
		{"update", merged.UpdateField},
		{"delete", merged.DeleteField},
		{"deactivate", merged.DeactivateField},
		{"activate", merged.ActivateField},
		{"list", merged.ListField},
		{"search", merged.SearchField},
	}
	for _, fe := range fieldExts {
		if fe.ext == nil || fe.ext.OverrideTotal == nil {
			continue
		}
		if len(fe.ext.Pre) > 0 || fe.ext.Resolve != nil || len(fe.ext.Post) > 0 {
			return Extension{}, fmt.Errorf(
				"cruddals: cannot set both OverrideTotal and Pre/Resolve/Post on the %s field extension for %s",
				fe.op, modelName)
		}
	}
	return merged, nil
}

func mergeObjectTypeExt(into, from *ObjectTypeExtension) *ObjectTypeExtension {
	if from == nil {
		return into
	}
	if into == nil {
		into = &ObjectTypeExtension{}
	}
	into.Only = append(into.Only, from.Only...)
	into.Exclude = append(into.Exclude, from.Exclude...)
	if from.Extra != nil {
		if into.Extra == nil {
			into.Extra = graphql.Fields{}
		}
		for name, field := range from.Extra {
			into.Extra[name] = field
		}
	}
	if from.Name != "" {
		into.Name = from.Name
	}
	return into
}

func mergeInputTypeExt(into, from *InputTypeExtension) *InputTypeExtension {
	if from == nil {
		return into
	}
	if into == nil {
		into = &InputTypeExtension{}
	}
	into.Only = append(into.Only, from.Only...)
	into.Exclude = append(into.Exclude, from.Exclude...)
	if from.Extra != nil {
		if into.Extra == nil {
			into.Extra = graphql.InputObjectConfigFieldMap{}
		}
		for name, field := range from.Extra {
			into.Extra[name] = field
		}
	}
	if from.Name != "" {
		into.Name = from.Name
	}
	return into
}

func mergeFieldExt(into, from *FieldExtension) *FieldExtension {
	if from == nil {
		return into
	}
	if into == nil {
		into = &FieldExtension{}
	}
	if from.ExtraArguments != nil {
		if into.ExtraArguments == nil {
			into.ExtraArguments = graphql.FieldConfigArgument{}
		}
		for name, arg := range from.ExtraArguments {
			into.ExtraArguments[name] = arg
		}
	}
	into.Pre = append(into.Pre, from.Pre...)
	if from.Resolve != nil {
		into.Resolve = from.Resolve
	}
	into.Post = append(into.Post, from.Post...)
	if from.OverrideTotal != nil {
		into.OverrideTotal = from.OverrideTotal
	}
	return into
}
