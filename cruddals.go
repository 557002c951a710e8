// Package cruddals is a configuration-driven helper for building
// schema-generation libraries on top of github.com/graphql-go/graphql.
// It wires the eight CRUDDALS operations — create, read, update, delete,
// deactivate, activate, list and search — into a GraphQL schema for a
// model, while delegating every field conversion and every resolver to
// caller-supplied functions. The package implements no CRUD semantics,
// performs no storage access, and executes no GraphQL.
//
// A downstream adapter (an ORM binding, a schema-over-config backend, ...)
// fills a Config with its model, its field accessor and converter
// functions, and its eight resolvers, and gets back the converted types,
// the operation fields and an assembled schema:
//
//	ms, err := cruddals.NewSchema(cruddals.Config{
//	    Model:          personModel,
//	    PascalCaseName: "Person",
//	    ...
//	}, cruddals.SchemaOptions{})
//	result := graphql.Do(graphql.Params{Schema: ms.Schema, RequestString: query})
package cruddals

import (
	"errors"
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/cruddals/cruddals/gqltypes"
	"github.com/cruddals/cruddals/registry"
)

// DefaultActiveFlagField is the model field assumed to carry the
// active/inactive state when Config.ActiveFlagField is not set.
const DefaultActiveFlagField = "is_active"

// Config describes how to build the CRUDDALS schema pieces for one model.
// It is constructed once by the caller, consumed once by the builder, and
// never mutated afterwards.
type Config struct {
	// Model is the caller's model reference. It is opaque to this package
	// and is handed back to the fields and converter functions untouched.
	Model any

	// PascalCaseName is the model name in PascalCase. Required.
	PascalCaseName string

	// PluralPascalCaseName defaults to PascalCaseName + "s".
	PluralPascalCaseName string

	// Prefix and Suffix are folded into every generated name.
	Prefix string
	Suffix string

	// ActiveFlagField names the model field toggled by the activate and
	// deactivate operations. Defaults to DefaultActiveFlagField.
	ActiveFlagField string

	// Field accessors and converters, one pair per schema shape.
	// All twelve are required.
	FieldsForOutput           gqltypes.FieldsFunc
	OutputFieldConverter      gqltypes.OutputConverter
	FieldsForInput            gqltypes.FieldsFunc
	InputFieldConverter       gqltypes.InputConverter
	FieldsForCreateInput      gqltypes.FieldsFunc
	CreateInputFieldConverter gqltypes.InputConverter
	FieldsForUpdateInput      gqltypes.FieldsFunc
	UpdateInputFieldConverter gqltypes.InputConverter
	FieldsForFilter           gqltypes.FieldsFunc
	FilterFieldConverter      gqltypes.InputConverter
	FieldsForOrderBy          gqltypes.FieldsFunc
	OrderByFieldConverter     gqltypes.InputConverter

	// One resolver per operation. All eight are required.
	CreateResolver     graphql.FieldResolveFn
	ReadResolver       graphql.FieldResolveFn
	UpdateResolver     graphql.FieldResolveFn
	DeleteResolver     graphql.FieldResolveFn
	DeactivateResolver graphql.FieldResolveFn
	ActivateResolver   graphql.FieldResolveFn
	ListResolver       graphql.FieldResolveFn
	SearchResolver     graphql.FieldResolveFn

	// Extensions customize the generated types and operations; see
	// Extension. ExcludeExtensions removes extensions by name before
	// merging.
	Extensions        []Extension
	ExcludeExtensions []string

	// Registry defaults to the named registry for Prefix+Suffix, which is
	// the process-wide default registry when both are empty.
	Registry *registry.Registry
}

// Validate reports the first missing required field.
func (c Config) Validate() error {
	if c.Model == nil {
		return errors.New("cruddals: Model is required")
	}
	if c.PascalCaseName == "" {
		return errors.New("cruddals: PascalCaseName is required")
	}
	required := []struct {
		name string
		ok   bool
	}{
		{"FieldsForOutput", c.FieldsForOutput != nil},
		{"OutputFieldConverter", c.OutputFieldConverter != nil},
		{"FieldsForInput", c.FieldsForInput != nil},
		{"InputFieldConverter", c.InputFieldConverter != nil},
		{"FieldsForCreateInput", c.FieldsForCreateInput != nil},
		{"CreateInputFieldConverter", c.CreateInputFieldConverter != nil},
		{"FieldsForUpdateInput", c.FieldsForUpdateInput != nil},
		{"UpdateInputFieldConverter", c.UpdateInputFieldConverter != nil},
		{"FieldsForFilter", c.FieldsForFilter != nil},
		{"FilterFieldConverter", c.FilterFieldConverter != nil},
		{"FieldsForOrderBy", c.FieldsForOrderBy != nil},
		{"OrderByFieldConverter", c.OrderByFieldConverter != nil},
		{"CreateResolver", c.CreateResolver != nil},
		{"ReadResolver", c.ReadResolver != nil},
		{"UpdateResolver", c.UpdateResolver != nil},
		{"DeleteResolver", c.DeleteResolver != nil},
		{"DeactivateResolver", c.DeactivateResolver != nil},
		{"ActivateResolver", c.ActivateResolver != nil},
		{"ListResolver", c.ListResolver != nil},
		{"SearchResolver", c.SearchResolver != nil},
	}
	for _, field := range required {
		if !field.ok {
			return fmt.Errorf("cruddals: %s is required", field.name)
		}
	}
	return nil
}

// withDefaults returns a copy of c with the optional fields resolved.
func (c Config) withDefaults() Config {
	if c.PluralPascalCaseName == "" {
		c.PluralPascalCaseName = c.PascalCaseName + "s"
	}
	if c.ActiveFlagField == "" {
		c.ActiveFlagField = DefaultActiveFlagField
	}
	if c.Registry == nil {
		c.Registry = registry.Named(c.Prefix + c.Suffix)
	}
	return c
}
