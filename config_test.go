package cruddals

import (
	"strings"
	"testing"

	"github.com/graphql-go/graphql"

	"github.com/cruddals/cruddals/registry"
)

type testModel map[string]string

func testFieldsFunc(model any) map[string]any {
	fields := make(map[string]any)
	for name, kind := range model.(testModel) {
		fields[name] = kind
	}
	return fields
}

func testScalar(kind string) graphql.Type {
	switch kind {
	case "int":
		return graphql.Int
	case "bool":
		return graphql.Boolean
	default:
		return graphql.String
	}
}

func testOutputConverter(name string, field any, model any, reg *registry.Registry) (graphql.Output, error) {
	return testScalar(field.(string)), nil
}

func testInputConverter(name string, field any, model any, reg *registry.Registry) (graphql.Input, error) {
	return testScalar(field.(string)), nil
}

func nopResolver(p graphql.ResolveParams) (interface{}, error) { return nil, nil }

var widgetModel = testModel{"id": "string", "name": "string", "isActive": "bool"}

// validConfig returns a fully populated configuration for the widget model.
// Tests mutate copies of it.
func validConfig(reg *registry.Registry) Config {
	return Config{
		Model:          widgetModel,
		PascalCaseName: "Widget",

		FieldsForOutput:           testFieldsFunc,
		OutputFieldConverter:      testOutputConverter,
		FieldsForInput:            testFieldsFunc,
		InputFieldConverter:       testInputConverter,
		FieldsForCreateInput:      testFieldsFunc,
		CreateInputFieldConverter: testInputConverter,
		FieldsForUpdateInput:      testFieldsFunc,
		UpdateInputFieldConverter: testInputConverter,
		FieldsForFilter:           testFieldsFunc,
		FilterFieldConverter:      testInputConverter,
		FieldsForOrderBy:          testFieldsFunc,
		OrderByFieldConverter:     testInputConverter,

		CreateResolver:     nopResolver,
		ReadResolver:       nopResolver,
		UpdateResolver:     nopResolver,
		DeleteResolver:     nopResolver,
		DeactivateResolver: nopResolver,
		ActivateResolver:   nopResolver,
		ListResolver:       nopResolver,
		SearchResolver:     nopResolver,

		Registry: reg,
	}
}

func TestConfigValidateSucceeds(t *testing.T) {
	cfg := validConfig(registry.New())
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Valid config must pass validation, got: %v", err)
	}
}

func TestConfigValidateMissingRequired(t *testing.T) {
	tests := []struct {
		field string
		clear func(*Config)
	}{
		{"Model", func(c *Config) { c.Model = nil }},
		{"PascalCaseName", func(c *Config) { c.PascalCaseName = "" }},
		{"FieldsForOutput", func(c *Config) { c.FieldsForOutput = nil }},
		{"OutputFieldConverter", func(c *Config) { c.OutputFieldConverter = nil }},
		{"FieldsForInput", func(c *Config) { c.FieldsForInput = nil }},
		{"InputFieldConverter", func(c *Config) { c.InputFieldConverter = nil }},
		{"FieldsForCreateInput", func(c *Config) { c.FieldsForCreateInput = nil }},
		{"CreateInputFieldConverter", func(c *Config) { c.CreateInputFieldConverter = nil }},
		{"FieldsForUpdateInput", func(c *Config) { c.FieldsForUpdateInput = nil }},
		{"UpdateInputFieldConverter", func(c *Config) { c.UpdateInputFieldConverter = nil }},
		{"FieldsForFilter", func(c *Config) { c.FieldsForFilter = nil }},
		{"FilterFieldConverter", func(c *Config) { c.FilterFieldConverter = nil }},
		{"FieldsForOrderBy", func(c *Config) { c.FieldsForOrderBy = nil }},
		{"OrderByFieldConverter", func(c *Config) { c.OrderByFieldConverter = nil }},
		{"CreateResolver", func(c *Config) { c.CreateResolver = nil }},
		{"ReadResolver", func(c *Config) { c.ReadResolver = nil }},
		{"UpdateResolver", func(c *Config) { c.UpdateResolver = nil }},
		{"DeleteResolver", func(c *Config) { c.DeleteResolver = nil }},
		{"DeactivateResolver", func(c *Config) { c.DeactivateResolver = nil }},
		{"ActivateResolver", func(c *Config) { c.ActivateResolver = nil }},
		{"ListResolver", func(c *Config) { c.ListResolver = nil }},
		{"SearchResolver", func(c *Config) { c.SearchResolver = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			cfg := validConfig(registry.New())
			tt.clear(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatalf("Expected validation error when %s is missing", tt.field)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("Error should name the missing field %s, got: %v", tt.field, err)
			}
		})
	}
}

func TestBuildModelAppliesDefaults(t *testing.T) {
	m, err := BuildModel(validConfig(registry.New()))
	if err != nil {
		t.Fatalf("BuildModel returned error: %v", err)
	}

	if m.Names.PluralPascal != "Widgets" {
		t.Errorf("Expected default plural Widgets, got %q", m.Names.PluralPascal)
	}
	if m.Config.ActiveFlagField != DefaultActiveFlagField {
		t.Errorf("Expected default active flag field %q, got %q", DefaultActiveFlagField, m.Config.ActiveFlagField)
	}
	if m.Registry == nil {
		t.Error("Expected registry to be resolved")
	}
}

func TestBuildModelDefaultRegistryFromPrefixSuffix(t *testing.T) {
	registry.Reset()
	t.Cleanup(registry.Reset)

	cfg := validConfig(nil)
	cfg.Registry = nil
	cfg.Prefix = "beta"

	m, err := BuildModel(cfg)
	if err != nil {
		t.Fatalf("BuildModel returned error: %v", err)
	}
	if m.Registry != registry.Named("beta") {
		t.Error("Expected the named registry for the prefix")
	}
	if m.Names.PascalCase != "BetaWidget" {
		t.Errorf("Expected prefixed model key BetaWidget, got %q", m.Names.PascalCase)
	}
}
