package gqltypes

import (
	"errors"
	"strings"
	"testing"

	"github.com/graphql-go/graphql"

	"github.com/cruddals/cruddals/registry"
)

// testModel describes fields as name -> kind strings, the simplest possible
// model representation.
type testModel map[string]string

func testFields(model any) map[string]any {
	fields := make(map[string]any)
	for name, kind := range model.(testModel) {
		fields[name] = kind
	}
	return fields
}

func scalarForKind(kind string) graphql.Type {
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
	kind, ok := field.(string)
	if !ok {
		return nil, errors.New("field is not a kind string")
	}
	return scalarForKind(kind), nil
}

func testInputConverter(name string, field any, model any, reg *registry.Registry) (graphql.Input, error) {
	kind, ok := field.(string)
	if !ok {
		return nil, errors.New("field is not a kind string")
	}
	return scalarForKind(kind), nil
}

var userModel = testModel{"id": "string", "age": "int", "isActive": "bool"}

func TestNewModelObjectType(t *testing.T) {
	reg := registry.New()
	objectType, err := NewModelObjectType(ObjectTypeConfig{
		Model:    userModel,
		ModelKey: "User",
		Registry: reg,
		Fields:   testFields,
		Convert:  testOutputConverter,
	})
	if err != nil {
		t.Fatalf("NewModelObjectType returned error: %v", err)
	}

	if objectType.Name() != "UserType" {
		t.Errorf("Expected name UserType, got %q", objectType.Name())
	}
	fields := objectType.Fields()
	if len(fields) != 3 {
		t.Fatalf("Expected 3 fields, got %d", len(fields))
	}
	if fields["age"].Type != graphql.Int {
		t.Errorf("Expected age to be Int, got %v", fields["age"].Type)
	}

	// Registered and memoized: a second conversion returns the same object.
	registered, ok := reg.LookupModel("User", registry.ObjectType)
	if !ok || registered != objectType {
		t.Error("Object type not registered under its model key")
	}
	again, err := NewModelObjectType(ObjectTypeConfig{Model: userModel, ModelKey: "User", Registry: reg})
	if err != nil {
		t.Fatalf("Second conversion returned error: %v", err)
	}
	if again != objectType {
		t.Error("Second conversion must return the memoized object type")
	}
}

func TestNewModelObjectTypeSelection(t *testing.T) {
	reg := registry.New()
	objectType, err := NewModelObjectType(ObjectTypeConfig{
		Model:    userModel,
		ModelKey: "Narrow",
		Registry: reg,
		Fields:   testFields,
		Convert:  testOutputConverter,
		Only:     []string{"id"},
		Extra: graphql.Fields{
			"displayName": &graphql.Field{Type: graphql.String},
		},
	})
	if err != nil {
		t.Fatalf("NewModelObjectType returned error: %v", err)
	}
	fields := objectType.Fields()
	if len(fields) != 2 {
		t.Fatalf("Expected id plus extra field, got %d fields", len(fields))
	}
	if _, ok := fields["displayName"]; !ok {
		t.Error("Extra field missing from object type")
	}

	_, err = NewModelObjectType(ObjectTypeConfig{
		Model:    userModel,
		ModelKey: "Conflict",
		Registry: reg,
		Fields:   testFields,
		Convert:  testOutputConverter,
		Only:     []string{"id"},
		Exclude:  []string{"age"},
	})
	if err == nil || !strings.Contains(err.Error(), "Only and Exclude") {
		t.Errorf("Expected Only/Exclude conflict error, got %v", err)
	}
}

func TestNewModelObjectTypeValidation(t *testing.T) {
	reg := registry.New()

	if _, err := NewModelObjectType(ObjectTypeConfig{ModelKey: "User", Registry: reg}); err == nil {
		t.Error("Expected error for missing model")
	}
	if _, err := NewModelObjectType(ObjectTypeConfig{Model: userModel, Registry: reg}); err == nil {
		t.Error("Expected error for missing model key")
	}
	if _, err := NewModelObjectType(ObjectTypeConfig{
		Model: userModel, ModelKey: "Empty", Registry: reg,
		Fields:  func(any) map[string]any { return nil },
		Convert: testOutputConverter,
	}); err == nil {
		t.Error("Expected error for model with no fields")
	}
}

func TestNewModelPaginatedObjectType(t *testing.T) {
	reg := registry.New()
	objectType, err := NewModelObjectType(ObjectTypeConfig{
		Model: userModel, ModelKey: "User", Registry: reg,
		Fields: testFields, Convert: testOutputConverter,
	})
	if err != nil {
		t.Fatalf("building object type: %v", err)
	}

	paginated, err := NewModelPaginatedObjectType(PaginatedTypeConfig{
		ModelKey: "User", Registry: reg, ObjectType: objectType,
	})
	if err != nil {
		t.Fatalf("NewModelPaginatedObjectType returned error: %v", err)
	}
	if paginated.Name() != "UserPaginatedType" {
		t.Errorf("Expected name UserPaginatedType, got %q", paginated.Name())
	}

	fields := paginated.Fields()
	for _, name := range []string{"total", "page", "pages", "hasNext", "hasPrev", "indexStart", "indexEnd", "objects"} {
		if _, ok := fields[name]; !ok {
			t.Errorf("Paginated type missing field %q", name)
		}
	}
	if len(paginated.Interfaces()) != 1 || paginated.Interfaces()[0] != PaginationInterface {
		t.Error("Paginated type must implement PaginationInterface")
	}
}

func TestNewModelInputObjectTypeNames(t *testing.T) {
	tests := []struct {
		kind     MutationKind
		expected string
	}{
		{MutationCreateUpdate, "UserInput"},
		{MutationCreate, "CreateUserInput"},
		{MutationUpdate, "UpdateUserInput"},
	}

	for _, tt := range tests {
		reg := registry.New()
		inputType, err := NewModelInputObjectType(InputTypeConfig{
			Model: userModel, ModelKey: "User", Registry: reg,
			Fields: testFields, Convert: testInputConverter, Kind: tt.kind,
		})
		if err != nil {
			t.Fatalf("kind %q: %v", tt.kind, err)
		}
		if inputType.Name() != tt.expected {
			t.Errorf("kind %q: expected name %q, got %q", tt.kind, tt.expected, inputType.Name())
		}
	}

	if _, err := NewModelInputObjectType(InputTypeConfig{
		Model: userModel, ModelKey: "User", Registry: registry.New(),
		Fields: testFields, Convert: testInputConverter, Kind: "bogus",
	}); err == nil {
		t.Error("Expected error for unknown mutation kind")
	}
}

func TestNewModelFilterInputObjectType(t *testing.T) {
	reg := registry.New()
	filterType, err := NewModelFilterInputObjectType(InputTypeConfig{
		Model: userModel, ModelKey: "User", Registry: reg,
		Fields: testFields, Convert: testInputConverter,
	})
	if err != nil {
		t.Fatalf("NewModelFilterInputObjectType returned error: %v", err)
	}
	if filterType.Name() != "FilterUserInput" {
		t.Errorf("Expected name FilterUserInput, got %q", filterType.Name())
	}

	fields := filterType.Fields()
	if len(fields) != 6 {
		t.Fatalf("Expected 3 model fields plus AND/OR/NOT, got %d", len(fields))
	}
	for _, name := range []string{"AND", "OR", "NOT"} {
		if _, ok := fields[name]; !ok {
			t.Fatalf("Filter type missing combinator %q", name)
		}
	}

	// AND and OR take lists of the filter type itself; NOT takes one.
	andType, ok := fields["AND"].Type.(*graphql.List)
	if !ok || andType.OfType != filterType {
		t.Errorf("AND must be a list of the filter type, got %v", fields["AND"].Type)
	}
	if fields["NOT"].Type != filterType {
		t.Errorf("NOT must be the filter type itself, got %v", fields["NOT"].Type)
	}
}

func TestNewModelOrderByInputObjectType(t *testing.T) {
	reg := registry.New()
	orderByType, err := NewModelOrderByInputObjectType(InputTypeConfig{
		Model: userModel, ModelKey: "User", Registry: reg,
		Fields: testFields,
		Convert: func(name string, field any, model any, r *registry.Registry) (graphql.Input, error) {
			return OrderDirection, nil
		},
	})
	if err != nil {
		t.Fatalf("NewModelOrderByInputObjectType returned error: %v", err)
	}
	if orderByType.Name() != "OrderByUserInput" {
		t.Errorf("Expected name OrderByUserInput, got %q", orderByType.Name())
	}
	fields := orderByType.Fields()
	if fields["age"].Type != OrderDirection {
		t.Errorf("Expected age to use the order direction enum, got %v", fields["age"].Type)
	}
}

func TestConverterErrorNamesField(t *testing.T) {
	failing := func(name string, field any, model any, reg *registry.Registry) (graphql.Output, error) {
		return nil, errors.New("unsupported kind")
	}
	_, err := NewModelObjectType(ObjectTypeConfig{
		Model: testModel{"weird": "blob"}, ModelKey: "Weird", Registry: registry.New(),
		Fields: testFields, Convert: failing,
	})
	if err == nil || !strings.Contains(err.Error(), "weird") {
		t.Errorf("Converter error should name the field, got %v", err)
	}
}

func TestFieldConversionsRegistered(t *testing.T) {
	reg := registry.New()
	_, err := NewModelObjectType(ObjectTypeConfig{
		Model: userModel, ModelKey: "User", Registry: reg,
		Fields: testFields, Convert: testOutputConverter,
	})
	if err != nil {
		t.Fatalf("building object type: %v", err)
	}

	converted, ok := reg.LookupField(registry.FieldKey("User", "age"), registry.FieldOutput)
	if !ok {
		t.Fatal("Field conversion not registered")
	}
	if converted != graphql.Int {
		t.Errorf("Expected Int registered for age, got %v", converted)
	}
}
