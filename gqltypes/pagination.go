package gqltypes

import (
	"strconv"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
)

// AllPages is the IntOrAll value that disables pagination.
const AllPages = "All"

// PaginationInterface is implemented by every paginated object type so
// clients can select page bookkeeping uniformly across models.
var PaginationInterface = graphql.NewInterface(graphql.InterfaceConfig{
	Name: "PaginationInterface",
	Fields: graphql.Fields{
		"total":      &graphql.Field{Type: graphql.Int},
		"page":       &graphql.Field{Type: graphql.Int},
		"pages":      &graphql.Field{Type: graphql.Int},
		"hasNext":    &graphql.Field{Type: graphql.Boolean},
		"hasPrev":    &graphql.Field{Type: graphql.Boolean},
		"indexStart": &graphql.Field{Type: graphql.Int},
		"indexEnd":   &graphql.Field{Type: graphql.Int},
	},
})

// IntOrAll accepts either a page size or the literal string "All".
var IntOrAll = graphql.NewScalar(graphql.ScalarConfig{
	Name:        "IntOrAll",
	Description: `The page size can be an Int or "All".`,
	Serialize:   coerceIntOrAll,
	ParseValue:  coerceIntOrAll,
	ParseLiteral: func(valueAST ast.Value) interface{} {
		switch value := valueAST.(type) {
		case *ast.IntValue:
			n, err := strconv.Atoi(value.Value)
			if err != nil {
				return nil
			}
			return n
		case *ast.StringValue:
			if value.Value == AllPages {
				return AllPages
			}
		}
		return nil
	},
})

func coerceIntOrAll(value interface{}) interface{} {
	switch v := value.(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if v == AllPages {
			return AllPages
		}
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return nil
}

// PaginationConfigInput is the paginationConfig argument of every search
// operation.
var PaginationConfigInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "PaginationConfigInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"page": &graphql.InputObjectFieldConfig{
			Type:         graphql.Int,
			DefaultValue: 1,
		},
		"itemsPerPage": &graphql.InputObjectFieldConfig{
			Type:         IntOrAll,
			DefaultValue: AllPages,
		},
	},
})

// OrderDirection is a ready-made ASC/DESC enum for order-by field
// converters that have no backend-specific ordering vocabulary.
var OrderDirection = graphql.NewEnum(graphql.EnumConfig{
	Name: "OrderDirection",
	Values: graphql.EnumValueConfigMap{
		"ASC":  &graphql.EnumValueConfig{Value: "ASC"},
		"DESC": &graphql.EnumValueConfig{Value: "DESC"},
	},
})
