package gqltypes

import (
	"sort"

	"github.com/graphql-go/graphql"

	"github.com/cruddals/cruddals/gqlstrings"
)

// FieldError reports the validation messages collected for a single field.
type FieldError struct {
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

// ErrorCollection groups the field errors of one object in a bulk mutation,
// identified by its position in the input list.
type ErrorCollection struct {
	ObjectPosition string       `json:"objectPosition"`
	Errors         []FieldError `json:"errors"`
}

// FieldErrorsFrom converts a field-to-messages map into FieldError values,
// camelizing the field names to match GraphQL naming. The result is sorted
// by field for stable output.
func FieldErrorsFrom(errs map[string][]string) []FieldError {
	camelized := gqlstrings.CamelizeKeys(errs)
	out := make([]FieldError, 0, len(camelized))
	for field, messages := range camelized {
		out = append(out, FieldError{Field: field, Messages: messages})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

// ErrorCollectionFrom builds the ErrorCollection for the object at the given
// input position.
func ErrorCollectionFrom(objectPosition string, errs []FieldError) ErrorCollection {
	return ErrorCollection{ObjectPosition: objectPosition, Errors: errs}
}

// ErrorType is the GraphQL shape of FieldError.
var ErrorType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ErrorType",
	Fields: graphql.Fields{
		"field": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
		},
		"messages": &graphql.Field{
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(graphql.String))),
		},
	},
})

// ErrorCollectionType is the GraphQL shape of ErrorCollection. It appears in
// every mutation payload as the errorsReport field.
var ErrorCollectionType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ErrorCollectionType",
	Fields: graphql.Fields{
		"objectPosition": &graphql.Field{Type: graphql.String},
		"errors":         &graphql.Field{Type: graphql.NewList(ErrorType)},
	},
})
