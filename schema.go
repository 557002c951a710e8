package cruddals

import (
	"fmt"
	"slices"

	"github.com/graphql-go/graphql"
)

// Operation identifies one of the eight CRUDDALS operations.
type Operation string

const (
	OpCreate     Operation = "create"
	OpRead       Operation = "read"
	OpUpdate     Operation = "update"
	OpDelete     Operation = "delete"
	OpDeactivate Operation = "deactivate"
	OpActivate   Operation = "activate"
	OpList       Operation = "list"
	OpSearch     Operation = "search"
)

// AllOperations lists every operation in canonical order.
var AllOperations = []Operation{
	OpCreate, OpRead, OpUpdate, OpDelete,
	OpDeactivate, OpActivate, OpList, OpSearch,
}

var queryOperations = []Operation{OpRead, OpList, OpSearch}

// IsQuery reports whether the operation is exposed as a query field.
// Everything else is a mutation.
func (op Operation) IsQuery() bool { return slices.Contains(queryOperations, op) }

// SchemaOptions selects which operations a schema exposes. Operations and
// ExcludeOperations are mutually exclusive; leaving both empty selects all
// eight.
type SchemaOptions struct {
	Operations        []Operation
	ExcludeOperations []Operation
}

// selectOperations resolves the options to the final operation set, in
// canonical order. At least one query operation must survive, or the schema
// would have an empty Query type.
func selectOperations(opts SchemaOptions) ([]Operation, error) {
	if len(opts.Operations) > 0 && len(opts.ExcludeOperations) > 0 {
		return nil, fmt.Errorf("cruddals: cannot set both Operations and ExcludeOperations options")
	}
	for _, op := range append(append([]Operation{}, opts.Operations...), opts.ExcludeOperations...) {
		if !slices.Contains(AllOperations, op) {
			return nil, fmt.Errorf("cruddals: unknown operation %q", op)
		}
	}

	selected := make([]Operation, 0, len(AllOperations))
	for _, op := range AllOperations {
		switch {
		case len(opts.Operations) > 0:
			if slices.Contains(opts.Operations, op) {
				selected = append(selected, op)
			}
		case slices.Contains(opts.ExcludeOperations, op):
		default:
			selected = append(selected, op)
		}
	}

	hasQuery := slices.ContainsFunc(selected, Operation.IsQuery)
	if !hasQuery {
		return nil, fmt.Errorf("cruddals: at least one of the read, list or search operations is required")
	}
	return selected, nil
}

// ModelSchema is a built model together with its operation fields split into
// query and mutation maps and assembled into an executable schema.
type ModelSchema struct {
	Model          *Model
	Operations     []Operation
	QueryFields    graphql.Fields
	MutationFields graphql.Fields
	Schema         graphql.Schema
}

// NewSchema builds the model from cfg and assembles a schema exposing the
// selected operations.
func NewSchema(cfg Config, opts SchemaOptions) (*ModelSchema, error) {
	m, err := BuildModel(cfg)
	if err != nil {
		return nil, err
	}
	ops, err := selectOperations(opts)
	if err != nil {
		return nil, err
	}

	queries := graphql.Fields{}
	mutations := graphql.Fields{}
	for _, op := range ops {
		field, err := m.OperationField(op)
		if err != nil {
			return nil, err
		}
		if op.IsQuery() {
			queries[field.Name] = field
		} else {
			mutations[field.Name] = field
		}
	}

	schema, err := BuildSchema(queries, mutations)
	if err != nil {
		return nil, err
	}
	return &ModelSchema{
		Model:          m,
		Operations:     ops,
		QueryFields:    queries,
		MutationFields: mutations,
		Schema:         schema,
	}, nil
}

// BuildSchema assembles query and mutation field maps into an executable
// schema. The Mutation type is omitted when mutationFields is empty; at
// least one query field is required. Callers combining several models merge
// their field maps and call this once.
func BuildSchema(queryFields, mutationFields graphql.Fields) (graphql.Schema, error) {
	if len(queryFields) == 0 {
		return graphql.Schema{}, fmt.Errorf("cruddals: a schema requires at least one query field")
	}
	schemaCfg := graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{Name: "Query", Fields: queryFields}),
	}
	if len(mutationFields) > 0 {
		schemaCfg.Mutation = graphql.NewObject(graphql.ObjectConfig{Name: "Mutation", Fields: mutationFields})
	}
	return graphql.NewSchema(schemaCfg)
}

// MergeFields copies src into dst, erroring on a duplicate field name.
// It is the helper for combining the query or mutation maps of several
// models before BuildSchema.
func MergeFields(dst, src graphql.Fields) error {
	for name, field := range src {
		if _, ok := dst[name]; ok {
			return fmt.Errorf("cruddals: duplicate schema field %q", name)
		}
		dst[name] = field
	}
	return nil
}
