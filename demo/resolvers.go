package demo

import (
	"strconv"

	"github.com/graphql-go/graphql"

	"github.com/cruddals/cruddals"
	"github.com/cruddals/cruddals/gqltypes"
	"github.com/cruddals/cruddals/registry"
)

// Resolvers binds the eight task operations to a Store.
type Resolvers struct {
	Store *Store
}

// TaskConfig returns the builder configuration for the task model, wired to
// the given store. Each call uses a fresh registry so independently built
// schemas never share type objects.
func TaskConfig(store *Store) cruddals.Config {
	r := &Resolvers{Store: store}
	return cruddals.Config{
		Model:          Tasks,
		PascalCaseName: "Task",

		FieldsForOutput:           OutputFields,
		OutputFieldConverter:      ConvertOutputField,
		FieldsForInput:            InputFields,
		InputFieldConverter:       ConvertInputField,
		FieldsForCreateInput:      CreateInputFields,
		CreateInputFieldConverter: ConvertCreateInputField,
		FieldsForUpdateInput:      UpdateInputFields,
		UpdateInputFieldConverter: ConvertUpdateInputField,
		FieldsForFilter:           FilterFields,
		FilterFieldConverter:      ConvertFilterField,
		FieldsForOrderBy:          OrderByFields,
		OrderByFieldConverter:     ConvertOrderByField,

		CreateResolver:     r.Create,
		ReadResolver:       r.Read,
		UpdateResolver:     r.Update,
		DeleteResolver:     r.Delete,
		DeactivateResolver: r.Deactivate,
		ActivateResolver:   r.Activate,
		ListResolver:       r.List,
		SearchResolver:     r.Search,

		Registry: registry.New(),
	}
}

// NewTaskSchema builds the executable task schema over the store.
func NewTaskSchema(store *Store, opts cruddals.SchemaOptions) (*cruddals.ModelSchema, error) {
	return cruddals.NewSchema(TaskConfig(store), opts)
}

// Create inserts the valid inputs and reports per-object errors for the
// rest, keyed by their 1-based input position.
func (r *Resolvers) Create(p graphql.ResolveParams) (interface{}, error) {
	inputs := inputMaps(p.Args["input"])

	var valid []map[string]any
	var report []gqltypes.ErrorCollection
	for i, input := range inputs {
		if title, _ := input["title"].(string); title == "" {
			errs := gqltypes.FieldErrorsFrom(map[string][]string{
				"title": {"This field is required."},
			})
			report = append(report, gqltypes.ErrorCollectionFrom(strconv.Itoa(i+1), errs))
			continue
		}
		valid = append(valid, input)
	}

	created, err := r.Store.CreateTasks(p.Context, valid)
	if err != nil {
		return nil, err
	}
	return payload(created, report), nil
}

func (r *Resolvers) Read(p graphql.ResolveParams) (interface{}, error) {
	return r.Store.ReadTask(p.Context, filterArg(p, "where"))
}

func (r *Resolvers) Update(p graphql.ResolveParams) (interface{}, error) {
	updated, err := r.Store.UpdateTasks(p.Context, inputMaps(p.Args["input"]))
	if err != nil {
		return nil, err
	}
	return payload(updated, nil), nil
}

func (r *Resolvers) Delete(p graphql.ResolveParams) (interface{}, error) {
	n, err := r.Store.DeleteTasks(p.Context, filterArg(p, "where"))
	if err != nil {
		return nil, err
	}
	result := payload(nil, nil)
	result["success"] = n > 0
	return result, nil
}

func (r *Resolvers) Deactivate(p graphql.ResolveParams) (interface{}, error) {
	return r.setActive(p, false)
}

func (r *Resolvers) Activate(p graphql.ResolveParams) (interface{}, error) {
	return r.setActive(p, true)
}

func (r *Resolvers) setActive(p graphql.ResolveParams, active bool) (interface{}, error) {
	tasks, err := r.Store.SetTasksActive(p.Context, filterArg(p, "where"), active)
	if err != nil {
		return nil, err
	}
	return payload(tasks, nil), nil
}

func (r *Resolvers) List(p graphql.ResolveParams) (interface{}, error) {
	return r.Store.ListTasks(p.Context)
}

func (r *Resolvers) Search(p graphql.ResolveParams) (interface{}, error) {
	page := 1
	var itemsPerPage any = gqltypes.AllPages
	if config, ok := p.Args["paginationConfig"].(map[string]any); ok {
		if v, ok := config["page"].(int); ok {
			page = v
		}
		if v, ok := config["itemsPerPage"]; ok && v != nil {
			itemsPerPage = v
		}
	}

	var orderBy map[string]any
	if v, ok := p.Args["orderBy"].(map[string]any); ok {
		orderBy = v
	}
	return r.Store.SearchTasks(p.Context, filterArg(p, "where"), orderBy, page, itemsPerPage)
}

func payload(objects []Task, report []gqltypes.ErrorCollection) map[string]any {
	return map[string]any{
		"objects":      objects,
		"errorsReport": report,
	}
}

func filterArg(p graphql.ResolveParams, name string) map[string]any {
	if filter, ok := p.Args[name].(map[string]any); ok {
		return filter
	}
	return nil
}

func inputMaps(arg any) []map[string]any {
	items, ok := arg.([]any)
	if !ok {
		return nil
	}
	inputs := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			inputs = append(inputs, m)
		}
	}
	return inputs
}
