package demo

import (
	"fmt"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/require"

	"github.com/cruddals/cruddals"
)

func newSchema(t *testing.T) (*Store, graphql.Schema) {
	t.Helper()
	store := newStore(t)
	ms, err := NewTaskSchema(store, cruddals.SchemaOptions{})
	require.NoError(t, err)
	return store, ms.Schema
}

func exec(t *testing.T, schema graphql.Schema, query string) map[string]interface{} {
	t.Helper()
	result := graphql.Do(graphql.Params{Schema: schema, RequestString: query})
	require.Empty(t, result.Errors, "query %s", query)
	return result.Data.(map[string]interface{})
}

func TestTaskSchemaOperations(t *testing.T) {
	_, schema := newSchema(t)

	queryFields := schema.QueryType().Fields()
	for _, name := range []string{"readTask", "listTasks", "searchTasks"} {
		require.Contains(t, queryFields, name)
	}
	mutationFields := schema.MutationType().Fields()
	for _, name := range []string{"createTasks", "updateTasks", "deleteTasks", "deactivateTasks", "activateTasks"} {
		require.Contains(t, mutationFields, name)
	}
}

func TestCreateAndReadOverSchema(t *testing.T) {
	_, schema := newSchema(t)

	data := exec(t, schema, `mutation {
		createTasks(input: [{title: "ship it", priority: 3}]) {
			objects { id title priority isActive }
			errorsReport { objectPosition }
		}
	}`)

	payload := data["createTasks"].(map[string]interface{})
	objects := payload["objects"].([]interface{})
	require.Len(t, objects, 1)
	created := objects[0].(map[string]interface{})
	require.Equal(t, "ship it", created["title"])
	require.Equal(t, 3, created["priority"])
	require.Equal(t, true, created["isActive"])
	require.Nil(t, payload["errorsReport"])

	read := exec(t, schema, fmt.Sprintf(`{
		readTask(where: {id: %q}) { title }
	}`, created["id"]))
	require.Equal(t, "ship it",
		read["readTask"].(map[string]interface{})["title"])
}

func TestCreateReportsFieldErrors(t *testing.T) {
	_, schema := newSchema(t)

	data := exec(t, schema, `mutation {
		createTasks(input: [{title: "", priority: 1}, {title: "good", priority: 2}]) {
			objects { title }
			errorsReport {
				objectPosition
				errors { field messages }
			}
		}
	}`)

	payload := data["createTasks"].(map[string]interface{})
	objects := payload["objects"].([]interface{})
	require.Len(t, objects, 1)

	report := payload["errorsReport"].([]interface{})
	require.Len(t, report, 1)
	collection := report[0].(map[string]interface{})
	require.Equal(t, "1", collection["objectPosition"])
	fieldErr := collection["errors"].([]interface{})[0].(map[string]interface{})
	require.Equal(t, "title", fieldErr["field"])
}

func TestSearchOverSchema(t *testing.T) {
	store, schema := newSchema(t)
	seedTasks(t, store, "t1", "t2", "t3", "t4", "t5")

	data := exec(t, schema, `{
		searchTasks(orderBy: {priority: ASC}, paginationConfig: {page: 2, itemsPerPage: 2}) {
			total page pages hasNext hasPrev indexStart indexEnd
			objects { title priority }
		}
	}`)

	page := data["searchTasks"].(map[string]interface{})
	require.Equal(t, 5, page["total"])
	require.Equal(t, 2, page["page"])
	require.Equal(t, 3, page["pages"])
	require.Equal(t, true, page["hasNext"])
	require.Equal(t, true, page["hasPrev"])

	objects := page["objects"].([]interface{})
	require.Len(t, objects, 2)
	require.Equal(t, "t3", objects[0].(map[string]interface{})["title"])
}

func TestSearchAllPagesLiteral(t *testing.T) {
	store, schema := newSchema(t)
	seedTasks(t, store, "a", "b", "c")

	data := exec(t, schema, `{
		searchTasks(paginationConfig: {itemsPerPage: "All"}) {
			total pages
			objects { title }
		}
	}`)
	page := data["searchTasks"].(map[string]interface{})
	require.Equal(t, 3, page["total"])
	require.Equal(t, 1, page["pages"])
}

func TestDeactivateActivateOverSchema(t *testing.T) {
	store, schema := newSchema(t)
	created := seedTasks(t, store, "sleepy")

	data := exec(t, schema, fmt.Sprintf(`mutation {
		deactivateTasks(where: {id: %q}) {
			objects { id isActive }
		}
	}`, created[0].ID))
	objects := data["deactivateTasks"].(map[string]interface{})["objects"].([]interface{})
	require.Len(t, objects, 1)
	require.Equal(t, false, objects[0].(map[string]interface{})["isActive"])

	data = exec(t, schema, fmt.Sprintf(`mutation {
		activateTasks(where: {id: %q}) {
			objects { isActive }
		}
	}`, created[0].ID))
	objects = data["activateTasks"].(map[string]interface{})["objects"].([]interface{})
	require.Equal(t, true, objects[0].(map[string]interface{})["isActive"])
}

func TestUpdateAndDeleteOverSchema(t *testing.T) {
	store, schema := newSchema(t)
	created := seedTasks(t, store, "old name", "stays")

	data := exec(t, schema, fmt.Sprintf(`mutation {
		updateTasks(input: [{id: %q, title: "new name"}]) {
			objects { title }
		}
	}`, created[0].ID))
	objects := data["updateTasks"].(map[string]interface{})["objects"].([]interface{})
	require.Equal(t, "new name", objects[0].(map[string]interface{})["title"])

	data = exec(t, schema, fmt.Sprintf(`mutation {
		deleteTasks(where: {id: %q}) { success }
	}`, created[0].ID))
	require.Equal(t, true,
		data["deleteTasks"].(map[string]interface{})["success"])

	listed := exec(t, schema, `{ listTasks { title } }`)
	require.Len(t, listed["listTasks"].([]interface{}), 1)
}
