package demo

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

// Task is a stored row. The json tags double as the GraphQL field names, so
// the default field resolver works on it directly.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Priority    int       `json:"priority"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SearchPage is one page of search results with its bookkeeping, shaped like
// the generated paginated type.
type SearchPage struct {
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	Pages      int    `json:"pages"`
	HasNext    bool   `json:"hasNext"`
	HasPrev    bool   `json:"hasPrev"`
	IndexStart int    `json:"indexStart"`
	IndexEnd   int    `json:"indexEnd"`
	Objects    []Task `json:"objects"`
}

// Store persists tasks in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens the SQLite database at dsn (":memory:" works) and creates the
// tasks table if needed.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("demo: opening sqlite database: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS tasks (
			id          TEXT PRIMARY KEY,
			title       TEXT NOT NULL,
			description TEXT,
			priority    INTEGER NOT NULL DEFAULT 0,
			is_active   INTEGER NOT NULL DEFAULT 1,
			created_at  TEXT NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("demo: creating tasks table: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// CreateTasks inserts one row per input map and returns the created rows in
// input order. Missing priority defaults to 0 and isActive to true.
func (s *Store) CreateTasks(ctx context.Context, inputs []map[string]any) ([]Task, error) {
	created := make([]Task, 0, len(inputs))
	for i, input := range inputs {
		title, _ := input["title"].(string)
		if title == "" {
			return nil, fmt.Errorf("demo: input %d: title is required", i)
		}
		task := Task{
			ID:        uuid.NewString(),
			Title:     title,
			IsActive:  true,
			CreatedAt: time.Now().UTC().Truncate(time.Second),
		}
		if desc, ok := input["description"].(string); ok {
			task.Description = &desc
		}
		if prio, ok := input["priority"].(int); ok {
			task.Priority = prio
		}
		if active, ok := input["isActive"].(bool); ok {
			task.IsActive = active
		}

		_, err := s.db.ExecContext(ctx,
			`INSERT INTO tasks (id, title, description, priority, is_active, created_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			task.ID, task.Title, task.Description, task.Priority,
			boolToInt(task.IsActive), task.CreatedAt.Format(time.RFC3339))
		if err != nil {
			return nil, fmt.Errorf("demo: inserting task %d: %w", i, err)
		}
		created = append(created, task)
	}
	return created, nil
}

// UpdateTasks applies each input map to the row addressed by its id and
// returns the updated rows.
func (s *Store) UpdateTasks(ctx context.Context, inputs []map[string]any) ([]Task, error) {
	ids := make([]string, 0, len(inputs))
	for i, input := range inputs {
		id, _ := input["id"].(string)
		if id == "" {
			return nil, fmt.Errorf("demo: input %d: id is required", i)
		}

		sets := make([]string, 0, len(input))
		args := make([]any, 0, len(input))
		for _, name := range sortedKeys(input) {
			if name == "id" {
				continue
			}
			field, ok := Tasks.Field(name)
			if !ok {
				return nil, fmt.Errorf("demo: input %d: unknown field %q", i, name)
			}
			sets = append(sets, field.Column+" = ?")
			args = append(args, bindValue(input[name]))
		}
		if len(sets) == 0 {
			ids = append(ids, id)
			continue
		}
		args = append(args, id)

		res, err := s.db.ExecContext(ctx,
			"UPDATE tasks SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
		if err != nil {
			return nil, fmt.Errorf("demo: updating task %q: %w", id, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil, fmt.Errorf("demo: task %q not found", id)
		}
		ids = append(ids, id)
	}
	return s.tasksByIDs(ctx, ids)
}

// DeleteTasks removes the rows matching the filter and returns how many went
// away.
func (s *Store) DeleteTasks(ctx context.Context, filter map[string]any) (int64, error) {
	where, args, err := whereSQL(filter)
	if err != nil {
		return 0, err
	}
	res, err := s.db.ExecContext(ctx, "DELETE FROM tasks"+where, args...)
	if err != nil {
		return 0, fmt.Errorf("demo: deleting tasks: %w", err)
	}
	return res.RowsAffected()
}

// SetTasksActive flips is_active on the rows matching the filter and returns
// them in their new state.
func (s *Store) SetTasksActive(ctx context.Context, filter map[string]any, active bool) ([]Task, error) {
	matching, err := s.queryTasks(ctx, filter, nil, "")
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(matching))
	for i, t := range matching {
		ids[i] = t.ID
	}
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := strings.Repeat("?, ", len(ids))
	placeholders = placeholders[:len(placeholders)-2]
	args := make([]any, 0, len(ids)+1)
	args = append(args, boolToInt(active))
	for _, id := range ids {
		args = append(args, id)
	}
	_, err = s.db.ExecContext(ctx,
		"UPDATE tasks SET is_active = ? WHERE id IN ("+placeholders+")", args...)
	if err != nil {
		return nil, fmt.Errorf("demo: toggling tasks: %w", err)
	}
	return s.tasksByIDs(ctx, ids)
}

// ReadTask returns the single row matching the filter. Zero or multiple
// matches are errors.
func (s *Store) ReadTask(ctx context.Context, filter map[string]any) (*Task, error) {
	tasks, err := s.queryTasks(ctx, filter, nil, "")
	if err != nil {
		return nil, err
	}
	switch len(tasks) {
	case 0:
		return nil, fmt.Errorf("demo: no task matches the filter")
	case 1:
		return &tasks[0], nil
	default:
		return nil, fmt.Errorf("demo: %d tasks match the filter, expected one", len(tasks))
	}
}

// ListTasks returns every row, newest first.
func (s *Store) ListTasks(ctx context.Context) ([]Task, error) {
	return s.queryTasks(ctx, nil, nil, " ORDER BY created_at DESC, id")
}

// SearchTasks filters, orders and paginates. itemsPerPage is either an int
// or "All".
func (s *Store) SearchTasks(ctx context.Context, filter, orderBy map[string]any, page int, itemsPerPage any) (*SearchPage, error) {
	tasks, err := s.queryTasks(ctx, filter, orderBy, "")
	if err != nil {
		return nil, err
	}
	return paginate(tasks, page, itemsPerPage)
}

func paginate(tasks []Task, page int, itemsPerPage any) (*SearchPage, error) {
	total := len(tasks)
	if page < 1 {
		page = 1
	}

	perPage := total
	switch v := itemsPerPage.(type) {
	case nil:
	case string:
		if v != "All" {
			return nil, fmt.Errorf("demo: invalid itemsPerPage %q", v)
		}
	case int:
		if v < 1 {
			return nil, fmt.Errorf("demo: itemsPerPage must be positive, got %d", v)
		}
		perPage = v
	default:
		return nil, fmt.Errorf("demo: invalid itemsPerPage type %T", itemsPerPage)
	}

	pages := 1
	if perPage > 0 && total > 0 {
		pages = (total + perPage - 1) / perPage
	}
	if page > pages {
		page = pages
	}

	start := 0
	end := total
	if perPage > 0 {
		start = (page - 1) * perPage
		end = start + perPage
		if end > total {
			end = total
		}
		if start > total {
			start = total
		}
	}

	return &SearchPage{
		Total:      total,
		Page:       page,
		Pages:      pages,
		HasNext:    page < pages,
		HasPrev:    page > 1,
		IndexStart: start,
		IndexEnd:   end,
		Objects:    tasks[start:end],
	}, nil
}

func (s *Store) tasksByIDs(ctx context.Context, ids []string) ([]Task, error) {
	tasks := make([]Task, 0, len(ids))
	for _, id := range ids {
		task, err := s.ReadTask(ctx, map[string]any{"id": id})
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, nil
}

func (s *Store) queryTasks(ctx context.Context, filter, orderBy map[string]any, defaultOrder string) ([]Task, error) {
	where, args, err := whereSQL(filter)
	if err != nil {
		return nil, err
	}
	order, err := orderSQL(orderBy)
	if err != nil {
		return nil, err
	}
	if order == "" {
		order = defaultOrder
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, title, description, priority, is_active, created_at FROM tasks"+where+order,
		args...)
	if err != nil {
		return nil, fmt.Errorf("demo: querying tasks: %w", err)
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var (
			task      Task
			active    int
			createdAt string
		)
		if err := rows.Scan(&task.ID, &task.Title, &task.Description, &task.Priority, &active, &createdAt); err != nil {
			return nil, fmt.Errorf("demo: scanning task: %w", err)
		}
		task.IsActive = active != 0
		task.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("demo: parsing created_at %q: %w", createdAt, err)
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// whereSQL translates a filter map into a WHERE clause. Plain keys are
// column equality tests; AND and OR take lists of nested filters and NOT a
// single nested filter. Keys are visited in sorted order so the SQL is
// deterministic.
func whereSQL(filter map[string]any) (string, []any, error) {
	cond, args, err := filterCondition(filter)
	if err != nil {
		return "", nil, err
	}
	if cond == "" {
		return "", nil, nil
	}
	return " WHERE " + cond, args, nil
}

func filterCondition(filter map[string]any) (string, []any, error) {
	if len(filter) == 0 {
		return "", nil, nil
	}

	var conds []string
	var args []any
	for _, key := range sortedKeys(filter) {
		value := filter[key]
		switch key {
		case "AND", "OR":
			nested, ok := value.([]any)
			if !ok {
				return "", nil, fmt.Errorf("demo: %s expects a list of filters, got %T", key, value)
			}
			var parts []string
			for _, item := range nested {
				sub, ok := item.(map[string]any)
				if !ok {
					return "", nil, fmt.Errorf("demo: %s expects filter objects, got %T", key, item)
				}
				cond, subArgs, err := filterCondition(sub)
				if err != nil {
					return "", nil, err
				}
				if cond == "" {
					continue
				}
				parts = append(parts, cond)
				args = append(args, subArgs...)
			}
			if len(parts) == 0 {
				continue
			}
			joiner := " AND "
			if key == "OR" {
				joiner = " OR "
			}
			conds = append(conds, "("+strings.Join(parts, joiner)+")")
		case "NOT":
			sub, ok := value.(map[string]any)
			if !ok {
				return "", nil, fmt.Errorf("demo: NOT expects a filter object, got %T", value)
			}
			cond, subArgs, err := filterCondition(sub)
			if err != nil {
				return "", nil, err
			}
			if cond == "" {
				continue
			}
			conds = append(conds, "NOT ("+cond+")")
			args = append(args, subArgs...)
		default:
			field, ok := Tasks.Field(key)
			if !ok {
				return "", nil, fmt.Errorf("demo: unknown filter field %q", key)
			}
			conds = append(conds, field.Column+" = ?")
			args = append(args, bindValue(value))
		}
	}
	return strings.Join(conds, " AND "), args, nil
}

func orderSQL(orderBy map[string]any) (string, error) {
	if len(orderBy) == 0 {
		return "", nil
	}
	var parts []string
	for _, key := range sortedKeys(orderBy) {
		field, ok := Tasks.Field(key)
		if !ok {
			return "", fmt.Errorf("demo: unknown order field %q", key)
		}
		direction, ok := orderBy[key].(string)
		if !ok || (direction != "ASC" && direction != "DESC") {
			return "", fmt.Errorf("demo: invalid order direction %v for %q", orderBy[key], key)
		}
		parts = append(parts, field.Column+" "+direction)
	}
	return " ORDER BY " + strings.Join(parts, ", "), nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func bindValue(value any) any {
	switch v := value.(type) {
	case bool:
		return boolToInt(v)
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		return value
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
