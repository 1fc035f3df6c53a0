package task

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"hrdesk/internal/platform/querier"
	"hrdesk/internal/platform/wiretime"
)

const selectTasks = `
    SELECT t.id, t.title, t.description, t.due_date, t.priority, t.is_complete, t.created_at,
           COALESCE(array_agg(a.employee_id::text ORDER BY a.employee_id) FILTER (WHERE a.employee_id IS NOT NULL), '{}')
    FROM tasks t
    LEFT JOIN task_assignees a ON a.task_id = t.id`

const groupTasks = `
    GROUP BY t.id
    ORDER BY t.due_date, t.created_at, t.id`

type Store struct {
	DB querier.Querier
}

func NewStore(db querier.Querier) *Store {
	return &Store{DB: db}
}

func scanTask(row pgx.Row) (Task, error) {
	var t Task
	var due, created time.Time
	var priority string
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &due, &priority, &t.IsComplete, &created, &t.AssignedTo); err != nil {
		return Task{}, err
	}
	t.DueDate = wiretime.FromTime(due)
	t.Priority = Priority(priority)
	t.CreatedAt = wiretime.FromTime(created)
	if t.AssignedTo == nil {
		t.AssignedTo = []string{}
	}
	return t, nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}

// Create stores the task and its assignees in one transaction.
func (s *Store) Create(ctx context.Context, t Task) (Task, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return Task{}, err
	}
	defer tx.Rollback(ctx)

	var created time.Time
	err = tx.QueryRow(ctx, `
    INSERT INTO tasks (title, description, due_date, priority, is_complete)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id, created_at
  `, t.Title, t.Description, t.DueDate.Time(), string(t.Priority), t.IsComplete).Scan(&t.ID, &created)
	if err != nil {
		return Task{}, err
	}
	if err := replaceAssignees(ctx, tx, t.ID, t.AssignedTo); err != nil {
		return Task{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return Task{}, err
	}
	t.CreatedAt = wiretime.FromTime(created)
	return t, nil
}

// Update overwrites every editable field and the assignee set.
func (s *Store) Update(ctx context.Context, t Task) (Task, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return Task{}, err
	}
	defer tx.Rollback(ctx)

	var created time.Time
	err = tx.QueryRow(ctx, `
    UPDATE tasks
    SET title = $2, description = $3, due_date = $4, priority = $5, is_complete = $6
    WHERE id = $1
    RETURNING created_at
  `, t.ID, t.Title, t.Description, t.DueDate.Time(), string(t.Priority), t.IsComplete).Scan(&created)
	if errors.Is(err, pgx.ErrNoRows) {
		return Task{}, ErrTaskNotFound
	}
	if err != nil {
		return Task{}, err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM task_assignees WHERE task_id = $1`, t.ID); err != nil {
		return Task{}, err
	}
	if err := replaceAssignees(ctx, tx, t.ID, t.AssignedTo); err != nil {
		return Task{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return Task{}, err
	}
	t.CreatedAt = wiretime.FromTime(created)
	return t, nil
}

func replaceAssignees(ctx context.Context, tx pgx.Tx, taskID string, employeeIDs []string) error {
	if len(employeeIDs) == 0 {
		return nil
	}
	_, err := tx.Exec(ctx, `
    INSERT INTO task_assignees (task_id, employee_id)
    SELECT $1, unnest($2::text[])::uuid
  `, taskID, employeeIDs)
	if isForeignKeyViolation(err) {
		return ErrEmployeeNotFound
	}
	return err
}

func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (s *Store) Get(ctx context.Context, id string) (Task, error) {
	t, err := scanTask(s.DB.QueryRow(ctx, selectTasks+` WHERE t.id = $1`+groupTasks, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Task{}, ErrTaskNotFound
	}
	return t, err
}

func (s *Store) List(ctx context.Context) ([]Task, error) {
	return s.list(ctx, selectTasks+groupTasks)
}

// ListByEmployee returns tasks that include employeeID among their assignees,
// with the full assignee list for each.
func (s *Store) ListByEmployee(ctx context.Context, employeeID string) ([]Task, error) {
	return s.list(ctx, selectTasks+`
    WHERE t.id IN (SELECT task_id FROM task_assignees WHERE employee_id = $1)`+groupTasks, employeeID)
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]Task, error) {
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
