package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tasklist/internal/models"
)

type TaskRepository interface {
	Store(ctx context.Context, task *models.Task) error
	FindByID(ctx context.Context, id int64) (*models.Task, error)
	FindAll(ctx context.Context) ([]models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	DeleteByStatus(ctx context.Context, statusID string) (int64, error)
}

type taskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) TaskRepository {
	return &taskRepository{db: db}
}

const taskColumns = `t.id, t.description, t.due_date, t.category_id, t.status_id,
       COALESCE(c.name, ''), COALESCE(s.name, '')
       FROM tasks t
       LEFT JOIN categories c ON c.category_id = t.category_id
       LEFT JOIN statuses s ON s.status_id = t.status_id`

func (r *taskRepository) Store(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tasks (description, due_date, category_id, status_id)
		VALUES ($1,$2,$3,$4)
		RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		task.Description, dateParam(task.DueDate), task.CategoryID, task.StatusID,
	).Scan(&task.ID)
}

// FindByID returns nil, nil when no task has the id.
func (r *taskRepository) FindByID(ctx context.Context, id int64) (*models.Task, error) {
	query := `SELECT ` + taskColumns + ` WHERE t.id = $1`
	task, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return task, nil
}

func (r *taskRepository) FindAll(ctx context.Context) ([]models.Task, error) {
	query := `SELECT ` + taskColumns + ` ORDER BY t.due_date ASC, t.id ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) Update(ctx context.Context, task *models.Task) error {
	query := `
		UPDATE tasks SET
			description=$1, due_date=$2, category_id=$3, status_id=$4
		WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query,
		task.Description, dateParam(task.DueDate), task.CategoryID, task.StatusID, task.ID,
	)
	return err
}

func (r *taskRepository) DeleteByStatus(ctx context.Context, statusID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE status_id = $1`, statusID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*models.Task, error) {
	var (
		t   models.Task
		due dateColumn
	)
	if err := row.Scan(
		&t.ID, &t.Description, &due, &t.CategoryID, &t.StatusID,
		&t.CategoryName, &t.StatusName,
	); err != nil {
		return nil, err
	}
	if due.Valid {
		d := due.Time
		t.DueDate = &d
	}
	return &t, nil
}

const dateLayout = "2006-01-02"

// dateParam binds a due date as a plain calendar day so both drivers store
// the same value regardless of time zone.
func dateParam(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.Format(dateLayout)
}

// dateColumn scans DATE columns. lib/pq yields time.Time; sqlite may hand
// back the stored text.
type dateColumn struct {
	Time  time.Time
	Valid bool
}

func (d *dateColumn) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		d.Time, d.Valid = time.Time{}, false
		return nil
	case time.Time:
		y, m, day := v.Date()
		d.Time, d.Valid = time.Date(y, m, day, 0, 0, 0, 0, time.UTC), true
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	}
	return fmt.Errorf("unsupported date value %T", src)
}

func (d *dateColumn) parse(s string) error {
	if len(s) < len(dateLayout) {
		return fmt.Errorf("invalid date %q", s)
	}
	t, err := time.Parse(dateLayout, s[:len(dateLayout)])
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time, d.Valid = t, true
	return nil
}
