package pgx

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/taskward/taskward/core"
)

func (a *Adapter) CreateTask(task *core.Task) error {
	ctx := context.Background()

	query := `INSERT INTO public.tasks (id, title, description, status, due_date, user_id)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING created_at, updated_at`

	var createdAt, updatedAt time.Time
	err := a.pool.QueryRow(ctx, query,
		task.ID, task.Title, task.Description, task.Status, task.DueDate, task.UserID,
	).Scan(&createdAt, &updatedAt)

	if err != nil {
		return err
	}

	task.CreatedAt = createdAt
	task.UpdatedAt = updatedAt
	return nil
}

func (a *Adapter) GetTaskByID(id string) (*core.Task, error) {
	ctx := context.Background()
	q := `SELECT id, title, description, status, due_date, user_id, created_at, updated_at
	      FROM public.tasks WHERE id = $1`

	task := &core.Task{}
	err := a.pool.QueryRow(ctx, q, id).Scan(
		&task.ID, &task.Title, &task.Description, &task.Status, &task.DueDate,
		&task.UserID, &task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, core.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

func (a *Adapter) ListTasks(ownerID string, filter core.TaskFilter) ([]*core.Task, error) {
	ctx := context.Background()

	q := `SELECT id, title, description, status, due_date, user_id, created_at, updated_at
	      FROM public.tasks WHERE user_id = $1`
	args := []interface{}{ownerID}

	if filter.Status != nil {
		args = append(args, *filter.Status)
		q += ` AND status = $2`
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		if filter.Status != nil {
			q += ` AND (title ILIKE $3 OR description ILIKE $3)`
		} else {
			q += ` AND (title ILIKE $2 OR description ILIKE $2)`
		}
	}

	rows, err := a.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*core.Task
	for rows.Next() {
		task := &core.Task{}
		err := rows.Scan(
			&task.ID, &task.Title, &task.Description, &task.Status, &task.DueDate,
			&task.UserID, &task.CreatedAt, &task.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// UpdateTask writes the task conditionally on both id and owner, so an
// ownership check cannot be raced into a foreign write.
func (a *Adapter) UpdateTask(task *core.Task) error {
	ctx := context.Background()
	q := `UPDATE public.tasks
	      SET title = $1, description = $2, status = $3, due_date = $4, updated_at = now()
	      WHERE id = $5 AND user_id = $6
	      RETURNING updated_at`

	var updatedAt time.Time
	err := a.pool.QueryRow(ctx, q,
		task.Title, task.Description, task.Status, task.DueDate, task.ID, task.UserID,
	).Scan(&updatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return core.ErrTaskNotFound
		}
		return err
	}

	task.UpdatedAt = updatedAt
	return nil
}

// DeleteTask removes the task conditionally on both id and owner.
func (a *Adapter) DeleteTask(id, ownerID string) error {
	ctx := context.Background()
	tag, err := a.pool.Exec(ctx, `DELETE FROM public.tasks WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrTaskNotFound
	}
	return nil
}
